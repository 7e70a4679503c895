package booking

import (
	"math"
	"time"
)

// Two pricing strategies coexist, selected explicitly by call site.
// The public create path uses continuous pricing; the admin paths use
// ceiling pricing. They intentionally disagree on fractional days.

// ContinuousPrice charges fractional days at the daily rate once the rental
// reaches a full day, and hourly below that. Fractional days are NOT rounded
// up: 1.5 days costs 1.5 times the daily rate.
func ContinuousPrice(start, end time.Time, perHour, perDay float64) float64 {
	hours := end.Sub(start).Hours()
	days := hours / 24
	if days >= 1 {
		return days * perDay
	}
	return hours * perHour
}

// CeilingDayPrice charges whole days, rounding partial days up, with a
// one-day minimum.
func CeilingDayPrice(start, end time.Time, perDay float64) float64 {
	days := math.Ceil(end.Sub(start).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return days * perDay
}
