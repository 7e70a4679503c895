package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(day, hour int) time.Time {
	return time.Date(2024, 1, day, hour, 0, 0, 0, time.UTC)
}

func TestContinuousPriceTwoFullDays(t *testing.T) {
	price := ContinuousPrice(date(1, 0), date(3, 0), 20, 100)
	assert.Equal(t, 200.0, price)
}

func TestContinuousPriceChargesFractionalDays(t *testing.T) {
	// 36 hours is 1.5 days and is NOT rounded up.
	price := ContinuousPrice(date(1, 0), date(2, 12), 20, 100)
	assert.Equal(t, 150.0, price)
}

func TestContinuousPriceSubDayUsesHourlyRate(t *testing.T) {
	price := ContinuousPrice(date(1, 9), date(1, 15), 20, 100)
	assert.Equal(t, 120.0, price)
}

func TestCeilingDayPriceRoundsPartialDaysUp(t *testing.T) {
	// 30 hours rounds up to 2 days.
	price := CeilingDayPrice(date(1, 0), date(2, 6), 100)
	assert.Equal(t, 200.0, price)
}

func TestCeilingDayPriceHasOneDayMinimum(t *testing.T) {
	price := CeilingDayPrice(date(1, 9), date(1, 12), 100)
	assert.Equal(t, 100.0, price)
}

func TestFormatBookingRef(t *testing.T) {
	ref := FormatBookingRef(time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC), 7)
	assert.Equal(t, "BOOK-20240101-007", ref)
}
