package models

import "time"

// Vehicle represents a rentable vehicle in the fleet.
type Vehicle struct {
	ID                 string    `bson:"id" json:"id"`
	Make               string    `bson:"make" json:"make"`
	Model              string    `bson:"model" json:"model"`
	Year               int       `bson:"year" json:"year"`
	Type               string    `bson:"type" json:"type"` // e.g. "sedan", "suv", "van"
	Color              string    `bson:"color,omitempty" json:"color,omitempty"`
	Seats              int       `bson:"seats,omitempty" json:"seats,omitempty"`
	LicensePlate       string    `bson:"license_plate" json:"licensePlate"`
	Images             []string  `bson:"images,omitempty" json:"images,omitempty"`
	PricePerHour       float64   `bson:"price_per_hour" json:"pricePerHour"`
	PricePerDay        float64   `bson:"price_per_day" json:"pricePerDay"`
	MemberPricePerHour float64   `bson:"member_price_per_hour,omitempty" json:"memberPricePerHour,omitempty"`
	MemberPricePerDay  float64   `bson:"member_price_per_day,omitempty" json:"memberPricePerDay,omitempty"`
	IsAvailable        bool      `bson:"is_available" json:"isAvailable"`
	CreatedAt          time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt          time.Time `bson:"updated_at" json:"updatedAt"`
}

// HourlyRate returns the applicable hourly rate for the given membership tier.
func (v *Vehicle) HourlyRate(member bool) float64 {
	if member && v.MemberPricePerHour > 0 {
		return v.MemberPricePerHour
	}
	return v.PricePerHour
}

// DailyRate returns the applicable daily rate for the given membership tier.
func (v *Vehicle) DailyRate(member bool) float64 {
	if member && v.MemberPricePerDay > 0 {
		return v.MemberPricePerDay
	}
	return v.PricePerDay
}
