package vehicle

import (
	"context"
	"time"

	"fleetbook/models"
)

// VehicleInput carries the admin-editable fields of a vehicle.
type VehicleInput struct {
	Make               string  `json:"make" binding:"required"`
	Model              string  `json:"model" binding:"required"`
	Year               int     `json:"year" binding:"required"`
	Type               string  `json:"type" binding:"required"`
	Color              string  `json:"color,omitempty"`
	Seats              int     `json:"seats,omitempty"`
	LicensePlate       string  `json:"licensePlate" binding:"required"`
	PricePerHour       float64 `json:"pricePerHour" binding:"required"`
	PricePerDay        float64 `json:"pricePerDay" binding:"required"`
	MemberPricePerHour float64 `json:"memberPricePerHour,omitempty"`
	MemberPricePerDay  float64 `json:"memberPricePerDay,omitempty"`
}

// VehicleService manages the fleet registry.
type VehicleService interface {
	Create(ctx context.Context, in VehicleInput) (*models.Vehicle, error)
	GetByID(ctx context.Context, id string) (*models.Vehicle, error)
	Update(ctx context.Context, id string, in VehicleInput) (*models.Vehicle, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, onlyAvailable bool) ([]models.Vehicle, error)
	AddImage(ctx context.Context, id, url string) error
	RecomputeAvailability(ctx context.Context, id string, at time.Time) (bool, error)
}
