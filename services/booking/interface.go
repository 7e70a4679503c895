package booking

import (
	"context"
	"time"

	bookingRepo "fleetbook/database/repository/booking"
	"fleetbook/models"
)

// CreateBookingInput carries the fields needed to create a booking. UserID
// is only honoured on the admin path; public creates book for the actor.
type CreateBookingInput struct {
	VehicleID string    `json:"vehicleId" binding:"required"`
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
	UserID    string    `json:"userId,omitempty"`
}

// UpdateBookingInput carries the mutable fields of an admin booking edit.
// Zero values leave the corresponding field unchanged.
type UpdateBookingInput struct {
	VehicleID string    `json:"vehicleId,omitempty"`
	StartDate time.Time `json:"startDate,omitempty"`
	EndDate   time.Time `json:"endDate,omitempty"`
}

// BookingService creates bookings, enforces the no-overlap invariant and
// manages booking lifecycle.
type BookingService interface {
	Create(ctx context.Context, actor models.Actor, in CreateBookingInput) (*models.Booking, error)
	AdminCreate(ctx context.Context, actor models.Actor, in CreateBookingInput) (*models.Booking, error)
	AdminUpdate(ctx context.Context, actor models.Actor, id string, in UpdateBookingInput) (*models.Booking, error)
	UpdateStatus(ctx context.Context, actor models.Actor, id, status, note string) (*models.Booking, error)
	AdminDelete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	TrackByRef(ctx context.Context, ref string) (*models.Booking, error)
	ListForUser(ctx context.Context, userID string) ([]models.Booking, error)
	AdminList(ctx context.Context, filter bookingRepo.ListFilter) ([]models.Booking, error)
}
