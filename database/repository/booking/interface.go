package bookingRepo

import (
	"context"
	"time"

	"fleetbook/models"
)

// ListFilter narrows admin booking listings.
type ListFilter struct {
	Status    string
	VehicleID string
	UserID    string
	Limit     int64
	Offset    int64
}

// BookingRepository defines persistence operations for bookings.
//
// The two conflict finders implement deliberately different boundary rules.
// The public create path treats bookings sharing an endpoint instant as
// conflicting (inclusive bounds); the admin path uses half-open intervals
// and allows back-to-back bookings. Callers pick the rule explicitly.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByRef(ctx context.Context, ref string) (*models.Booking, error)
	Update(ctx context.Context, booking *models.Booking) error
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	List(ctx context.Context, filter ListFilter) ([]models.Booking, error)

	FindConflictsInclusive(ctx context.Context, vehicleID string, start, end time.Time, excludeID string) ([]models.Booking, error)
	FindConflictsHalfOpen(ctx context.Context, vehicleID string, start, end time.Time, excludeID string) ([]models.Booking, error)

	CountActiveAt(ctx context.Context, vehicleID string, at time.Time) (int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}
