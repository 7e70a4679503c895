package paymentRepo

import (
	"context"
	"time"

	"fleetbook/models"
)

// RevenueBucket is one aggregation bucket of succeeded payment totals.
type RevenueBucket struct {
	Period string  `bson:"_id" json:"period"`
	Total  float64 `bson:"total" json:"total"`
}

// PaymentRepository defines persistence operations for the payment ledger.
// Payments are insert-only; there is no update or delete.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	ListByBooking(ctx context.Context, bookingID string) ([]models.Payment, error)
	SumSucceededByBooking(ctx context.Context, bookingID string) (float64, error)
	TotalRevenue(ctx context.Context) (float64, error)
	RevenueByDay(ctx context.Context, since time.Time) ([]RevenueBucket, error)
	RevenueByMonth(ctx context.Context, since time.Time) ([]RevenueBucket, error)
}
