package payment

import (
	"context"

	"fleetbook/models"
)

// RecordPaymentInput carries the fields of a record-payment request.
type RecordPaymentInput struct {
	Amount float64 `json:"amount" binding:"required"`
	Method string  `json:"method" binding:"required"`
	Notes  string  `json:"notes,omitempty"`
}

// RecordPaymentResult returns the created ledger entry together with the
// booking after settlement.
type RecordPaymentResult struct {
	Payment *models.Payment `json:"payment"`
	Booking *models.Booking `json:"booking"`
}

// LedgerView is the ordered payment list for a booking plus its sum.
type LedgerView struct {
	Payments []models.Payment `json:"payments"`
	Total    float64          `json:"total"`
}

// PaymentService records payments against bookings and derives the
// booking's settlement state from the accumulated ledger.
type PaymentService interface {
	Record(ctx context.Context, actor models.Actor, bookingID string, in RecordPaymentInput) (*RecordPaymentResult, error)
	ListForBooking(ctx context.Context, bookingID string) (*LedgerView, error)
	CreateStripeIntent(ctx context.Context, bookingID string) (clientSecret string, err error)
}
