package models

import "time"

// Payment methods.
const (
	PaymentMethodStripe       = "stripe"
	PaymentMethodCash         = "cash"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodManual       = "manual"
)

// Payment statuses.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusSucceeded = "succeeded"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// Payment is a single immutable ledger entry recorded against a booking.
// Amendments are made by adding compensating records, not by editing.
type Payment struct {
	ID         string    `bson:"id" json:"id"`
	BookingID  string    `bson:"booking_id" json:"bookingId"`
	BookingRef string    `bson:"booking_ref" json:"bookingRef"`
	Amount     float64   `bson:"amount" json:"amount"`
	Method     string    `bson:"method" json:"method"`
	Status     string    `bson:"status" json:"status"`
	PaidBy     string    `bson:"paid_by" json:"paidBy"`
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}

// ValidPaymentMethod reports whether m is a supported payment method.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodStripe, PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodManual:
		return true
	}
	return false
}
