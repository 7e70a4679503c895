package models

import "time"

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusOngoing   = "ongoing"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Payment settlement statuses carried on a booking.
const (
	BookingPaymentPending  = "pending"
	BookingPaymentPartial  = "partial"
	BookingPaymentPaid     = "paid"
	BookingPaymentFailed   = "failed"
	BookingPaymentRefunded = "refunded"
)

// StatusHistoryEntry is an embedded audit record of a booking status change.
type StatusHistoryEntry struct {
	Status    string    `bson:"status" json:"status"`
	ChangedBy string    `bson:"changed_by" json:"changedBy"`
	ChangedAt time.Time `bson:"changed_at" json:"changedAt"`
	Note      string    `bson:"note,omitempty" json:"note,omitempty"`
}

// Booking represents a vehicle rental over a date range. Deposit and balance
// are derived from the payment ledger, never set directly.
type Booking struct {
	ID            string               `bson:"id" json:"id"`
	BookingRef    string               `bson:"booking_ref" json:"bookingRef"`
	UserID        string               `bson:"user_id" json:"userId"`
	VehicleID     string               `bson:"vehicle_id" json:"vehicleId"`
	StartDate     time.Time            `bson:"start_date" json:"startDate"`
	EndDate       time.Time            `bson:"end_date" json:"endDate"`
	TotalPrice    float64              `bson:"total_price" json:"totalPrice"`
	Deposit       float64              `bson:"deposit" json:"deposit"`
	Balance       float64              `bson:"balance" json:"balance"`
	Status        string               `bson:"status" json:"status"`
	PaymentStatus string               `bson:"payment_status" json:"paymentStatus"`
	StatusHistory []StatusHistoryEntry `bson:"status_history,omitempty" json:"statusHistory,omitempty"`
	CreatedAt     time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time            `bson:"updated_at" json:"updatedAt"`
}

// ActiveBookingStatuses are the statuses that hold a vehicle and therefore
// participate in overlap checks.
var ActiveBookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusOngoing,
}
