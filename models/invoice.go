package models

import "time"

// Invoice statuses.
const (
	InvoiceStatusDraft     = "draft"
	InvoiceStatusSent      = "sent"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusOverdue   = "overdue"
	InvoiceStatusCancelled = "cancelled"
)

// Invoice is the billing document linked one-to-one with a booking.
// PaidAmount is synced from the payment ledger.
type Invoice struct {
	ID            string     `bson:"id" json:"id"`
	BookingID     string     `bson:"booking_id" json:"bookingId"`
	InvoiceNumber string     `bson:"invoice_number" json:"invoiceNumber"`
	TotalAmount   float64    `bson:"total_amount" json:"totalAmount"`
	PaidAmount    float64    `bson:"paid_amount" json:"paidAmount"`
	Status        string     `bson:"status" json:"status"`
	DueDate       time.Time  `bson:"due_date" json:"dueDate"`
	SentAt        *time.Time `bson:"sent_at,omitempty" json:"sentAt,omitempty"`
	PaidAt        *time.Time `bson:"paid_at,omitempty" json:"paidAt,omitempty"`
	CreatedAt     time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time  `bson:"updated_at" json:"updatedAt"`
}

// InvoiceSnapshot is the fully populated aggregate handed to renderers and
// the notification sender.
type InvoiceSnapshot struct {
	Invoice  *Invoice  `json:"invoice"`
	Booking  *Booking  `json:"booking"`
	Payments []Payment `json:"payments"`
	User     *User     `json:"user"`
	Vehicle  *Vehicle  `json:"vehicle"`
}
