package invoice

import (
	"context"

	"fleetbook/models"
)

// InvoiceService manages the billing document linked to each booking.
type InvoiceService interface {
	CreateForBooking(ctx context.Context, booking *models.Booking) (*models.Invoice, error)
	SyncPayment(ctx context.Context, invoiceID string) (*models.Invoice, error)
	SyncForBooking(ctx context.Context, bookingID string) (*models.Invoice, error)
	Snapshot(ctx context.Context, bookingID string) (*models.InvoiceSnapshot, error)
}
