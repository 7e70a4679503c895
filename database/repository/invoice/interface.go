package invoiceRepo

import (
	"context"

	"fleetbook/models"
)

// InvoiceRepository defines persistence operations for invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	GetByBookingID(ctx context.Context, bookingID string) (*models.Invoice, error)
	Update(ctx context.Context, invoice *models.Invoice) error
}
