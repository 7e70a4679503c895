package notification

import (
	"context"

	"fleetbook/models"
)

// NotificationService sends booking confirmations and invoices to customers.
// Delivery is best-effort; callers log failures and never retry.
type NotificationService interface {
	SendBookingPush(ctx context.Context, user *models.User, title, body string, data map[string]string) error
	SendInvoiceEmail(ctx context.Context, snap *models.InvoiceSnapshot) error
	SendStatusEmail(ctx context.Context, user *models.User, booking *models.Booking, note string) error
}
