package notification

import (
	"context"
	"fmt"
	"strings"

	"fleetbook/models"

	"firebase.google.com/go/v4/messaging"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// DefaultNotificationService is the production implementation. Either
// channel may be nil when not configured; sends then fail with a descriptive
// error that callers log.
type DefaultNotificationService struct {
	FCM       *messaging.Client
	SendGrid  *sendgrid.Client
	FromEmail string
	FromName  string
}

// SendInvoiceEmail mails an invoice summary built from the snapshot.
func (s *DefaultNotificationService) SendInvoiceEmail(ctx context.Context, snap *models.InvoiceSnapshot) error {
	if snap.User == nil || snap.User.Email == "" {
		return fmt.Errorf("invoice snapshot has no recipient email")
	}
	subject := fmt.Sprintf("Invoice %s for booking %s", snap.Invoice.InvoiceNumber, snap.Booking.BookingRef)

	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", snap.User.Name)
	fmt.Fprintf(&b, "Here is your invoice %s for %s %s (%s).\n\n",
		snap.Invoice.InvoiceNumber, snap.Vehicle.Make, snap.Vehicle.Model, snap.Booking.BookingRef)
	fmt.Fprintf(&b, "Rental period: %s to %s\n",
		snap.Booking.StartDate.Format("2006-01-02 15:04"), snap.Booking.EndDate.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Total: %.2f\nPaid: %.2f\nBalance: %.2f\n\n",
		snap.Invoice.TotalAmount, snap.Invoice.PaidAmount, snap.Booking.Balance)
	if len(snap.Payments) > 0 {
		b.WriteString("Payments:\n")
		for _, p := range snap.Payments {
			fmt.Fprintf(&b, "  %s  %.2f (%s)\n", p.CreatedAt.Format("2006-01-02"), p.Amount, p.Method)
		}
	}
	b.WriteString("\nThank you for booking with us.\n")

	return s.sendEmail(ctx, snap.User, subject, b.String())
}

// SendStatusEmail mails a short booking status update.
func (s *DefaultNotificationService) SendStatusEmail(ctx context.Context, user *models.User, booking *models.Booking, note string) error {
	subject := fmt.Sprintf("Booking %s is now %s", booking.BookingRef, booking.Status)
	body := fmt.Sprintf("Hello %s,\n\nYour booking %s has been updated to %s.",
		user.Name, booking.BookingRef, booking.Status)
	if note != "" {
		body += "\n\nNote: " + note
	}
	body += "\n\nThank you for booking with us.\n"
	return s.sendEmail(ctx, user, subject, body)
}

func (s *DefaultNotificationService) sendEmail(ctx context.Context, user *models.User, subject, body string) error {
	if s.SendGrid == nil {
		return fmt.Errorf("email notifications are not configured")
	}
	from := mail.NewEmail(s.FromName, s.FromEmail)
	to := mail.NewEmail(user.Name, user.Email)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	resp, err := s.SendGrid.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("email rejected with status %d", resp.StatusCode)
	}
	return nil
}
