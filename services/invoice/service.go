package invoice

import (
	"context"
	"fmt"
	"time"

	bookingRepo "fleetbook/database/repository/booking"
	counterRepo "fleetbook/database/repository/counter"
	invoiceRepo "fleetbook/database/repository/invoice"
	paymentRepo "fleetbook/database/repository/payment"
	userRepo "fleetbook/database/repository/user"
	vehicleRepo "fleetbook/database/repository/vehicle"
	"fleetbook/models"

	"github.com/google/uuid"
)

// DefaultInvoiceService is the production implementation of InvoiceService.
type DefaultInvoiceService struct {
	Repo        invoiceRepo.InvoiceRepository
	BookingRepo bookingRepo.BookingRepository
	PaymentRepo paymentRepo.PaymentRepository
	UserRepo    userRepo.UserRepository
	VehicleRepo vehicleRepo.VehicleRepository
	Counter     counterRepo.CounterRepository
}

// CreateForBooking creates the invoice linked to a freshly created booking.
// The due date is the rental start.
func (s *DefaultInvoiceService) CreateForBooking(ctx context.Context, booking *models.Booking) (*models.Invoice, error) {
	number, err := s.nextInvoiceNumber(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	inv := &models.Invoice{
		ID:            uuid.New().String(),
		BookingID:     booking.ID,
		InvoiceNumber: number,
		TotalAmount:   booking.TotalPrice,
		PaidAmount:    0,
		Status:        models.InvoiceStatusDraft,
		DueDate:       booking.StartDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// SyncPayment recomputes the invoice's paid amount from the succeeded
// payments of its booking. When fully covered the invoice flips to paid.
// Pure recomputation from the ledger, so repeated calls converge.
func (s *DefaultInvoiceService) SyncPayment(ctx context.Context, invoiceID string) (*models.Invoice, error) {
	inv, err := s.Repo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	return s.sync(ctx, inv)
}

// SyncForBooking resolves the booking's invoice and syncs it.
func (s *DefaultInvoiceService) SyncForBooking(ctx context.Context, bookingID string) (*models.Invoice, error) {
	inv, err := s.Repo.GetByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return s.sync(ctx, inv)
}

func (s *DefaultInvoiceService) sync(ctx context.Context, inv *models.Invoice) (*models.Invoice, error) {
	paid, err := s.PaymentRepo.SumSucceededByBooking(ctx, inv.BookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum payments for invoice %s: %w", inv.ID, err)
	}

	inv.PaidAmount = paid
	if paid >= inv.TotalAmount && inv.Status != models.InvoiceStatusPaid {
		now := time.Now()
		inv.Status = models.InvoiceStatusPaid
		inv.PaidAt = &now
	}
	if err := s.Repo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// Snapshot assembles the read-only aggregate consumed by the invoice
// renderer and the notification sender.
func (s *DefaultInvoiceService) Snapshot(ctx context.Context, bookingID string) (*models.InvoiceSnapshot, error) {
	booking, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	inv, err := s.Repo.GetByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	payments, err := s.PaymentRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	user, err := s.UserRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		return nil, err
	}
	vehicle, err := s.VehicleRepo.GetByID(ctx, booking.VehicleID)
	if err != nil {
		return nil, err
	}

	return &models.InvoiceSnapshot{
		Invoice:  inv,
		Booking:  booking,
		Payments: payments,
		User:     user,
		Vehicle:  vehicle,
	}, nil
}

// nextInvoiceNumber formats INV-YYYYMMDD-NNN from the per-day counter.
func (s *DefaultInvoiceService) nextInvoiceNumber(ctx context.Context, at time.Time) (string, error) {
	day := at.Format("20060102")
	seq, err := s.Counter.Next(ctx, "invoices:"+day)
	if err != nil {
		return "", fmt.Errorf("failed to generate invoice number: %w", err)
	}
	return fmt.Sprintf("INV-%s-%03d", day, seq), nil
}
