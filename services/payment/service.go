package payment

import (
	"context"
	"time"

	bookingRepo "fleetbook/database/repository/booking"
	paymentRepo "fleetbook/database/repository/payment"
	"fleetbook/models"
	"fleetbook/services/invoice"
	"fleetbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultPaymentService is the production implementation of PaymentService.
type DefaultPaymentService struct {
	Repo        paymentRepo.PaymentRepository
	BookingRepo bookingRepo.BookingRepository
	Invoices    invoice.InvoiceService

	// StripeCurrency is the ISO currency code used for payment intents.
	StripeCurrency string
}

// Record creates a ledger entry and re-derives the booking's settlement
// state. Recorded payments are immediately treated as settled; there is no
// pending/capture flow.
func (s *DefaultPaymentService) Record(ctx context.Context, actor models.Actor, bookingID string, in RecordPaymentInput) (*RecordPaymentResult, error) {
	if in.Amount <= 0 {
		return nil, utils.NewValidationError("payment amount must be greater than zero")
	}
	if !models.ValidPaymentMethod(in.Method) {
		return nil, utils.NewValidationError("unknown payment method %q", in.Method)
	}

	booking, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	pay := &models.Payment{
		ID:         uuid.New().String(),
		BookingID:  booking.ID,
		BookingRef: booking.BookingRef,
		Amount:     in.Amount,
		Method:     in.Method,
		Status:     models.PaymentStatusSucceeded,
		PaidBy:     actor.ID,
		Notes:      in.Notes,
		CreatedAt:  time.Now(),
	}
	if err := s.Repo.Create(ctx, pay); err != nil {
		return nil, err
	}

	booking, err = s.Settle(ctx, actor, booking)
	if err != nil {
		return nil, err
	}

	// Keep the invoice in step with the ledger; the explicit sync endpoint
	// remains the source of truth if this fails.
	if s.Invoices != nil {
		if _, err := s.Invoices.SyncForBooking(ctx, booking.ID); err != nil {
			utils.GetLogger().Warn("invoice sync after payment failed",
				zap.String("bookingRef", booking.BookingRef), zap.Error(err))
		}
	}

	return &RecordPaymentResult{Payment: pay, Booking: booking}, nil
}

// ListForBooking returns the booking's payments, newest first, with the sum
// of succeeded entries.
func (s *DefaultPaymentService) ListForBooking(ctx context.Context, bookingID string) (*LedgerView, error) {
	if _, err := s.BookingRepo.GetByID(ctx, bookingID); err != nil {
		return nil, err
	}
	payments, err := s.Repo.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	total, err := s.Repo.SumSucceededByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return &LedgerView{Payments: payments, Total: total}, nil
}
