package payment

import (
	"context"
	"time"

	"fleetbook/models"
)

// Settle re-derives deposit, balance and payment status from the full
// ledger. It never increments: the derived fields are a pure function of
// the succeeded payments, so running it twice with the same ledger yields
// the same booking.
//
// Derivation order matters: a cleared balance wins over a partial payment,
// and a fully paid pending booking is auto-confirmed.
func (s *DefaultPaymentService) Settle(ctx context.Context, actor models.Actor, booking *models.Booking) (*models.Booking, error) {
	paid, err := s.Repo.SumSucceededByBooking(ctx, booking.ID)
	if err != nil {
		return nil, err
	}

	booking.Deposit = paid
	booking.Balance = booking.TotalPrice - paid

	switch {
	case booking.Balance <= 0:
		booking.PaymentStatus = models.BookingPaymentPaid
		if booking.Status == models.BookingStatusPending {
			booking.Status = models.BookingStatusConfirmed
			booking.StatusHistory = append(booking.StatusHistory, models.StatusHistoryEntry{
				Status:    models.BookingStatusConfirmed,
				ChangedBy: actor.ID,
				ChangedAt: time.Now(),
				Note:      "auto-confirmed on full payment",
			})
		}
	case paid > 0:
		booking.PaymentStatus = models.BookingPaymentPartial
	}

	if err := s.BookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}
