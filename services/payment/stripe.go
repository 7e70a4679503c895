package payment

import (
	"context"
	"fmt"
	"math"

	"fleetbook/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// CreateStripeIntent creates a PaymentIntent for the booking's outstanding
// balance and returns its client secret. The ledger entry is recorded once
// the client confirms the intent and an operator books the payment.
func (s *DefaultPaymentService) CreateStripeIntent(ctx context.Context, bookingID string) (string, error) {
	booking, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return "", err
	}
	if booking.Balance <= 0 {
		return "", utils.NewValidationError("booking %s has no outstanding balance", booking.BookingRef)
	}

	currency := s.StripeCurrency
	if currency == "" {
		currency = "usd"
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(booking.Balance * 100))),
		Currency: stripe.String(currency),
		Metadata: map[string]string{
			"bookingId":  booking.ID,
			"bookingRef": booking.BookingRef,
		},
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
