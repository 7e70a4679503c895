package payment

import (
	"context"
	"testing"

	"fleetbook/models"
	"fleetbook/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var admin = models.Actor{ID: "admin-1", Role: models.RoleAdmin}

func newTestService(total float64) (*DefaultPaymentService, *models.Booking) {
	booking := &models.Booking{
		ID:            "bk-1",
		BookingRef:    "BOOK-20240101-001",
		UserID:        "user-1",
		VehicleID:     "veh-1",
		TotalPrice:    total,
		Balance:       total,
		Status:        models.BookingStatusPending,
		PaymentStatus: models.BookingPaymentPending,
	}
	svc := &DefaultPaymentService{
		Repo:        &memPaymentRepo{},
		BookingRepo: &bookingStore{bookings: map[string]*models.Booking{booking.ID: booking}},
	}
	return svc, booking
}

func TestRecordPartialThenFullPayment(t *testing.T) {
	svc, _ := newTestService(200)
	ctx := context.Background()

	res, err := svc.Record(ctx, admin, "bk-1", RecordPaymentInput{Amount: 150, Method: models.PaymentMethodCash})
	require.NoError(t, err)
	assert.Equal(t, models.BookingPaymentPartial, res.Booking.PaymentStatus)
	assert.Equal(t, 150.0, res.Booking.Deposit)
	assert.Equal(t, 50.0, res.Booking.Balance)
	assert.Equal(t, models.BookingStatusPending, res.Booking.Status)

	res, err = svc.Record(ctx, admin, "bk-1", RecordPaymentInput{Amount: 50, Method: models.PaymentMethodCash})
	require.NoError(t, err)
	assert.Equal(t, models.BookingPaymentPaid, res.Booking.PaymentStatus)
	assert.Equal(t, 200.0, res.Booking.Deposit)
	assert.Equal(t, 0.0, res.Booking.Balance)
}

func TestFullPaymentAutoConfirmsPendingBooking(t *testing.T) {
	svc, _ := newTestService(200)

	res, err := svc.Record(context.Background(), admin, "bk-1", RecordPaymentInput{Amount: 200, Method: models.PaymentMethodBankTransfer})
	require.NoError(t, err)

	assert.Equal(t, models.BookingPaymentPaid, res.Booking.PaymentStatus)
	assert.Equal(t, models.BookingStatusConfirmed, res.Booking.Status)
	require.NotEmpty(t, res.Booking.StatusHistory)
	last := res.Booking.StatusHistory[len(res.Booking.StatusHistory)-1]
	assert.Equal(t, models.BookingStatusConfirmed, last.Status)
	assert.Equal(t, admin.ID, last.ChangedBy)
}

func TestFullPaymentDoesNotTouchNonPendingStatus(t *testing.T) {
	svc, booking := newTestService(200)
	booking.Status = models.BookingStatusOngoing

	res, err := svc.Record(context.Background(), admin, "bk-1", RecordPaymentInput{Amount: 200, Method: models.PaymentMethodCash})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusOngoing, res.Booking.Status)
	assert.Equal(t, models.BookingPaymentPaid, res.Booking.PaymentStatus)
}

func TestSettleIsIdempotent(t *testing.T) {
	svc, booking := newTestService(200)
	ctx := context.Background()

	_, err := svc.Record(ctx, admin, "bk-1", RecordPaymentInput{Amount: 200, Method: models.PaymentMethodCash})
	require.NoError(t, err)

	first := *booking
	settled, err := svc.Settle(ctx, admin, booking)
	require.NoError(t, err)

	// Settle derives from the ledger, it never accumulates.
	assert.Equal(t, first.Deposit, settled.Deposit)
	assert.Equal(t, first.Balance, settled.Balance)
	assert.Equal(t, first.PaymentStatus, settled.PaymentStatus)
	assert.Len(t, settled.StatusHistory, len(first.StatusHistory))
}

func TestRecordRejectsNonPositiveAmounts(t *testing.T) {
	svc, _ := newTestService(200)
	ctx := context.Background()

	for _, amount := range []float64{0, -50} {
		_, err := svc.Record(ctx, admin, "bk-1", RecordPaymentInput{Amount: amount, Method: models.PaymentMethodCash})
		var ve *utils.ValidationError
		require.ErrorAs(t, err, &ve)
	}
}

func TestRecordRejectsUnknownMethod(t *testing.T) {
	svc, _ := newTestService(200)

	_, err := svc.Record(context.Background(), admin, "bk-1", RecordPaymentInput{Amount: 50, Method: "cheque"})
	var ve *utils.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestRecordUnknownBooking(t *testing.T) {
	svc, _ := newTestService(200)

	_, err := svc.Record(context.Background(), admin, "nope", RecordPaymentInput{Amount: 50, Method: models.PaymentMethodCash})
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestOverpaymentStillSettlesAsPaid(t *testing.T) {
	svc, _ := newTestService(200)

	res, err := svc.Record(context.Background(), admin, "bk-1", RecordPaymentInput{Amount: 250, Method: models.PaymentMethodCash})
	require.NoError(t, err)
	assert.Equal(t, models.BookingPaymentPaid, res.Booking.PaymentStatus)
	assert.Equal(t, -50.0, res.Booking.Balance)
}

func TestListForBookingSumsLedger(t *testing.T) {
	svc, _ := newTestService(200)
	ctx := context.Background()

	_, err := svc.Record(ctx, admin, "bk-1", RecordPaymentInput{Amount: 120, Method: models.PaymentMethodCash})
	require.NoError(t, err)
	_, err = svc.Record(ctx, admin, "bk-1", RecordPaymentInput{Amount: 30, Method: models.PaymentMethodManual, Notes: "deposit top-up"})
	require.NoError(t, err)

	view, err := svc.ListForBooking(ctx, "bk-1")
	require.NoError(t, err)
	assert.Len(t, view.Payments, 2)
	assert.Equal(t, 150.0, view.Total)
}

func TestCreateStripeIntentRejectsSettledBooking(t *testing.T) {
	svc, booking := newTestService(200)
	booking.Balance = 0

	_, err := svc.CreateStripeIntent(context.Background(), "bk-1")
	var ve *utils.ValidationError
	require.ErrorAs(t, err, &ve)
}
