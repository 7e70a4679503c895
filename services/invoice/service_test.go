package invoice

import (
	"context"
	"fmt"
	"testing"
	"time"

	paymentRepo "fleetbook/database/repository/payment"
	"fleetbook/models"
	"fleetbook/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memInvoiceRepo struct {
	invoices map[string]*models.Invoice
}

func (r *memInvoiceRepo) Create(ctx context.Context, inv *models.Invoice) error {
	r.invoices[inv.ID] = inv
	return nil
}

func (r *memInvoiceRepo) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	if inv, ok := r.invoices[id]; ok {
		return inv, nil
	}
	return nil, fmt.Errorf("invoice %s: %w", id, utils.ErrNotFound)
}

func (r *memInvoiceRepo) GetByBookingID(ctx context.Context, bookingID string) (*models.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.BookingID == bookingID {
			return inv, nil
		}
	}
	return nil, fmt.Errorf("invoice for booking %s: %w", bookingID, utils.ErrNotFound)
}

func (r *memInvoiceRepo) Update(ctx context.Context, inv *models.Invoice) error {
	r.invoices[inv.ID] = inv
	return nil
}

// ledgerStub serves a fixed succeeded sum per booking.
type ledgerStub struct {
	sums map[string]float64
}

func (l *ledgerStub) Create(ctx context.Context, p *models.Payment) error { return nil }

func (l *ledgerStub) ListByBooking(ctx context.Context, bookingID string) ([]models.Payment, error) {
	return nil, nil
}

func (l *ledgerStub) SumSucceededByBooking(ctx context.Context, bookingID string) (float64, error) {
	return l.sums[bookingID], nil
}

func (l *ledgerStub) TotalRevenue(ctx context.Context) (float64, error) { return 0, nil }

func (l *ledgerStub) RevenueByDay(ctx context.Context, since time.Time) ([]paymentRepo.RevenueBucket, error) {
	return nil, nil
}

func (l *ledgerStub) RevenueByMonth(ctx context.Context, since time.Time) ([]paymentRepo.RevenueBucket, error) {
	return nil, nil
}

type counterStub struct {
	counts map[string]int64
}

func (c *counterStub) Next(ctx context.Context, name string) (int64, error) {
	if c.counts == nil {
		c.counts = make(map[string]int64)
	}
	c.counts[name]++
	return c.counts[name], nil
}

func newTestService(ledger *ledgerStub) (*DefaultInvoiceService, *memInvoiceRepo) {
	invoices := &memInvoiceRepo{invoices: map[string]*models.Invoice{}}
	return &DefaultInvoiceService{
		Repo:        invoices,
		PaymentRepo: ledger,
		Counter:     &counterStub{},
	}, invoices
}

func TestCreateForBooking(t *testing.T) {
	svc, _ := newTestService(&ledgerStub{})
	start := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	booking := &models.Booking{ID: "bk-1", TotalPrice: 200, StartDate: start}

	inv, err := svc.CreateForBooking(context.Background(), booking)
	require.NoError(t, err)

	assert.Equal(t, "bk-1", inv.BookingID)
	assert.Equal(t, 200.0, inv.TotalAmount)
	assert.Equal(t, 0.0, inv.PaidAmount)
	assert.Equal(t, models.InvoiceStatusDraft, inv.Status)
	assert.Equal(t, start, inv.DueDate)
	assert.Regexp(t, `^INV-\d{8}-\d{3}$`, inv.InvoiceNumber)
}

func TestInvoiceNumbersIncrement(t *testing.T) {
	svc, _ := newTestService(&ledgerStub{})
	ctx := context.Background()

	a, err := svc.CreateForBooking(ctx, &models.Booking{ID: "bk-1", TotalPrice: 100})
	require.NoError(t, err)
	b, err := svc.CreateForBooking(ctx, &models.Booking{ID: "bk-2", TotalPrice: 100})
	require.NoError(t, err)

	assert.NotEqual(t, a.InvoiceNumber, b.InvoiceNumber)
	assert.Regexp(t, `-001$`, a.InvoiceNumber)
	assert.Regexp(t, `-002$`, b.InvoiceNumber)
}

func TestSyncPaymentFlipsToPaid(t *testing.T) {
	ledger := &ledgerStub{sums: map[string]float64{"bk-1": 200}}
	svc, _ := newTestService(ledger)

	inv, err := svc.CreateForBooking(context.Background(), &models.Booking{ID: "bk-1", TotalPrice: 200})
	require.NoError(t, err)

	synced, err := svc.SyncPayment(context.Background(), inv.ID)
	require.NoError(t, err)

	assert.Equal(t, 200.0, synced.PaidAmount)
	assert.Equal(t, models.InvoiceStatusPaid, synced.Status)
	require.NotNil(t, synced.PaidAt)
}

func TestSyncPaymentPartialStaysUnpaid(t *testing.T) {
	ledger := &ledgerStub{sums: map[string]float64{"bk-1": 150}}
	svc, _ := newTestService(ledger)

	inv, err := svc.CreateForBooking(context.Background(), &models.Booking{ID: "bk-1", TotalPrice: 200})
	require.NoError(t, err)

	synced, err := svc.SyncPayment(context.Background(), inv.ID)
	require.NoError(t, err)

	assert.Equal(t, 150.0, synced.PaidAmount)
	assert.Equal(t, models.InvoiceStatusDraft, synced.Status)
	assert.Nil(t, synced.PaidAt)
}

func TestSyncPaymentIsIdempotent(t *testing.T) {
	ledger := &ledgerStub{sums: map[string]float64{"bk-1": 200}}
	svc, _ := newTestService(ledger)
	ctx := context.Background()

	inv, err := svc.CreateForBooking(ctx, &models.Booking{ID: "bk-1", TotalPrice: 200})
	require.NoError(t, err)

	first, err := svc.SyncPayment(ctx, inv.ID)
	require.NoError(t, err)
	paidAt := *first.PaidAt

	second, err := svc.SyncPayment(ctx, inv.ID)
	require.NoError(t, err)

	assert.Equal(t, first.PaidAmount, second.PaidAmount)
	assert.Equal(t, models.InvoiceStatusPaid, second.Status)
	// The paid timestamp is set once and never rewritten.
	assert.Equal(t, paidAt, *second.PaidAt)
}

func TestSyncForBookingResolvesInvoice(t *testing.T) {
	ledger := &ledgerStub{sums: map[string]float64{"bk-1": 50}}
	svc, _ := newTestService(ledger)
	ctx := context.Background()

	_, err := svc.CreateForBooking(ctx, &models.Booking{ID: "bk-1", TotalPrice: 200})
	require.NoError(t, err)

	synced, err := svc.SyncForBooking(ctx, "bk-1")
	require.NoError(t, err)
	assert.Equal(t, 50.0, synced.PaidAmount)

	_, err = svc.SyncForBooking(ctx, "bk-missing")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}
