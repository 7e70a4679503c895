package payment

import (
	"context"
	"fmt"
	"time"

	bookingRepo "fleetbook/database/repository/booking"
	paymentRepo "fleetbook/database/repository/payment"
	"fleetbook/models"
	"fleetbook/utils"
)

type memPaymentRepo struct {
	payments []*models.Payment
}

func (r *memPaymentRepo) Create(ctx context.Context, p *models.Payment) error {
	r.payments = append(r.payments, p)
	return nil
}

func (r *memPaymentRepo) ListByBooking(ctx context.Context, bookingID string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range r.payments {
		if p.BookingID == bookingID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memPaymentRepo) SumSucceededByBooking(ctx context.Context, bookingID string) (float64, error) {
	var total float64
	for _, p := range r.payments {
		if p.BookingID == bookingID && p.Status == models.PaymentStatusSucceeded {
			total += p.Amount
		}
	}
	return total, nil
}

func (r *memPaymentRepo) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	for _, p := range r.payments {
		if p.Status == models.PaymentStatusSucceeded {
			total += p.Amount
		}
	}
	return total, nil
}

func (r *memPaymentRepo) RevenueByDay(ctx context.Context, since time.Time) ([]paymentRepo.RevenueBucket, error) {
	return nil, nil
}

func (r *memPaymentRepo) RevenueByMonth(ctx context.Context, since time.Time) ([]paymentRepo.RevenueBucket, error) {
	return nil, nil
}

// bookingStore only implements the lookups the payment service needs; the
// rest of the interface is inert.
type bookingStore struct {
	bookings map[string]*models.Booking
}

func (r *bookingStore) Create(ctx context.Context, b *models.Booking) error {
	r.bookings[b.ID] = b
	return nil
}

func (r *bookingStore) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	if b, ok := r.bookings[id]; ok {
		return b, nil
	}
	return nil, fmt.Errorf("booking %s: %w", id, utils.ErrNotFound)
}

func (r *bookingStore) GetByRef(ctx context.Context, ref string) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.BookingRef == ref {
			return b, nil
		}
	}
	return nil, fmt.Errorf("booking %s: %w", ref, utils.ErrNotFound)
}

func (r *bookingStore) Update(ctx context.Context, b *models.Booking) error {
	r.bookings[b.ID] = b
	return nil
}

func (r *bookingStore) Delete(ctx context.Context, id string) error {
	delete(r.bookings, id)
	return nil
}

func (r *bookingStore) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return nil, nil
}

func (r *bookingStore) List(ctx context.Context, filter bookingRepo.ListFilter) ([]models.Booking, error) {
	return nil, nil
}

func (r *bookingStore) FindConflictsInclusive(ctx context.Context, vehicleID string, start, end time.Time, excludeID string) ([]models.Booking, error) {
	return nil, nil
}

func (r *bookingStore) FindConflictsHalfOpen(ctx context.Context, vehicleID string, start, end time.Time, excludeID string) ([]models.Booking, error) {
	return nil, nil
}

func (r *bookingStore) CountActiveAt(ctx context.Context, vehicleID string, at time.Time) (int64, error) {
	return 0, nil
}

func (r *bookingStore) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return nil, nil
}
