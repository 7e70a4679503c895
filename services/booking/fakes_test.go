package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "fleetbook/database/repository/booking"
	"fleetbook/models"
	"fleetbook/utils"
)

// In-memory repositories mirroring the mongo query semantics, including the
// two overlap boundary rules and the active-status filter.

type memBookingRepo struct {
	bookings []*models.Booking
}

func (r *memBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	r.bookings = append(r.bookings, b)
	return nil
}

func (r *memBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, fmt.Errorf("booking %s: %w", id, utils.ErrNotFound)
}

func (r *memBookingRepo) GetByRef(ctx context.Context, ref string) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.BookingRef == ref {
			return b, nil
		}
	}
	return nil, fmt.Errorf("booking %s: %w", ref, utils.ErrNotFound)
}

func (r *memBookingRepo) Update(ctx context.Context, booking *models.Booking) error {
	for i, b := range r.bookings {
		if b.ID == booking.ID {
			r.bookings[i] = booking
			return nil
		}
	}
	return fmt.Errorf("booking %s: %w", booking.ID, utils.ErrNotFound)
}

func (r *memBookingRepo) Delete(ctx context.Context, id string) error {
	for i, b := range r.bookings {
		if b.ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("booking %s: %w", id, utils.ErrNotFound)
}

func (r *memBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) List(ctx context.Context, filter bookingRepo.ListFilter) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.VehicleID != "" && b.VehicleID != filter.VehicleID {
			continue
		}
		if filter.UserID != "" && b.UserID != filter.UserID {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func isActive(status string) bool {
	for _, s := range models.ActiveBookingStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func (r *memBookingRepo) FindConflictsInclusive(ctx context.Context, vehicleID string, start, end time.Time, excludeID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.VehicleID != vehicleID || !isActive(b.Status) || b.ID == excludeID {
			continue
		}
		if !b.StartDate.After(end) && !b.EndDate.Before(start) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) FindConflictsHalfOpen(ctx context.Context, vehicleID string, start, end time.Time, excludeID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.VehicleID != vehicleID || !isActive(b.Status) || b.ID == excludeID {
			continue
		}
		if b.StartDate.Before(end) && b.EndDate.After(start) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) CountActiveAt(ctx context.Context, vehicleID string, at time.Time) (int64, error) {
	var n int64
	for _, b := range r.bookings {
		if b.VehicleID == vehicleID && isActive(b.Status) && !b.StartDate.After(at) && b.EndDate.After(at) {
			n++
		}
	}
	return n, nil
}

func (r *memBookingRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	out := make(map[string]int64)
	for _, b := range r.bookings {
		out[b.Status]++
	}
	return out, nil
}

type memVehicleRepo struct {
	vehicles map[string]*models.Vehicle
}

func (r *memVehicleRepo) Create(ctx context.Context, v *models.Vehicle) error {
	r.vehicles[v.ID] = v
	return nil
}

func (r *memVehicleRepo) GetByID(ctx context.Context, id string) (*models.Vehicle, error) {
	if v, ok := r.vehicles[id]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("vehicle %s: %w", id, utils.ErrNotFound)
}

func (r *memVehicleRepo) Update(ctx context.Context, v *models.Vehicle) error {
	r.vehicles[v.ID] = v
	return nil
}

func (r *memVehicleRepo) Delete(ctx context.Context, id string) error {
	delete(r.vehicles, id)
	return nil
}

func (r *memVehicleRepo) List(ctx context.Context, onlyAvailable bool) ([]models.Vehicle, error) {
	var out []models.Vehicle
	for _, v := range r.vehicles {
		if onlyAvailable && !v.IsAvailable {
			continue
		}
		out = append(out, *v)
	}
	return out, nil
}

func (r *memVehicleRepo) SetAvailability(ctx context.Context, id string, available bool) error {
	v, ok := r.vehicles[id]
	if !ok {
		return fmt.Errorf("vehicle %s: %w", id, utils.ErrNotFound)
	}
	v.IsAvailable = available
	return nil
}

func (r *memVehicleRepo) AddImage(ctx context.Context, id, url string) error {
	v, ok := r.vehicles[id]
	if !ok {
		return fmt.Errorf("vehicle %s: %w", id, utils.ErrNotFound)
	}
	v.Images = append(v.Images, url)
	return nil
}

type memUserRepo struct {
	users map[string]*models.User
}

func (r *memUserRepo) Create(ctx context.Context, u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("user %s: %w", id, utils.ErrNotFound)
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, utils.ErrNotFound)
}

func (r *memUserRepo) Update(ctx context.Context, u *models.User) error {
	r.users[u.ID] = u
	return nil
}

type memCounterRepo struct {
	counts map[string]int64
}

func (r *memCounterRepo) Next(ctx context.Context, name string) (int64, error) {
	if r.counts == nil {
		r.counts = make(map[string]int64)
	}
	r.counts[name]++
	return r.counts[name], nil
}

// stubInvoices satisfies the invoice dependency without persistence.
type stubInvoices struct {
	created int
}

func (s *stubInvoices) CreateForBooking(ctx context.Context, booking *models.Booking) (*models.Invoice, error) {
	s.created++
	return &models.Invoice{BookingID: booking.ID}, nil
}

func (s *stubInvoices) SyncPayment(ctx context.Context, invoiceID string) (*models.Invoice, error) {
	return &models.Invoice{}, nil
}

func (s *stubInvoices) SyncForBooking(ctx context.Context, bookingID string) (*models.Invoice, error) {
	return &models.Invoice{}, nil
}

func (s *stubInvoices) Snapshot(ctx context.Context, bookingID string) (*models.InvoiceSnapshot, error) {
	return &models.InvoiceSnapshot{}, nil
}
