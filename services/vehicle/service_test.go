package vehicle

import (
	"context"
	"fmt"
	"testing"
	"time"

	bookingRepo "fleetbook/database/repository/booking"
	"fleetbook/models"
	"fleetbook/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vehicleStore struct {
	vehicles map[string]*models.Vehicle
}

func (r *vehicleStore) Create(ctx context.Context, v *models.Vehicle) error {
	r.vehicles[v.ID] = v
	return nil
}

func (r *vehicleStore) GetByID(ctx context.Context, id string) (*models.Vehicle, error) {
	if v, ok := r.vehicles[id]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("vehicle %s: %w", id, utils.ErrNotFound)
}

func (r *vehicleStore) Update(ctx context.Context, v *models.Vehicle) error {
	r.vehicles[v.ID] = v
	return nil
}

func (r *vehicleStore) Delete(ctx context.Context, id string) error {
	delete(r.vehicles, id)
	return nil
}

func (r *vehicleStore) List(ctx context.Context, onlyAvailable bool) ([]models.Vehicle, error) {
	var out []models.Vehicle
	for _, v := range r.vehicles {
		if onlyAvailable && !v.IsAvailable {
			continue
		}
		out = append(out, *v)
	}
	return out, nil
}

func (r *vehicleStore) SetAvailability(ctx context.Context, id string, available bool) error {
	v, ok := r.vehicles[id]
	if !ok {
		return fmt.Errorf("vehicle %s: %w", id, utils.ErrNotFound)
	}
	v.IsAvailable = available
	return nil
}

func (r *vehicleStore) AddImage(ctx context.Context, id, url string) error {
	v, ok := r.vehicles[id]
	if !ok {
		return fmt.Errorf("vehicle %s: %w", id, utils.ErrNotFound)
	}
	v.Images = append(v.Images, url)
	return nil
}

// activeCountStub answers CountActiveAt with a fixed count per vehicle.
type activeCountStub struct {
	counts map[string]int64
}

func (r *activeCountStub) Create(ctx context.Context, b *models.Booking) error { return nil }
func (r *activeCountStub) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return nil, utils.ErrNotFound
}
func (r *activeCountStub) GetByRef(ctx context.Context, ref string) (*models.Booking, error) {
	return nil, utils.ErrNotFound
}
func (r *activeCountStub) Update(ctx context.Context, b *models.Booking) error { return nil }
func (r *activeCountStub) Delete(ctx context.Context, id string) error         { return nil }
func (r *activeCountStub) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return nil, nil
}
func (r *activeCountStub) List(ctx context.Context, filter bookingRepo.ListFilter) ([]models.Booking, error) {
	return nil, nil
}
func (r *activeCountStub) FindConflictsInclusive(ctx context.Context, vehicleID string, start, end time.Time, excludeID string) ([]models.Booking, error) {
	return nil, nil
}
func (r *activeCountStub) FindConflictsHalfOpen(ctx context.Context, vehicleID string, start, end time.Time, excludeID string) ([]models.Booking, error) {
	return nil, nil
}
func (r *activeCountStub) CountActiveAt(ctx context.Context, vehicleID string, at time.Time) (int64, error) {
	return r.counts[vehicleID], nil
}
func (r *activeCountStub) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return nil, nil
}

func newTestService() (*DefaultVehicleService, *vehicleStore, *activeCountStub) {
	store := &vehicleStore{vehicles: map[string]*models.Vehicle{}}
	counts := &activeCountStub{counts: map[string]int64{}}
	return &DefaultVehicleService{Repo: store, BookingRepo: counts}, store, counts
}

func validInput() VehicleInput {
	return VehicleInput{
		Make:         "Toyota",
		Model:        "Corolla",
		Year:         2021,
		Type:         "sedan",
		LicensePlate: "KAA 123X",
		PricePerHour: 20,
		PricePerDay:  100,
	}
}

func TestCreateDefaultsToAvailable(t *testing.T) {
	svc, _, _ := newTestService()

	v, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, v.ID)
	assert.True(t, v.IsAvailable)
	assert.Equal(t, 100.0, v.PricePerDay)
}

func TestCreateRejectsNonPositiveRates(t *testing.T) {
	svc, _, _ := newTestService()
	in := validInput()
	in.PricePerDay = 0

	_, err := svc.Create(context.Background(), in)
	var ve *utils.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestUpdatePreservesAvailabilityAndImages(t *testing.T) {
	svc, store, _ := newTestService()

	v, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	store.vehicles[v.ID].IsAvailable = false
	store.vehicles[v.ID].Images = []string{"https://img.example/1.jpg"}

	in := validInput()
	in.Color = "red"
	updated, err := svc.Update(context.Background(), v.ID, in)
	require.NoError(t, err)

	assert.Equal(t, "red", updated.Color)
	assert.False(t, updated.IsAvailable)
	assert.Len(t, updated.Images, 1)
}

func TestRecomputeAvailability(t *testing.T) {
	svc, store, counts := newTestService()

	v, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	store.vehicles[v.ID].IsAvailable = false

	// No active booking covers the instant, so the vehicle comes back.
	available, err := svc.RecomputeAvailability(context.Background(), v.ID, time.Now())
	require.NoError(t, err)
	assert.True(t, available)
	assert.True(t, store.vehicles[v.ID].IsAvailable)

	counts.counts[v.ID] = 1
	available, err = svc.RecomputeAvailability(context.Background(), v.ID, time.Now())
	require.NoError(t, err)
	assert.False(t, available)
	assert.False(t, store.vehicles[v.ID].IsAvailable)
}

func TestRecomputeAvailabilityUnknownVehicle(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.RecomputeAvailability(context.Background(), "nope", time.Now())
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestListFiltersAvailability(t *testing.T) {
	svc, store, _ := newTestService()

	a, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	in := validInput()
	in.LicensePlate = "KBB 456Y"
	b, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	store.vehicles[b.ID].IsAvailable = false

	all, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	available, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, a.ID, available[0].ID)
}
