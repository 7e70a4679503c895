package vehicle

import (
	"context"
	"time"

	bookingRepo "fleetbook/database/repository/booking"
	vehicleRepo "fleetbook/database/repository/vehicle"
	"fleetbook/models"
	"fleetbook/utils"

	"github.com/google/uuid"
)

// DefaultVehicleService is the production implementation of VehicleService.
type DefaultVehicleService struct {
	Repo        vehicleRepo.VehicleRepository
	BookingRepo bookingRepo.BookingRepository
}

// Create registers a new vehicle, available by default.
func (s *DefaultVehicleService) Create(ctx context.Context, in VehicleInput) (*models.Vehicle, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	now := time.Now()
	v := &models.Vehicle{
		ID:                 uuid.New().String(),
		Make:               in.Make,
		Model:              in.Model,
		Year:               in.Year,
		Type:               in.Type,
		Color:              in.Color,
		Seats:              in.Seats,
		LicensePlate:       in.LicensePlate,
		PricePerHour:       in.PricePerHour,
		PricePerDay:        in.PricePerDay,
		MemberPricePerHour: in.MemberPricePerHour,
		MemberPricePerDay:  in.MemberPricePerDay,
		IsAvailable:        true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.Repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// GetByID returns a single vehicle.
func (s *DefaultVehicleService) GetByID(ctx context.Context, id string) (*models.Vehicle, error) {
	return s.Repo.GetByID(ctx, id)
}

// Update edits a vehicle's attributes, preserving its availability flag and
// images.
func (s *DefaultVehicleService) Update(ctx context.Context, id string, in VehicleInput) (*models.Vehicle, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	v, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	v.Make = in.Make
	v.Model = in.Model
	v.Year = in.Year
	v.Type = in.Type
	v.Color = in.Color
	v.Seats = in.Seats
	v.LicensePlate = in.LicensePlate
	v.PricePerHour = in.PricePerHour
	v.PricePerDay = in.PricePerDay
	v.MemberPricePerHour = in.MemberPricePerHour
	v.MemberPricePerDay = in.MemberPricePerDay

	if err := s.Repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Delete removes a vehicle from the registry.
func (s *DefaultVehicleService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// List returns the fleet, optionally restricted to available vehicles.
func (s *DefaultVehicleService) List(ctx context.Context, onlyAvailable bool) ([]models.Vehicle, error) {
	return s.Repo.List(ctx, onlyAvailable)
}

// AddImage attaches an uploaded image URL to the vehicle.
func (s *DefaultVehicleService) AddImage(ctx context.Context, id, url string) error {
	return s.Repo.AddImage(ctx, id, url)
}

// RecomputeAvailability derives the availability flag from the bookings
// themselves: a vehicle is available when no active booking covers the given
// instant. The public booking flow only ever flips the flag off, so this is
// how a cancelled or completed booking's vehicle comes back on the listing.
func (s *DefaultVehicleService) RecomputeAvailability(ctx context.Context, id string, at time.Time) (bool, error) {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return false, err
	}
	active, err := s.BookingRepo.CountActiveAt(ctx, id, at)
	if err != nil {
		return false, err
	}
	available := active == 0
	if err := s.Repo.SetAvailability(ctx, id, available); err != nil {
		return false, err
	}
	return available, nil
}

func validateInput(in VehicleInput) error {
	if in.PricePerHour <= 0 || in.PricePerDay <= 0 {
		return utils.NewValidationError("vehicle rates must be greater than zero")
	}
	return nil
}
