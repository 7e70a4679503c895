package booking

import (
	"context"

	"fleetbook/models"
	"fleetbook/utils"
)

// AdminCreate books a vehicle on behalf of a customer. It bypasses the
// availability flag but still enforces the overlap invariant, using the
// half-open boundary rule: bookings may share an endpoint instant. Pricing
// rounds partial days up with a one-day minimum.
func (s *DefaultBookingService) AdminCreate(ctx context.Context, actor models.Actor, in CreateBookingInput) (*models.Booking, error) {
	if err := validateDates(in.StartDate, in.EndDate); err != nil {
		return nil, err
	}
	if in.UserID == "" {
		return nil, utils.NewValidationError("userId is required")
	}

	vehicle, err := s.VehicleRepo.GetByID(ctx, in.VehicleID)
	if err != nil {
		return nil, err
	}
	user, err := s.UserRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if s.Lock != nil {
		release, err := s.Lock.Acquire(ctx, in.VehicleID)
		if err != nil {
			return nil, err
		}
		defer release()
	}

	conflicts, err := s.Repo.FindConflictsHalfOpen(ctx, in.VehicleID, in.StartDate, in.EndDate, "")
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, &utils.ConflictError{
			VehicleID: in.VehicleID,
			Start:     conflicts[0].StartDate,
			End:       conflicts[0].EndDate,
		}
	}

	price := CeilingDayPrice(in.StartDate, in.EndDate, vehicle.DailyRate(user.Member))
	return s.insertBooking(ctx, actor, user.ID, in, price)
}

// AdminUpdate reschedules or re-assigns a booking. Date or vehicle changes
// re-run the half-open conflict check (excluding the booking itself) and
// reprice with the ceiling strategy.
func (s *DefaultBookingService) AdminUpdate(ctx context.Context, actor models.Actor, id string, in UpdateBookingInput) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	vehicleID := booking.VehicleID
	if in.VehicleID != "" {
		vehicleID = in.VehicleID
	}
	start := booking.StartDate
	if !in.StartDate.IsZero() {
		start = in.StartDate
	}
	end := booking.EndDate
	if !in.EndDate.IsZero() {
		end = in.EndDate
	}
	if err := validateDates(start, end); err != nil {
		return nil, err
	}

	vehicle, err := s.VehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	user, err := s.UserRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		return nil, err
	}

	if s.Lock != nil {
		release, err := s.Lock.Acquire(ctx, vehicleID)
		if err != nil {
			return nil, err
		}
		defer release()
	}

	conflicts, err := s.Repo.FindConflictsHalfOpen(ctx, vehicleID, start, end, booking.ID)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, &utils.ConflictError{
			VehicleID: vehicleID,
			Start:     conflicts[0].StartDate,
			End:       conflicts[0].EndDate,
		}
	}

	booking.VehicleID = vehicleID
	booking.StartDate = start
	booking.EndDate = end
	booking.TotalPrice = CeilingDayPrice(start, end, vehicle.DailyRate(user.Member))
	booking.Balance = booking.TotalPrice - booking.Deposit

	if err := s.Repo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// AdminDelete removes the booking document outright, bypassing the normal
// lifecycle. The linked invoice and payments are kept for the books.
func (s *DefaultBookingService) AdminDelete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
