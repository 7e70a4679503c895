package booking

import (
	"context"
	"encoding/json"
	"time"

	bookingRepo "fleetbook/database/repository/booking"
	counterRepo "fleetbook/database/repository/counter"
	userRepo "fleetbook/database/repository/user"
	vehicleRepo "fleetbook/database/repository/vehicle"
	"fleetbook/models"
	"fleetbook/services/invoice"
	"fleetbook/services/notification"
	"fleetbook/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const trackCacheTTL = 30 * time.Second

// DefaultBookingService is the production implementation of BookingService.
// Lock, Cache and Notifier are optional; a nil Lock skips serialization and
// is only meant for tests.
type DefaultBookingService struct {
	Repo        bookingRepo.BookingRepository
	VehicleRepo vehicleRepo.VehicleRepository
	UserRepo    userRepo.UserRepository
	Counter     counterRepo.CounterRepository
	Invoices    invoice.InvoiceService
	Lock        utils.VehicleLocker
	Cache       *redis.Client
	Notifier    notification.NotificationService
}

// Create handles the public booking flow: the vehicle must be flagged
// available, conflicts are checked with inclusive bounds, and pricing is
// continuous. The vehicle is taken off the listing on success.
func (s *DefaultBookingService) Create(ctx context.Context, actor models.Actor, in CreateBookingInput) (*models.Booking, error) {
	if err := validateDates(in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	vehicle, err := s.VehicleRepo.GetByID(ctx, in.VehicleID)
	if err != nil {
		return nil, err
	}
	if !vehicle.IsAvailable {
		return nil, utils.NewValidationError("vehicle %s is not available for booking", vehicle.ID)
	}

	user, err := s.UserRepo.GetByID(ctx, actor.ID)
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

	conflicts, err := s.Repo.FindConflictsInclusive(ctx, in.VehicleID, in.StartDate, in.EndDate, "")
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

	price := ContinuousPrice(in.StartDate, in.EndDate,
		vehicle.HourlyRate(user.Member), vehicle.DailyRate(user.Member))

	booking, err := s.insertBooking(ctx, actor, user.ID, in, price)
	if err != nil {
		return nil, err
	}

	// Legacy behaviour: the public flow takes the vehicle off the listing.
	// Cancellation does not flip it back; admins recompute availability
	// explicitly from active bookings.
	if err := s.VehicleRepo.SetAvailability(ctx, vehicle.ID, false); err != nil {
		utils.GetLogger().Warn("failed to mark vehicle unavailable",
			zap.String("vehicleId", vehicle.ID), zap.Error(err))
	}
	return booking, nil
}

// insertBooking generates the reference, persists the booking and creates
// the linked invoice. Shared by the public and admin create paths.
func (s *DefaultBookingService) insertBooking(ctx context.Context, actor models.Actor, userID string, in CreateBookingInput, price float64) (*models.Booking, error) {
	now := time.Now()
	ref, err := s.nextBookingRef(ctx, now)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:            uuid.New().String(),
		BookingRef:    ref,
		UserID:        userID,
		VehicleID:     in.VehicleID,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		TotalPrice:    price,
		Deposit:       0,
		Balance:       price,
		Status:        models.BookingStatusPending,
		PaymentStatus: models.BookingPaymentPending,
		StatusHistory: []models.StatusHistoryEntry{{
			Status:    models.BookingStatusPending,
			ChangedBy: actor.ID,
			ChangedAt: now,
			Note:      "booking created",
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	if _, err := s.Invoices.CreateForBooking(ctx, booking); err != nil {
		utils.GetLogger().Error("failed to create invoice for booking",
			zap.String("bookingRef", booking.BookingRef), zap.Error(err))
	} else if s.Notifier != nil {
		if snap, err := s.Invoices.Snapshot(ctx, booking.ID); err == nil {
			if err := s.Notifier.SendInvoiceEmail(ctx, snap); err != nil {
				utils.GetLogger().Warn("invoice email failed",
					zap.String("bookingRef", booking.BookingRef), zap.Error(err))
			}
		}
	}
	return booking, nil
}

// GetByID returns a single booking.
func (s *DefaultBookingService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return s.Repo.GetByID(ctx, id)
}

// TrackByRef is the public status lookup by booking reference, briefly
// cached to absorb refresh polling.
func (s *DefaultBookingService) TrackByRef(ctx context.Context, ref string) (*models.Booking, error) {
	cacheKey := "booking:track:" + ref
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var booking models.Booking
			if err := json.Unmarshal([]byte(data), &booking); err == nil {
				return &booking, nil
			}
		}
	}

	booking, err := s.Repo.GetByRef(ctx, ref)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(booking); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, data, trackCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache booking", zap.String("ref", ref), zap.Error(err))
			}
		}
	}
	return booking, nil
}

// ListForUser returns the actor's own bookings.
func (s *DefaultBookingService) ListForUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// AdminList returns bookings matching the given filter.
func (s *DefaultBookingService) AdminList(ctx context.Context, filter bookingRepo.ListFilter) ([]models.Booking, error) {
	return s.Repo.List(ctx, filter)
}

func validateDates(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return utils.NewValidationError("startDate and endDate are required")
	}
	if !start.Before(end) {
		return utils.NewValidationError("startDate must be before endDate")
	}
	return nil
}
