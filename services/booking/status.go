package booking

import (
	"context"
	"time"

	"fleetbook/models"
	"fleetbook/utils"

	"go.uber.org/zap"
)

var knownStatuses = map[string]bool{
	models.BookingStatusPending:   true,
	models.BookingStatusConfirmed: true,
	models.BookingStatusOngoing:   true,
	models.BookingStatusCancelled: true,
	models.BookingStatusCompleted: true,
}

// UpdateStatus applies a status transition and appends an audit entry.
// Transitions are not restricted to a strict state machine; the history
// records who did what. Vehicle availability is deliberately not reverted
// on cancellation (see vehicle.RecomputeAvailability).
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, actor models.Actor, id, status, note string) (*models.Booking, error) {
	if !knownStatuses[status] {
		return nil, utils.NewValidationError("unknown booking status %q", status)
	}

	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	booking.Status = status
	booking.StatusHistory = append(booking.StatusHistory, models.StatusHistoryEntry{
		Status:    status,
		ChangedBy: actor.ID,
		ChangedAt: time.Now(),
		Note:      note,
	})
	if err := s.Repo.Update(ctx, booking); err != nil {
		return nil, err
	}

	s.notifyStatusChange(ctx, booking, note)
	return booking, nil
}

// notifyStatusChange sends a push and an email, best-effort. Failures are
// logged and never retried.
func (s *DefaultBookingService) notifyStatusChange(ctx context.Context, booking *models.Booking, note string) {
	if s.Notifier == nil {
		return
	}
	logger := utils.GetLogger()

	user, err := s.UserRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		logger.Warn("status notification skipped, user lookup failed",
			zap.String("bookingRef", booking.BookingRef), zap.Error(err))
		return
	}

	if err := s.Notifier.SendBookingPush(ctx, user,
		"Booking "+booking.BookingRef,
		"Your booking is now "+booking.Status,
		map[string]string{"bookingRef": booking.BookingRef, "status": booking.Status},
	); err != nil {
		logger.Warn("booking push failed", zap.String("bookingRef", booking.BookingRef), zap.Error(err))
	}

	if err := s.Notifier.SendStatusEmail(ctx, user, booking, note); err != nil {
		logger.Warn("booking status email failed", zap.String("bookingRef", booking.BookingRef), zap.Error(err))
	}
}
