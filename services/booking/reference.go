package booking

import (
	"context"
	"fmt"
	"time"
)

// FormatBookingRef renders a booking reference as BOOK-YYYYMMDD-NNN with the
// sequence zero-padded to three digits.
func FormatBookingRef(at time.Time, seq int64) string {
	return fmt.Sprintf("BOOK-%s-%03d", at.Format("20060102"), seq)
}

// nextBookingRef draws the next per-day sequence number from the atomic
// counter and formats the reference.
func (s *DefaultBookingService) nextBookingRef(ctx context.Context, at time.Time) (string, error) {
	seq, err := s.Counter.Next(ctx, "bookings:"+at.Format("20060102"))
	if err != nil {
		return "", fmt.Errorf("failed to generate booking reference: %w", err)
	}
	return FormatBookingRef(at, seq), nil
}
