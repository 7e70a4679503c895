package notification

import (
	"context"
	"fmt"

	"fleetbook/models"

	"firebase.google.com/go/v4/messaging"
)

// SendBookingPush looks up the user's FCM token and sends a push message.
func (s *DefaultNotificationService) SendBookingPush(ctx context.Context, user *models.User, title, body string, data map[string]string) error {
	if s.FCM == nil {
		return fmt.Errorf("push notifications are not configured")
	}
	if user.FCMToken == "" {
		return fmt.Errorf("user %s has no FCM token", user.ID)
	}

	msg := &messaging.Message{
		Token: user.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := s.FCM.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}
