package notify

import (
	"context"
	"fmt"

	"koon/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// updatesTopic is the FCM topic the student site app subscribes to.
const updatesTopic = "koon_updates"

// FCMNotificationService broadcasts announcements over Firebase Cloud Messaging.
type FCMNotificationService struct {
	Client *messaging.Client
}

// NewFCMNotificationService wraps the shared FCM client. Returns nil when
// push is disabled (no credentials configured).
func NewFCMNotificationService() NotificationService {
	if utils.FCMClient == nil {
		return nil
	}
	return &FCMNotificationService{Client: utils.FCMClient}
}

// BroadcastUpdate sends an announcement to the updates topic.
func (s *FCMNotificationService) BroadcastUpdate(ctx context.Context, title, body string) error {
	msg := &messaging.Message{
		Topic: updatesTopic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}
	id, err := s.Client.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to broadcast update: %w", err)
	}
	utils.GetLogger().Info("Broadcast update sent", zap.String("messageID", id), zap.String("topic", updatesTopic))
	return nil
}
