// Package notification delivers alert pushes to operator devices.
package notification

import (
	"context"
	"log/slog"

	"raahi/internal/domain/service"
	"raahi/internal/errors"
	"raahi/internal/infra/firebase"

	firebaseSDK "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
)

// topicSender is the part of the messaging client used for topic pushes.
type topicSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client topicSender
	logger *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In

	Logger      *slog.Logger
	FirebaseApp *firebaseSDK.App
}

// NewNotificationService returns the FCM sender, or a log-only sender when
// Firebase is not configured.
func NewNotificationService(params Params) (service.NotificationService, error) {
	if params.FirebaseApp == nil {
		params.Logger.Warn("Firebase not configured, alert pushes are only logged")

		return &logService{logger: params.Logger}, nil
	}

	client, err := firebase.NewMessagingClient(params.FirebaseApp)
	if err != nil {
		return nil, err
	}

	return &firebaseService{client: client, logger: params.Logger}, nil
}

// SendTopicNotification pushes a high priority message to every device subscribed to topic
func (s *firebaseService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{"apns-priority": "10"},
		},
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return errors.Wrapf(err, "failed to send notification to topic %s", topic)
	}

	s.logger.DebugContext(ctx, "Topic notification sent",
		slog.String("topic", topic),
		slog.String("message_id", messageID),
	)

	return nil
}

type logService struct {
	logger *slog.Logger
}

func (s *logService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error {
	s.logger.InfoContext(ctx, "Topic notification (not sent)",
		slog.String("topic", topic),
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data),
	)

	return nil
}
