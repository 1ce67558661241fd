package service

import (
	"context"
)

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendTopicNotification pushes a notification to every device subscribed to topic
	SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error
}

// LiveAlertMirror keeps a realtime copy of open alerts for operator dashboards
type LiveAlertMirror interface {
	// MirrorAlert writes the alert under live_alerts/{alertId}
	MirrorAlert(ctx context.Context, event *AlertEvent) error
}
