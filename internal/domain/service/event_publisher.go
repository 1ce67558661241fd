package service

import (
	"context"
	"time"
)

// Message attribute keys sent alongside every alert event.
const (
	EventAttrAlertID     = "alert_id"
	EventAttrOwnerUserID = "owner_user_id"
	EventAttrStatus      = "status"
	EventAttrRequestID   = "request_id"
)

// AlertEvent announces a freshly stored panic alert to the alert worker
type AlertEvent struct {
	RequestID        string    `json:"request_id,omitempty"`
	AlertID          string    `json:"alert_id"`
	OwnerUserID      string    `json:"owner_user_id"`
	UserName         string    `json:"user_name,omitempty"`
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	LocationDegraded bool      `json:"location_degraded"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

// Attributes returns the filterable message attributes of the event.
func (e *AlertEvent) Attributes() map[string]string {
	attributes := map[string]string{
		EventAttrAlertID:     e.AlertID,
		EventAttrOwnerUserID: e.OwnerUserID,
		EventAttrStatus:      e.Status,
	}
	if e.RequestID != "" {
		attributes[EventAttrRequestID] = e.RequestID
	}

	return attributes
}

// OrderingKey keeps one reporter's alerts in publish order.
func (e *AlertEvent) OrderingKey() string {
	return e.OwnerUserID
}

// EventPublisher hands alert events to the asynchronous fan-out.
type EventPublisher interface {
	PublishAlertEvent(ctx context.Context, event *AlertEvent) error

	// Close flushes pending messages and releases the client.
	Close() error
}
