package usecase

import (
	"context"
	"time"

	"raahi/internal/domain/entity"
)

// CreateAlertInput represents a panic alert raised by a device
type CreateAlertInput struct {
	OwnerUserID string
	Email       string
	DisplayName string
	IsAnonymous bool

	Location entity.Coordinate
	// LocationDegraded marks a location the device could not acquire.
	// Only a degraded alert may carry the (0,0) placeholder.
	LocationDegraded bool

	UserAgent       string
	ClientTimestamp *time.Time
}

// CreateAlertResult confirms a stored alert
type CreateAlertResult struct {
	Success          bool              `json:"success"`
	AlertID          string            `json:"alertId"`
	OwnerUserID      string            `json:"userId"`
	Path             string            `json:"firestorePath"`
	Location         entity.Coordinate `json:"location"`
	LocationDegraded bool              `json:"locationDegraded"`
	CreatedAt        time.Time         `json:"createdAt"`
}

// TransitionAlertInput moves an alert through its lifecycle
type TransitionAlertInput struct {
	AlertID string
	// OwnerUserID may be empty; the alert is then located by id.
	OwnerUserID string
	Status      entity.AlertStatus
	ActorID     string
	Notes       *string
}

// PanicUsecase defines the alert store and lifecycle use cases
type PanicUsecase interface {
	// CreateAlert validates the location, upserts the owner's presence record and stores the alert
	CreateAlert(ctx context.Context, input *CreateAlertInput) (*CreateAlertResult, error)

	// ListAllAlerts is the operator fan-in read across every owner
	ListAllAlerts(ctx context.Context, limit int, status entity.AlertStatus) ([]*entity.PanicAlert, error)

	// GetAlert reads one alert; an empty owner searches every partition
	GetAlert(ctx context.Context, ownerUserID, alertID string) (*entity.PanicAlert, error)

	// ListUserAlerts lists the caller's own alerts
	ListUserAlerts(ctx context.Context, ownerUserID string, limit int) ([]*entity.PanicAlert, error)

	// TransitionAlert applies a lifecycle transition
	TransitionAlert(ctx context.Context, input *TransitionAlertInput) (*entity.PanicAlert, error)

	// AlertQRCode renders the responder QR code for an alert
	AlertQRCode(ctx context.Context, ownerUserID, alertID string) ([]byte, error)
}
