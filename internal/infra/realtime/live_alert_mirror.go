// Package realtime mirrors open alerts into the Firebase Realtime Database so
// operator dashboards can subscribe to them.
package realtime

import (
	"context"
	"log/slog"
	"path"
	"time"

	"raahi/config"
	"raahi/internal/domain/entity"
	"raahi/internal/domain/service"
	"raahi/internal/errors"
	"raahi/internal/infra/firebase"

	firebaseSDK "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"go.uber.org/fx"
)

// liveAlert is the node written under live_alerts/{alertId}.
type liveAlert struct {
	AlertID          string  `json:"alertId"`
	UserID           string  `json:"userId"`
	UserName         string  `json:"userName,omitempty"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	LocationDegraded bool    `json:"locationDegraded"`
	Status           string  `json:"status"`
	CreatedAt        int64   `json:"createdAt"`
}

type writer interface {
	Set(ctx context.Context, nodePath string, v any) error
}

type dbWriter struct {
	client *db.Client
}

func (w dbWriter) Set(ctx context.Context, nodePath string, v any) error {
	return w.client.NewRef(nodePath).Set(ctx, v)
}

type liveAlertMirror struct {
	writer writer
	logger *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	FirebaseApp *firebaseSDK.App
}

// NewLiveAlertMirror returns the Realtime Database mirror, or a no-op when
// mirroring is disabled or Firebase is not configured.
func NewLiveAlertMirror(params Params) (service.LiveAlertMirror, error) {
	if params.Config.Worker == nil || !params.Config.Worker.MirrorLiveAlerts {
		params.Logger.Info("Live alert mirror disabled")

		return noopMirror{}, nil
	}
	if params.FirebaseApp == nil {
		params.Logger.Warn("Live alert mirror enabled without Firebase, mirroring skipped")

		return noopMirror{}, nil
	}

	client, err := firebase.NewDatabaseClient(params.FirebaseApp)
	if err != nil {
		return nil, err
	}

	return &liveAlertMirror{writer: dbWriter{client: client}, logger: params.Logger}, nil
}

// MirrorAlert writes the alert under live_alerts/{alertId}
func (m *liveAlertMirror) MirrorAlert(ctx context.Context, event *service.AlertEvent) error {
	if event.AlertID == "" {
		return errors.New("alert event has no alert id")
	}

	createdAt := event.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	node := liveAlert{
		AlertID:          event.AlertID,
		UserID:           event.OwnerUserID,
		UserName:         event.UserName,
		Latitude:         event.Latitude,
		Longitude:        event.Longitude,
		LocationDegraded: event.LocationDegraded,
		Status:           event.Status,
		CreatedAt:        createdAt.UnixMilli(),
	}

	nodePath := path.Join(entity.LiveAlertsRealtimePath, event.AlertID)
	if err := m.writer.Set(ctx, nodePath, node); err != nil {
		return errors.Wrapf(err, "failed to mirror alert to %s", nodePath)
	}

	m.logger.DebugContext(ctx, "Alert mirrored", slog.String("path", nodePath))

	return nil
}

type noopMirror struct{}

func (noopMirror) MirrorAlert(context.Context, *service.AlertEvent) error {
	return nil
}
