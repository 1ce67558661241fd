// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"raahi/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrAlertNotFound is returned when no alert exists at the requested path.
var ErrAlertNotFound = errors.New("panic alert not found")

// AlertFilter narrows the operator fan-in query.
type AlertFilter struct {
	// Limit caps the number of returned alerts. Must be positive.
	Limit int
	// Status keeps only alerts in this status when non-empty.
	Status entity.AlertStatus
}

// AlertMutator changes an alert loaded inside an atomic update. Returning an
// error aborts the update without writing.
type AlertMutator func(alert *entity.PanicAlert) error

// AlertRepository persists panic alerts partitioned by owner:
// users/{ownerUserId} holds the presence record and
// users/{ownerUserId}/panic_alerts/{alertId} holds each alert.
// Storage failures are reported as domain storage errors (503).
type AlertRepository interface {
	// UpsertPresence merge-writes the owner's presence record. CreatedAt is only
	// written when the record does not exist yet. Safe to repeat.
	UpsertPresence(ctx context.Context, presence *entity.UserPresence) error

	// CreateAlert inserts a new alert under its owner's partition and stamps the
	// server creation time on the entity.
	CreateAlert(ctx context.Context, alert *entity.PanicAlert) error

	// FindAlert is a point read by owner and id.
	FindAlert(ctx context.Context, ownerUserID, alertID string) (*entity.PanicAlert, error)

	// FindAlertByID locates an alert by id across every owner partition.
	FindAlertByID(ctx context.Context, alertID string) (*entity.PanicAlert, error)

	// UpdateAlert applies mutate to the stored alert and writes it back in one
	// atomic read-modify-write.
	UpdateAlert(ctx context.Context, ownerUserID, alertID string, mutate AlertMutator) (*entity.PanicAlert, error)

	// ListAllAlerts scans every owner partition, newest first. Each alert carries
	// the owner id recovered from its storage path.
	ListAllAlerts(ctx context.Context, filter AlertFilter) ([]*entity.PanicAlert, error)

	// ListUserAlerts lists one owner's alerts, newest first.
	ListUserAlerts(ctx context.Context, ownerUserID string, limit int) ([]*entity.PanicAlert, error)
}
