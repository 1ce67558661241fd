// Package memory keeps alerts and geofences in process memory. It backs local
// development and tests, with the same partition layout as the durable stores.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"raahi/internal/domain/entity"
	"raahi/internal/domain/repository"
)

type userPartition struct {
	presence *entity.UserPresence
	alerts   map[string]*entity.PanicAlert
}

type alertRepository struct {
	mu    sync.RWMutex
	users map[string]*userPartition
	now   func() time.Time
}

// NewAlertRepository creates an empty in-memory alert store.
func NewAlertRepository() repository.AlertRepository {
	return &alertRepository{
		users: make(map[string]*userPartition),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (repo *alertRepository) partition(ownerUserID string) *userPartition {
	p, ok := repo.users[ownerUserID]
	if !ok {
		p = &userPartition{alerts: make(map[string]*entity.PanicAlert)}
		repo.users[ownerUserID] = p
	}

	return p
}

func (repo *alertRepository) UpsertPresence(_ context.Context, presence *entity.UserPresence) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	p := repo.partition(presence.UID)
	next := *presence
	if p.presence != nil && !p.presence.CreatedAt.IsZero() {
		next.CreatedAt = p.presence.CreatedAt
	}
	p.presence = &next

	return nil
}

func (repo *alertRepository) CreateAlert(_ context.Context, alert *entity.PanicAlert) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	now := repo.now()
	alert.CreatedAt = now
	alert.UpdatedAt = now

	stored := *alert
	repo.partition(alert.OwnerUserID).alerts[alert.ID] = &stored

	return nil
}

func (repo *alertRepository) FindAlert(_ context.Context, ownerUserID, alertID string) (*entity.PanicAlert, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	p, ok := repo.users[ownerUserID]
	if !ok {
		return nil, repository.ErrAlertNotFound
	}
	alert, ok := p.alerts[alertID]
	if !ok {
		return nil, repository.ErrAlertNotFound
	}

	return copyAlert(alert), nil
}

func (repo *alertRepository) FindAlertByID(_ context.Context, alertID string) (*entity.PanicAlert, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, p := range repo.users {
		if alert, ok := p.alerts[alertID]; ok {
			return copyAlert(alert), nil
		}
	}

	return nil, repository.ErrAlertNotFound
}

func (repo *alertRepository) UpdateAlert(_ context.Context, ownerUserID, alertID string, mutate repository.AlertMutator) (*entity.PanicAlert, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	p, ok := repo.users[ownerUserID]
	if !ok {
		return nil, repository.ErrAlertNotFound
	}
	current, ok := p.alerts[alertID]
	if !ok {
		return nil, repository.ErrAlertNotFound
	}

	next := copyAlert(current)
	if err := mutate(next); err != nil {
		return nil, err
	}
	p.alerts[alertID] = next

	return copyAlert(next), nil
}

func (repo *alertRepository) ListAllAlerts(_ context.Context, filter repository.AlertFilter) ([]*entity.PanicAlert, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	alerts := make([]*entity.PanicAlert, 0)
	for _, p := range repo.users {
		for _, alert := range p.alerts {
			if filter.Status != "" && alert.Status != filter.Status {
				continue
			}
			alerts = append(alerts, copyAlert(alert))
		}
	}

	return newestFirst(alerts, filter.Limit), nil
}

func (repo *alertRepository) ListUserAlerts(_ context.Context, ownerUserID string, limit int) ([]*entity.PanicAlert, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	alerts := make([]*entity.PanicAlert, 0)
	if p, ok := repo.users[ownerUserID]; ok {
		for _, alert := range p.alerts {
			alerts = append(alerts, copyAlert(alert))
		}
	}

	return newestFirst(alerts, limit), nil
}

// Presence returns the stored presence record.
func (repo *alertRepository) Presence(uid string) (*entity.UserPresence, bool) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	p, ok := repo.users[uid]
	if !ok || p.presence == nil {
		return nil, false
	}
	presence := *p.presence

	return &presence, true
}

func copyAlert(a *entity.PanicAlert) *entity.PanicAlert {
	c := *a
	if a.ClientTimestamp != nil {
		ts := *a.ClientTimestamp
		c.ClientTimestamp = &ts
	}

	return &c
}

// newestFirst sorts by creation time descending, breaking ties by id, and truncates to limit when positive
func newestFirst(alerts []*entity.PanicAlert, limit int) []*entity.PanicAlert {
	slices.SortFunc(alerts, func(a, b *entity.PanicAlert) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}

		return 0
	})
	if limit > 0 && len(alerts) > limit {
		alerts = alerts[:limit]
	}

	return alerts
}
