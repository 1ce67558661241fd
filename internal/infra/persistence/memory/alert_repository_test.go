package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"raahi/internal/domain/entity"
	"raahi/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAlertRepository(start time.Time) *alertRepository {
	repo := NewAlertRepository().(*alertRepository)
	tick := start
	repo.now = func() time.Time {
		tick = tick.Add(time.Second)

		return tick
	}

	return repo
}

func TestAlertRepository_ListAllAlerts_AcrossOwners(t *testing.T) {
	ctx := context.Background()
	repo := newTestAlertRepository(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	owners := []string{"u1", "u2", "u3"}
	for i := range 8 {
		alert := &entity.PanicAlert{
			ID:          fmt.Sprintf("a%d", i),
			OwnerUserID: owners[i%len(owners)],
			Status:      entity.AlertStatusActive,
		}
		require.NoError(t, repo.CreateAlert(ctx, alert))
	}

	alerts, err := repo.ListAllAlerts(ctx, repository.AlertFilter{Limit: 5})
	require.NoError(t, err)
	require.Len(t, alerts, 5)

	for i, alert := range alerts {
		assert.Equal(t, fmt.Sprintf("a%d", 7-i), alert.ID)
		assert.Equal(t, owners[(7-i)%len(owners)], alert.OwnerUserID)
		if i > 0 {
			assert.True(t, alerts[i-1].CreatedAt.After(alert.CreatedAt))
		}
	}
}

func TestAlertRepository_ListAllAlerts_StatusFilter(t *testing.T) {
	ctx := context.Background()
	repo := newTestAlertRepository(time.Now())

	require.NoError(t, repo.CreateAlert(ctx, &entity.PanicAlert{ID: "a1", OwnerUserID: "u1", Status: entity.AlertStatusActive}))
	require.NoError(t, repo.CreateAlert(ctx, &entity.PanicAlert{ID: "a2", OwnerUserID: "u2", Status: entity.AlertStatusResolved}))

	alerts, err := repo.ListAllAlerts(ctx, repository.AlertFilter{Limit: 10, Status: entity.AlertStatusResolved})

	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "a2", alerts[0].ID)
}

func TestAlertRepository_UpsertPresence_KeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := newTestAlertRepository(time.Now())
	first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	later := first.Add(48 * time.Hour)

	require.NoError(t, repo.UpsertPresence(ctx, &entity.UserPresence{UID: "u1", Email: "a@example.com", LastActive: first, CreatedAt: first}))
	require.NoError(t, repo.UpsertPresence(ctx, &entity.UserPresence{UID: "u1", Email: "b@example.com", LastActive: later, CreatedAt: later}))

	presence, ok := repo.Presence("u1")
	require.True(t, ok)
	assert.Equal(t, first, presence.CreatedAt)
	assert.Equal(t, later, presence.LastActive)
	assert.Equal(t, "b@example.com", presence.Email)
}

func TestAlertRepository_UpdateAlert(t *testing.T) {
	ctx := context.Background()
	repo := newTestAlertRepository(time.Now())
	require.NoError(t, repo.CreateAlert(ctx, &entity.PanicAlert{ID: "a1", OwnerUserID: "u1", Status: entity.AlertStatusActive}))

	updated, err := repo.UpdateAlert(ctx, "u1", "a1", func(a *entity.PanicAlert) error {
		return a.Transition(entity.AlertStatusResolved, "op", nil, time.Now())
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AlertStatusResolved, updated.Status)

	_, err = repo.UpdateAlert(ctx, "u1", "a1", func(a *entity.PanicAlert) error {
		return a.Transition(entity.AlertStatusActive, "op", nil, time.Now())
	})
	assert.ErrorIs(t, err, entity.ErrIllegalTransition)

	stored, err := repo.FindAlert(ctx, "u1", "a1")
	require.NoError(t, err)
	assert.Equal(t, entity.AlertStatusResolved, stored.Status)

	_, err = repo.UpdateAlert(ctx, "u2", "a1", func(*entity.PanicAlert) error { return nil })
	assert.ErrorIs(t, err, repository.ErrAlertNotFound)
}

func TestAlertRepository_FindAlertByID(t *testing.T) {
	ctx := context.Background()
	repo := newTestAlertRepository(time.Now())
	require.NoError(t, repo.CreateAlert(ctx, &entity.PanicAlert{ID: "a9", OwnerUserID: "u3"}))

	alert, err := repo.FindAlertByID(ctx, "a9")
	require.NoError(t, err)
	assert.Equal(t, "u3", alert.OwnerUserID)

	_, err = repo.FindAlertByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrAlertNotFound)

	alerts, err := repo.ListUserAlerts(ctx, "nobody", 10)
	require.NoError(t, err)
	assert.NotNil(t, alerts)
	assert.Empty(t, alerts)
}
