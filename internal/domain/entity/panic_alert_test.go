package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActiveAlert() *PanicAlert {
	return &PanicAlert{
		ID:          "alert-1",
		OwnerUserID: "user-1",
		Status:      AlertStatusActive,
	}
}

func TestAlertStatus_CanTransitionTo(t *testing.T) {
	all := []AlertStatus{AlertStatusActive, AlertStatusInProgress, AlertStatusResolved, AlertStatusFalseAlarm}
	allowed := map[AlertStatus][]AlertStatus{
		AlertStatusActive:     {AlertStatusInProgress, AlertStatusResolved, AlertStatusFalseAlarm},
		AlertStatusInProgress: {AlertStatusResolved, AlertStatusFalseAlarm},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, s := range allowed[from] {
				if s == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestAlertStatus_IsTerminal(t *testing.T) {
	assert.False(t, AlertStatusActive.IsTerminal())
	assert.False(t, AlertStatusInProgress.IsTerminal())
	assert.True(t, AlertStatusResolved.IsTerminal())
	assert.True(t, AlertStatusFalseAlarm.IsTerminal())
}

func TestPanicAlert_Transition_ResolvedIsTerminal(t *testing.T) {
	alert := newActiveAlert()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, alert.Transition(AlertStatusResolved, "operator-1", nil, now))
	assert.Equal(t, AlertStatusResolved, alert.Status)
	assert.True(t, alert.Resolved)
	assert.Equal(t, now, alert.UpdatedAt)
	assert.Equal(t, "operator-1", alert.UpdatedBy)

	err := alert.Transition(AlertStatusActive, "operator-1", nil, now)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.Equal(t, AlertStatusResolved, alert.Status)

	for _, next := range []AlertStatus{AlertStatusInProgress, AlertStatusFalseAlarm, AlertStatusResolved} {
		assert.ErrorIs(t, alert.Transition(next, "operator-1", nil, now), ErrIllegalTransition)
	}
}

func TestPanicAlert_Transition_InProgressThenFalseAlarm(t *testing.T) {
	alert := newActiveAlert()
	notes := "tourist confirmed safe"
	now := time.Now()

	require.NoError(t, alert.Transition(AlertStatusInProgress, "op", nil, now))
	assert.False(t, alert.Resolved)
	assert.Empty(t, alert.Notes)

	require.NoError(t, alert.Transition(AlertStatusFalseAlarm, "op", &notes, now))
	assert.Equal(t, AlertStatusFalseAlarm, alert.Status)
	assert.True(t, alert.Resolved)
	assert.Equal(t, notes, alert.Notes)
}

func TestPanicAlert_Transition_UnknownStatus(t *testing.T) {
	alert := newActiveAlert()

	err := alert.Transition(AlertStatus("escalated"), "op", nil, time.Now())

	assert.ErrorIs(t, err, ErrUnknownAlertStatus)
	assert.Equal(t, AlertStatusActive, alert.Status)
}

func TestPanicAlert_Path(t *testing.T) {
	alert := newActiveAlert()

	assert.Equal(t, "users/user-1/panic_alerts/alert-1", alert.Path())
}
