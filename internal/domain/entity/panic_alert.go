package entity

import (
	"fmt"
	"slices"
	"time"

	"raahi/internal/errors"
)

// Alert lifecycle errors.
var (
	ErrUnknownAlertStatus = errors.New("unknown alert status")
	ErrIllegalTransition  = errors.New("alert status transition not allowed")
)

// AlertStatus is the lifecycle state of a panic alert.
type AlertStatus string

const (
	// AlertStatusActive is the initial state of every alert.
	AlertStatusActive AlertStatus = "active"
	// AlertStatusInProgress means an operator is responding.
	AlertStatusInProgress AlertStatus = "in_progress"
	// AlertStatusResolved is terminal.
	AlertStatusResolved AlertStatus = "resolved"
	// AlertStatusFalseAlarm is terminal.
	AlertStatusFalseAlarm AlertStatus = "false_alarm"
)

var alertTransitions = map[AlertStatus][]AlertStatus{
	AlertStatusActive:     {AlertStatusInProgress, AlertStatusResolved, AlertStatusFalseAlarm},
	AlertStatusInProgress: {AlertStatusResolved, AlertStatusFalseAlarm},
	AlertStatusResolved:   nil,
	AlertStatusFalseAlarm: nil,
}

// String returns the string representation of the status.
func (s AlertStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one of the four known values.
func (s AlertStatus) IsValid() bool {
	_, ok := alertTransitions[s]

	return ok
}

// IsTerminal reports whether no transition leaves this status.
func (s AlertStatus) IsTerminal() bool {
	return s == AlertStatusResolved || s == AlertStatusFalseAlarm
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s AlertStatus) CanTransitionTo(next AlertStatus) bool {
	return slices.Contains(alertTransitions[s], next)
}

// Storage layout names shared by every backend.
const (
	UsersCollection        = "users"
	PanicAlertsCollection  = "panic_alerts"
	GeofencesCollection    = "geofences"
	LiveAlertsRealtimePath = "live_alerts"
)

// AlertPath returns the storage path of an alert inside its owner's partition.
func AlertPath(ownerUserID, alertID string) string {
	return fmt.Sprintf("%s/%s/%s/%s", UsersCollection, ownerUserID, PanicAlertsCollection, alertID)
}

// PanicAlert is an emergency raised by a tourist. It lives under its owner's
// partition for its whole life and is never moved or hard-deleted.
type PanicAlert struct {
	ID               string      `json:"id"`
	OwnerUserID      string      `json:"userId"`
	UserEmail        string      `json:"userEmail"`
	UserName         string      `json:"userName"`
	Location         Coordinate  `json:"location"`
	LocationDegraded bool        `json:"locationDegraded"`
	Status           AlertStatus `json:"status"`
	Resolved         bool        `json:"resolved"`
	IsAnonymous      bool        `json:"isAnonymous"`
	Notes            string      `json:"notes,omitempty"`
	UserAgent        string      `json:"userAgent,omitempty"`
	ClientTimestamp  *time.Time  `json:"clientTimestamp,omitempty"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
	UpdatedBy        string      `json:"updatedBy,omitempty"`
}

// Path returns the alert's storage path.
func (a *PanicAlert) Path() string {
	return AlertPath(a.OwnerUserID, a.ID)
}

// Transition moves the alert to next, stamping the actor and time.
// notes is stored only when non-nil.
func (a *PanicAlert) Transition(next AlertStatus, actorID string, notes *string, now time.Time) error {
	if !next.IsValid() {
		return errors.Wrapf(ErrUnknownAlertStatus, "status %q", next)
	}
	if !a.Status.CanTransitionTo(next) {
		return errors.Wrapf(ErrIllegalTransition, "%s -> %s", a.Status, next)
	}

	a.Status = next
	a.Resolved = next.IsTerminal()
	a.UpdatedAt = now
	a.UpdatedBy = actorID
	if notes != nil {
		a.Notes = *notes
	}

	return nil
}

// UserPresence is the parent record of a user's alert partition. It is
// merge-upserted every time the user sends an alert.
type UserPresence struct {
	UID         string    `json:"uid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	IsAnonymous bool      `json:"isAnonymous"`
	LastActive  time.Time `json:"lastActive"`
	CreatedAt   time.Time `json:"createdAt"`
}
