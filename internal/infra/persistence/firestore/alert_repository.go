package firestore

import (
	"context"
	"time"

	"raahi/internal/domain/entity"
	domainerrors "raahi/internal/domain/errors"
	"raahi/internal/domain/repository"

	fs "cloud.google.com/go/firestore"
)

type alertRepository struct {
	client *fs.Client
}

// NewAlertRepository is the constructor for the Firestore alert store.
func NewAlertRepository(client *fs.Client) repository.AlertRepository {
	return &alertRepository{client: client}
}

func (repo *alertRepository) userDoc(uid string) *fs.DocumentRef {
	return repo.client.Collection(entity.UsersCollection).Doc(uid)
}

func (repo *alertRepository) alertDoc(ownerUserID, alertID string) *fs.DocumentRef {
	return repo.userDoc(ownerUserID).Collection(entity.PanicAlertsCollection).Doc(alertID)
}

// UpsertPresence writes the full record on first sight and merges the mutable
// fields afterwards, so createdAt keeps its original value.
func (repo *alertRepository) UpsertPresence(ctx context.Context, presence *entity.UserPresence) error {
	ref := repo.userDoc(presence.UID)

	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *fs.Transaction) error {
		_, err := tx.Get(ref)
		if isNotFound(err) {
			return tx.Set(ref, &presenceDoc{
				UID:         presence.UID,
				Email:       presence.Email,
				DisplayName: presence.DisplayName,
				IsAnonymous: presence.IsAnonymous,
			})
		}
		if err != nil {
			return err
		}

		return tx.Update(ref, []fs.Update{
			{Path: "email", Value: presence.Email},
			{Path: "displayName", Value: presence.DisplayName},
			{Path: "isAnonymous", Value: presence.IsAnonymous},
			{Path: "lastActive", Value: fs.ServerTimestamp},
		})
	})
	if err != nil {
		return domainerrors.NewStorageError(err, "failed to upsert user presence")
	}

	return nil
}

// CreateAlert inserts the alert with a server-assigned creation time and
// copies that time back onto the entity.
func (repo *alertRepository) CreateAlert(ctx context.Context, alert *entity.PanicAlert) error {
	doc := fromAlertDomain(alert)
	// zero times are filled with the commit timestamp
	doc.CreatedAt = time.Time{}
	doc.UpdatedAt = time.Time{}

	result, err := repo.alertDoc(alert.OwnerUserID, alert.ID).Create(ctx, doc)
	if err != nil {
		return domainerrors.NewStorageError(err, "failed to create panic alert")
	}

	alert.CreatedAt = result.UpdateTime
	alert.UpdatedAt = result.UpdateTime

	return nil
}

func (repo *alertRepository) FindAlert(ctx context.Context, ownerUserID, alertID string) (*entity.PanicAlert, error) {
	snap, err := repo.alertDoc(ownerUserID, alertID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, domainerrors.NewStorageError(err, "failed to read panic alert")
	}

	alert, err := toAlertDomain(snap)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to decode panic alert")
	}

	return alert, nil
}

func (repo *alertRepository) FindAlertByID(ctx context.Context, alertID string) (*entity.PanicAlert, error) {
	snaps, err := repo.client.CollectionGroup(entity.PanicAlertsCollection).
		Where("id", "==", alertID).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to locate panic alert")
	}
	if len(snaps) == 0 {
		return nil, repository.ErrAlertNotFound
	}

	alert, err := toAlertDomain(snaps[0])
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to decode panic alert")
	}

	return alert, nil
}

func (repo *alertRepository) UpdateAlert(ctx context.Context, ownerUserID, alertID string, mutate repository.AlertMutator) (*entity.PanicAlert, error) {
	ref := repo.alertDoc(ownerUserID, alertID)

	var (
		updated   *entity.PanicAlert
		rejection error
	)
	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *fs.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return err
		}

		alert, err := toAlertDomain(snap)
		if err != nil {
			return err
		}
		if rejection = mutate(alert); rejection != nil {
			return rejection
		}
		updated = alert

		return tx.Set(ref, fromAlertDomain(alert))
	})
	switch {
	case err == nil:
		return updated, nil
	case rejection != nil:
		return nil, rejection
	case isNotFound(err):
		return nil, repository.ErrAlertNotFound
	default:
		return nil, domainerrors.NewStorageError(err, "failed to update panic alert")
	}
}

// ListAllAlerts runs a collection-group query over every panic_alerts subcollection.
func (repo *alertRepository) ListAllAlerts(ctx context.Context, filter repository.AlertFilter) ([]*entity.PanicAlert, error) {
	query := repo.client.CollectionGroup(entity.PanicAlertsCollection).Query
	if filter.Status != "" {
		query = query.Where("status", "==", filter.Status.String())
	}

	return repo.runAlertQuery(ctx, query, filter.Limit)
}

func (repo *alertRepository) ListUserAlerts(ctx context.Context, ownerUserID string, limit int) ([]*entity.PanicAlert, error) {
	query := repo.userDoc(ownerUserID).Collection(entity.PanicAlertsCollection).Query

	return repo.runAlertQuery(ctx, query, limit)
}

func (repo *alertRepository) runAlertQuery(ctx context.Context, query fs.Query, limit int) ([]*entity.PanicAlert, error) {
	query = query.OrderBy("createdAt", fs.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to list panic alerts")
	}

	alerts := make([]*entity.PanicAlert, 0, len(snaps))
	for _, snap := range snaps {
		alert, err := toAlertDomain(snap)
		if err != nil {
			return nil, domainerrors.NewStorageError(err, "failed to decode panic alert")
		}
		alerts = append(alerts, alert)
	}

	return alerts, nil
}
