// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"raahi/internal/domain/entity"
	domainerrors "raahi/internal/domain/errors"
	"raahi/internal/domain/repository"
	"raahi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// UpsertPresence inserts the presence row or refreshes its mutable columns.
// created_at is never part of the update set.
func (repo *alertRepository) UpsertPresence(ctx context.Context, presence *entity.UserPresence) error {
	presenceM := &model.UserPresenceModel{
		UID:         presence.UID,
		Email:       presence.Email,
		DisplayName: presence.DisplayName,
		IsAnonymous: presence.IsAnonymous,
		LastActive:  presence.LastActive,
		CreatedAt:   presence.CreatedAt,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "uid"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "display_name", "is_anonymous", "last_active"}),
		}).
		Create(presenceM).Error
	if err != nil {
		return domainerrors.NewStorageError(err, "failed to upsert user presence")
	}

	return nil
}

// CreateAlert persists a new alert. GORM stamps created_at on insert.
func (repo *alertRepository) CreateAlert(ctx context.Context, alert *entity.PanicAlert) error {
	alertM := fromAlertDomain(alert)
	alertM.CreatedAt = time.Time{}
	alertM.UpdatedAt = time.Time{}

	if err := repo.db.WithContext(ctx).Create(alertM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewStorageError(err, "duplicate panic alert id")
		}

		return domainerrors.NewStorageError(err, "failed to create panic alert")
	}

	alert.CreatedAt = alertM.CreatedAt
	alert.UpdatedAt = alertM.UpdatedAt

	return nil
}

// FindAlert retrieves an alert by owner and id.
func (repo *alertRepository) FindAlert(ctx context.Context, ownerUserID, alertID string) (*entity.PanicAlert, error) {
	var alertM model.PanicAlertModel

	if err := repo.db.WithContext(ctx).
		Where("owner_user_id = ? AND id = ?", ownerUserID, alertID).
		First(&alertM).Error; err != nil {
		return nil, mapAlertLookupError(err)
	}

	return toAlertDomain(&alertM), nil
}

// FindAlertByID retrieves an alert by id regardless of owner.
func (repo *alertRepository) FindAlertByID(ctx context.Context, alertID string) (*entity.PanicAlert, error) {
	var alertM model.PanicAlertModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", alertID).
		First(&alertM).Error; err != nil {
		return nil, mapAlertLookupError(err)
	}

	return toAlertDomain(&alertM), nil
}

// UpdateAlert locks the row, applies mutate and saves it in one transaction.
func (repo *alertRepository) UpdateAlert(ctx context.Context, ownerUserID, alertID string, mutate repository.AlertMutator) (*entity.PanicAlert, error) {
	var (
		updated   *entity.PanicAlert
		rejection error
	)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var alertM model.PanicAlertModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("owner_user_id = ? AND id = ?", ownerUserID, alertID).
			First(&alertM).Error; err != nil {
			return err
		}

		alert := toAlertDomain(&alertM)
		if rejection = mutate(alert); rejection != nil {
			return rejection
		}

		if err := tx.Save(fromAlertDomain(alert)).Error; err != nil {
			return err
		}
		updated = alert

		return nil
	})
	if err != nil {
		if rejection != nil {
			return nil, rejection
		}

		return nil, mapAlertLookupError(err)
	}

	return updated, nil
}

// ListAllAlerts reads across every owner, newest first.
func (repo *alertRepository) ListAllAlerts(ctx context.Context, filter repository.AlertFilter) ([]*entity.PanicAlert, error) {
	query := repo.db.WithContext(ctx).Model(&model.PanicAlertModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}

	return repo.findAlerts(query, filter.Limit)
}

// ListUserAlerts reads one owner's alerts, newest first.
func (repo *alertRepository) ListUserAlerts(ctx context.Context, ownerUserID string, limit int) ([]*entity.PanicAlert, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.PanicAlertModel{}).
		Where("owner_user_id = ?", ownerUserID)

	return repo.findAlerts(query, limit)
}

func (repo *alertRepository) findAlerts(query *gorm.DB, limit int) ([]*entity.PanicAlert, error) {
	query = query.Order("created_at DESC").Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var alertModels []*model.PanicAlertModel
	if err := query.Find(&alertModels).Error; err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to list panic alerts")
	}

	alerts := make([]*entity.PanicAlert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alerts = append(alerts, toAlertDomain(alertM))
	}

	return alerts, nil
}

func mapAlertLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrAlertNotFound
	}

	return domainerrors.NewStorageError(err, "failed to read panic alert")
}

func fromAlertDomain(a *entity.PanicAlert) *model.PanicAlertModel {
	return &model.PanicAlertModel{
		ID:               a.ID,
		OwnerUserID:      a.OwnerUserID,
		UserEmail:        a.UserEmail,
		UserName:         a.UserName,
		Latitude:         a.Location.Latitude,
		Longitude:        a.Location.Longitude,
		LocationDegraded: a.LocationDegraded,
		Status:           a.Status.String(),
		Resolved:         a.Resolved,
		IsAnonymous:      a.IsAnonymous,
		Notes:            a.Notes,
		UserAgent:        a.UserAgent,
		ClientTimestamp:  a.ClientTimestamp,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
		UpdatedBy:        a.UpdatedBy,
	}
}

func toAlertDomain(m *model.PanicAlertModel) *entity.PanicAlert {
	return &entity.PanicAlert{
		ID:               m.ID,
		OwnerUserID:      m.OwnerUserID,
		UserEmail:        m.UserEmail,
		UserName:         m.UserName,
		Location:         entity.Coordinate{Latitude: m.Latitude, Longitude: m.Longitude},
		LocationDegraded: m.LocationDegraded,
		Status:           entity.AlertStatus(m.Status),
		Resolved:         m.Resolved,
		IsAnonymous:      m.IsAnonymous,
		Notes:            m.Notes,
		UserAgent:        m.UserAgent,
		ClientTimestamp:  m.ClientTimestamp,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
		UpdatedBy:        m.UpdatedBy,
	}
}
