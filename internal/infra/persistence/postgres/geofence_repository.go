package postgres

import (
	"context"

	"raahi/internal/domain/entity"
	domainerrors "raahi/internal/domain/errors"
	"raahi/internal/domain/repository"
	"raahi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// geofenceRepository implements the repository.GeofenceRepository interface.
type geofenceRepository struct {
	db *gorm.DB
}

// NewGeofenceRepository is the constructor for geofenceRepository.
func NewGeofenceRepository(db *gorm.DB) repository.GeofenceRepository {
	return &geofenceRepository{
		db: db,
	}
}

// Create persists a new dynamic geofence.
func (repo *geofenceRepository) Create(ctx context.Context, fence *entity.Geofence) error {
	if err := repo.db.WithContext(ctx).Create(fromGeofenceDomain(fence)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("geofence id already exists")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("geofence radius out of range")
		}

		return domainerrors.NewStorageError(err, "failed to create geofence")
	}

	return nil
}

// FindByID retrieves a geofence by its id.
func (repo *geofenceRepository) FindByID(ctx context.Context, id string) (*entity.Geofence, error) {
	var fenceM model.GeofenceModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&fenceM).Error; err != nil {
		return nil, mapGeofenceLookupError(err)
	}

	return toGeofenceDomain(&fenceM), nil
}

// Update locks the row, applies mutate and saves it in one transaction.
func (repo *geofenceRepository) Update(ctx context.Context, id string, mutate repository.GeofenceMutator) (*entity.Geofence, error) {
	var (
		updated   *entity.Geofence
		rejection error
	)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fence, err := lockGeofence(tx, id)
		if err != nil {
			return err
		}
		if rejection = mutate(fence); rejection != nil {
			return rejection
		}
		if err := tx.Save(fromGeofenceDomain(fence)).Error; err != nil {
			return err
		}
		updated = fence

		return nil
	})
	if err != nil {
		if rejection != nil {
			return nil, rejection
		}

		return nil, mapGeofenceLookupError(err)
	}

	return updated, nil
}

// Delete locks the row, runs check and removes it in one transaction.
func (repo *geofenceRepository) Delete(ctx context.Context, id string, check repository.GeofenceMutator) error {
	var rejection error

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fence, err := lockGeofence(tx, id)
		if err != nil {
			return err
		}
		if rejection = check(fence); rejection != nil {
			return rejection
		}

		return tx.Where("id = ?", id).Delete(&model.GeofenceModel{}).Error
	})
	if err != nil {
		if rejection != nil {
			return rejection
		}

		return mapGeofenceLookupError(err)
	}

	return nil
}

// List retrieves geofences matching the filter, newest first.
func (repo *geofenceRepository) List(ctx context.Context, filter repository.GeofenceFilter) ([]*entity.Geofence, error) {
	query := repo.db.WithContext(ctx).Model(&model.GeofenceModel{})
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}
	if filter.Classification != "" {
		query = query.Where("type = ?", filter.Classification.String())
	}
	if filter.CreatedBy != "" {
		query = query.Where("created_by = ?", filter.CreatedBy)
	}
	query = query.Order("created_at DESC").Order("id ASC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var fenceModels []*model.GeofenceModel
	if err := query.Find(&fenceModels).Error; err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to list geofences")
	}

	fences := make([]*entity.Geofence, 0, len(fenceModels))
	for _, fenceM := range fenceModels {
		fences = append(fences, toGeofenceDomain(fenceM))
	}

	return fences, nil
}

func lockGeofence(tx *gorm.DB, id string) (*entity.Geofence, error) {
	var fenceM model.GeofenceModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&fenceM).Error; err != nil {
		return nil, err
	}

	return toGeofenceDomain(&fenceM), nil
}

func mapGeofenceLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrGeofenceNotFound
	}

	return domainerrors.NewStorageError(err, "geofence storage operation failed")
}

func fromGeofenceDomain(g *entity.Geofence) *model.GeofenceModel {
	return &model.GeofenceModel{
		ID:        g.ID,
		Name:      g.Name,
		Latitude:  g.Center.Latitude,
		Longitude: g.Center.Longitude,
		Radius:    g.RadiusMeters,
		Type:      g.Classification.String(),
		Color:     g.Color,
		IsActive:  g.Active,
		CreatedBy: g.CreatedBy,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

func toGeofenceDomain(m *model.GeofenceModel) *entity.Geofence {
	return &entity.Geofence{
		ID:             m.ID,
		Name:           m.Name,
		Center:         entity.Coordinate{Latitude: m.Latitude, Longitude: m.Longitude},
		RadiusMeters:   m.Radius,
		Classification: entity.GeofenceClassification(m.Type),
		Color:          m.Color,
		Active:         m.IsActive,
		CreatedBy:      m.CreatedBy,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
