package firestore

import (
	"context"

	"raahi/internal/domain/entity"
	domainerrors "raahi/internal/domain/errors"
	"raahi/internal/domain/repository"

	fs "cloud.google.com/go/firestore"
)

type geofenceRepository struct {
	client *fs.Client
}

// NewGeofenceRepository is the constructor for the Firestore geofence store.
func NewGeofenceRepository(client *fs.Client) repository.GeofenceRepository {
	return &geofenceRepository{client: client}
}

func (repo *geofenceRepository) doc(id string) *fs.DocumentRef {
	return repo.client.Collection(entity.GeofencesCollection).Doc(id)
}

func (repo *geofenceRepository) Create(ctx context.Context, fence *entity.Geofence) error {
	if _, err := repo.doc(fence.ID).Create(ctx, fromGeofenceDomain(fence)); err != nil {
		return domainerrors.NewStorageError(err, "failed to create geofence")
	}

	return nil
}

func (repo *geofenceRepository) FindByID(ctx context.Context, id string) (*entity.Geofence, error) {
	snap, err := repo.doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrGeofenceNotFound
		}

		return nil, domainerrors.NewStorageError(err, "failed to read geofence")
	}

	fence, err := toGeofenceDomain(snap)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to decode geofence")
	}

	return fence, nil
}

func (repo *geofenceRepository) Update(ctx context.Context, id string, mutate repository.GeofenceMutator) (*entity.Geofence, error) {
	ref := repo.doc(id)

	var (
		updated   *entity.Geofence
		rejection error
	)
	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *fs.Transaction) error {
		fence, err := repo.load(tx, ref)
		if err != nil {
			return err
		}
		if rejection = mutate(fence); rejection != nil {
			return rejection
		}
		updated = fence

		return tx.Set(ref, fromGeofenceDomain(fence))
	})
	if err != nil {
		return nil, repo.mapTxError(err, rejection, "failed to update geofence")
	}

	return updated, nil
}

func (repo *geofenceRepository) Delete(ctx context.Context, id string, check repository.GeofenceMutator) error {
	ref := repo.doc(id)

	var rejection error
	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *fs.Transaction) error {
		fence, err := repo.load(tx, ref)
		if err != nil {
			return err
		}
		if rejection = check(fence); rejection != nil {
			return rejection
		}

		return tx.Delete(ref)
	})
	if err != nil {
		return repo.mapTxError(err, rejection, "failed to delete geofence")
	}

	return nil
}

func (repo *geofenceRepository) List(ctx context.Context, filter repository.GeofenceFilter) ([]*entity.Geofence, error) {
	query := repo.client.Collection(entity.GeofencesCollection).Query
	if filter.Active != nil {
		query = query.Where("isActive", "==", *filter.Active)
	}
	if filter.Classification != "" {
		query = query.Where("type", "==", filter.Classification.String())
	}
	if filter.CreatedBy != "" {
		query = query.Where("createdBy", "==", filter.CreatedBy)
	}
	query = query.OrderBy("createdAt", fs.Desc)
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to list geofences")
	}

	fences := make([]*entity.Geofence, 0, len(snaps))
	for _, snap := range snaps {
		fence, err := toGeofenceDomain(snap)
		if err != nil {
			return nil, domainerrors.NewStorageError(err, "failed to decode geofence")
		}
		fences = append(fences, fence)
	}

	return fences, nil
}

func (repo *geofenceRepository) load(tx *fs.Transaction, ref *fs.DocumentRef) (*entity.Geofence, error) {
	snap, err := tx.Get(ref)
	if err != nil {
		return nil, err
	}

	return toGeofenceDomain(snap)
}

func (repo *geofenceRepository) mapTxError(err, rejection error, details string) error {
	switch {
	case rejection != nil:
		return rejection
	case isNotFound(err):
		return repository.ErrGeofenceNotFound
	default:
		return domainerrors.NewStorageError(err, details)
	}
}
