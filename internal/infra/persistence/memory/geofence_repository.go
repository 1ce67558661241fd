package memory

import (
	"context"
	"slices"
	"sync"

	"raahi/internal/domain/entity"
	"raahi/internal/domain/repository"
)

type geofenceRepository struct {
	mu     sync.RWMutex
	fences map[string]*entity.Geofence
}

// NewGeofenceRepository creates an empty in-memory dynamic geofence store.
func NewGeofenceRepository() repository.GeofenceRepository {
	return &geofenceRepository{fences: make(map[string]*entity.Geofence)}
}

func (repo *geofenceRepository) Create(_ context.Context, fence *entity.Geofence) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored := *fence
	repo.fences[fence.ID] = &stored

	return nil
}

func (repo *geofenceRepository) FindByID(_ context.Context, id string) (*entity.Geofence, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	fence, ok := repo.fences[id]
	if !ok {
		return nil, repository.ErrGeofenceNotFound
	}
	c := *fence

	return &c, nil
}

func (repo *geofenceRepository) Update(_ context.Context, id string, mutate repository.GeofenceMutator) (*entity.Geofence, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	current, ok := repo.fences[id]
	if !ok {
		return nil, repository.ErrGeofenceNotFound
	}

	next := *current
	if err := mutate(&next); err != nil {
		return nil, err
	}
	repo.fences[id] = &next
	out := next

	return &out, nil
}

func (repo *geofenceRepository) Delete(_ context.Context, id string, check repository.GeofenceMutator) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	current, ok := repo.fences[id]
	if !ok {
		return repository.ErrGeofenceNotFound
	}
	c := *current
	if err := check(&c); err != nil {
		return err
	}
	delete(repo.fences, id)

	return nil
}

func (repo *geofenceRepository) List(_ context.Context, filter repository.GeofenceFilter) ([]*entity.Geofence, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	fences := make([]*entity.Geofence, 0, len(repo.fences))
	for _, fence := range repo.fences {
		if !filter.Matches(fence) {
			continue
		}
		c := *fence
		fences = append(fences, &c)
	}

	slices.SortFunc(fences, func(a, b *entity.Geofence) int {
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
	if filter.Limit > 0 && len(fences) > filter.Limit {
		fences = fences[:filter.Limit]
	}

	return fences, nil
}
