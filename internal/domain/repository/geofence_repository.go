package repository

import (
	"context"

	"raahi/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrGeofenceNotFound is returned when a dynamic geofence id is unknown.
var ErrGeofenceNotFound = errors.New("geofence not found")

// GeofenceFilter narrows a geofence listing.
type GeofenceFilter struct {
	Limit          int
	Active         *bool
	Classification entity.GeofenceClassification
	CreatedBy      string
}

// Matches reports whether g passes the filter, ignoring Limit.
func (f GeofenceFilter) Matches(g *entity.Geofence) bool {
	if f.Active != nil && g.Active != *f.Active {
		return false
	}
	if f.Classification != "" && g.Classification != f.Classification {
		return false
	}
	if f.CreatedBy != "" && g.CreatedBy != f.CreatedBy {
		return false
	}

	return true
}

// GeofenceMutator inspects or changes a fence loaded inside an atomic write.
// Returning an error aborts the write.
type GeofenceMutator func(fence *entity.Geofence) error

// GeofenceRepository persists dynamic geofences in a flat geofences/{id} collection.
type GeofenceRepository interface {
	// Create persists a new fence.
	Create(ctx context.Context, fence *entity.Geofence) error

	// FindByID retrieves one fence.
	FindByID(ctx context.Context, id string) (*entity.Geofence, error)

	// Update loads the fence, runs mutate and writes the result in one atomic
	// operation, so the ownership check inside mutate cannot race another write.
	Update(ctx context.Context, id string, mutate GeofenceMutator) (*entity.Geofence, error)

	// Delete loads the fence, runs check and removes it in one atomic operation.
	Delete(ctx context.Context, id string, check GeofenceMutator) error

	// List returns fences matching the filter, newest first.
	List(ctx context.Context, filter GeofenceFilter) ([]*entity.Geofence, error)
}

// StaticGeofenceRegistry is the read-only set of fences loaded from
// configuration at startup.
type StaticGeofenceRegistry interface {
	// ListActive returns copies of every active configured fence.
	ListActive() []*entity.Geofence

	// FindByID returns a copy of the configured fence with this id.
	FindByID(id string) (*entity.Geofence, bool)
}
