// Package geofence holds the configured, read-only geofence registry.
package geofence

import (
	"time"

	"raahi/config"
	"raahi/internal/domain/entity"
	"raahi/internal/domain/repository"
	"raahi/internal/errors"
)

// staticRegistry is loaded once at startup and never mutated afterwards.
type staticRegistry struct {
	fences []*entity.Geofence
	byID   map[string]*entity.Geofence
}

// NewStaticRegistry validates the configured zones and freezes them.
// An invalid entry fails startup.
func NewStaticRegistry(cfg *config.Config) (repository.StaticGeofenceRegistry, error) {
	gc := cfg.Geofences
	loadedAt := time.Now().UTC()

	registry := &staticRegistry{
		fences: make([]*entity.Geofence, 0, len(gc.Static)),
		byID:   make(map[string]*entity.Geofence, len(gc.Static)),
	}

	for idx, sc := range gc.Static {
		fence, err := fromConfig(sc, loadedAt)
		if err != nil {
			return nil, errors.Wrapf(err, "geofences.static[%d]", idx)
		}
		if err := fence.Validate(gc.MinRadius, gc.MaxRadius); err != nil {
			return nil, errors.Wrapf(err, "geofences.static[%d] %q", idx, sc.ID)
		}
		if _, dup := registry.byID[fence.ID]; dup {
			return nil, errors.Errorf("geofences.static[%d]: duplicate id %q", idx, fence.ID)
		}

		registry.fences = append(registry.fences, fence)
		registry.byID[fence.ID] = fence
	}

	return registry, nil
}

func fromConfig(sc config.StaticGeofenceConfig, loadedAt time.Time) (*entity.Geofence, error) {
	if sc.ID == "" {
		return nil, errors.New("id is required")
	}

	classification := entity.GeofenceMonitoring
	if sc.Type != "" {
		classification = entity.GeofenceClassification(sc.Type)
		if !classification.IsValid() {
			return nil, errors.Errorf("unknown type %q", sc.Type)
		}
	}

	color := sc.Color
	if color == "" {
		color = entity.DefaultGeofenceColor
	}

	active := true
	if sc.IsActive != nil {
		active = *sc.IsActive
	}

	return &entity.Geofence{
		ID:             sc.ID,
		Name:           sc.Name,
		Center:         entity.Coordinate{Latitude: sc.Latitude, Longitude: sc.Longitude},
		RadiusMeters:   sc.Radius,
		Classification: classification,
		Color:          color,
		Active:         active,
		Static:         true,
		CreatedAt:      loadedAt,
		UpdatedAt:      loadedAt,
	}, nil
}

// ListActive returns copies so callers cannot mutate the registry.
func (r *staticRegistry) ListActive() []*entity.Geofence {
	active := make([]*entity.Geofence, 0, len(r.fences))
	for _, fence := range r.fences {
		if fence.Active {
			cp := *fence
			active = append(active, &cp)
		}
	}

	return active
}

// FindByID returns a copy of the configured fence.
func (r *staticRegistry) FindByID(id string) (*entity.Geofence, bool) {
	fence, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	cp := *fence

	return &cp, true
}
