package usecase

import (
	"context"

	"raahi/internal/domain/entity"

	"github.com/paulmach/orb/geojson"
)

// CreateGeofenceInput represents the input for creating a dynamic geofence
type CreateGeofenceInput struct {
	Name           string
	Center         entity.Coordinate
	RadiusMeters   float64
	Classification entity.GeofenceClassification
	Color          string
	Active         *bool
}

// UpdateGeofenceInput is a partial patch. Identity and creation fields are
// not part of it and can never be changed.
type UpdateGeofenceInput struct {
	Name           *string
	Center         *entity.Coordinate
	RadiusMeters   *float64
	Classification *entity.GeofenceClassification
	Color          *string
	Active         *bool
}

// ListGeofencesInput filters a geofence listing
type ListGeofencesInput struct {
	Limit          int
	Active         *bool
	Classification entity.GeofenceClassification
	CreatedBy      string
}

// GeofenceSource names the registry a check ran against
type GeofenceSource string

const (
	GeofenceSourceDynamic GeofenceSource = "dynamic"
	GeofenceSourceStatic  GeofenceSource = "static"
)

// GeofenceCheckResult is the outcome of matching one point against one registry.
// An empty Matches slice means the check ran and nothing contains the point.
type GeofenceCheckResult struct {
	Source  GeofenceSource         `json:"source"`
	Point   entity.Coordinate      `json:"point"`
	Matches []entity.GeofenceMatch `json:"matches"`
	Count   int                    `json:"count"`
}

// GeofenceUsecase defines the geofence registry and matcher use cases
type GeofenceUsecase interface {
	// Dynamic registry
	CreateGeofence(ctx context.Context, actor entity.Actor, input *CreateGeofenceInput) (*entity.Geofence, error)
	GetGeofence(ctx context.Context, id string) (*entity.Geofence, error)
	UpdateGeofence(ctx context.Context, actor entity.Actor, id string, input *UpdateGeofenceInput) (*entity.Geofence, error)
	DeleteGeofence(ctx context.Context, actor entity.Actor, id string) error
	ListGeofences(ctx context.Context, input *ListGeofencesInput) ([]*entity.Geofence, error)
	CheckLocation(ctx context.Context, point entity.Coordinate) (*GeofenceCheckResult, error)

	// Static registry
	ListStaticGeofences(ctx context.Context) []*entity.Geofence
	CheckStaticLocation(ctx context.Context, point entity.Coordinate) (*GeofenceCheckResult, error)
	StaticGeofencesGeoJSON(ctx context.Context) *geojson.FeatureCollection
}
