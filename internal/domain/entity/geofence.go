package entity

import (
	"time"
)

// Default radius bounds for geofences, in meters.
const (
	MinGeofenceRadiusMeters = 10.0
	MaxGeofenceRadiusMeters = 10000.0

	DefaultGeofenceColor = "#ff0000"
)

// GeofenceClassification tells the client how to treat a zone.
type GeofenceClassification string

const (
	// GeofenceSafe marks a zone considered safe for tourists.
	GeofenceSafe GeofenceClassification = "safe"
	// GeofenceMonitoring marks a zone under observation.
	GeofenceMonitoring GeofenceClassification = "monitoring"
	// GeofenceRestricted marks a zone tourists should avoid.
	GeofenceRestricted GeofenceClassification = "restricted"
)

// IsValid checks if the classification is a known value.
func (c GeofenceClassification) IsValid() bool {
	switch c {
	case GeofenceSafe, GeofenceMonitoring, GeofenceRestricted:
		return true
	default:
		return false
	}
}

// String returns the string representation of the classification.
func (c GeofenceClassification) String() string {
	return string(c)
}

// Geofence is a named circular zone.
// Static fences come from configuration and are never persisted.
type Geofence struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Center         Coordinate             `json:"center"`
	RadiusMeters   float64                `json:"radius"`
	Classification GeofenceClassification `json:"type"`
	Color          string                 `json:"color"`
	Active         bool                   `json:"isActive"`
	CreatedBy      string                 `json:"createdBy,omitempty"`
	Static         bool                   `json:"static"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

// Validate checks the geometry of the fence against the given radius bounds.
func (g *Geofence) Validate(minRadius, maxRadius float64) error {
	if g.Name == "" {
		return ErrGeofenceNameRequired
	}
	if err := g.Center.Validate(); err != nil {
		return err
	}

	return ValidateRadius(g.RadiusMeters, minRadius, maxRadius)
}

// IsOwnedBy reports whether userID created the fence.
func (g *Geofence) IsOwnedBy(userID string) bool {
	return g.CreatedBy != "" && g.CreatedBy == userID
}

// ValidateRadius checks that radius lies in [minRadius, maxRadius].
func ValidateRadius(radius, minRadius, maxRadius float64) error {
	if !isFinite(radius) || radius < minRadius || radius > maxRadius {
		return ErrRadiusOutOfRange
	}

	return nil
}

// GeofenceMatch is a query result pairing a fence with the point's distance to
// its center. It is never persisted.
type GeofenceMatch struct {
	Geofence       *Geofence `json:"geofence"`
	DistanceMeters float64   `json:"distance"`
}
