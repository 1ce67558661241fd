// Package entity contains the core business objects of the project.
package entity

import (
	"math"

	"raahi/internal/errors"

	"github.com/paulmach/orb"
)

// Coordinate validation errors.
var (
	ErrCoordinateNotFinite  = errors.New("latitude and longitude must be finite numbers")
	ErrLatitudeOutOfRange   = errors.New("latitude must be between -90 and 90")
	ErrLongitudeOutOfRange  = errors.New("longitude must be between -180 and 180")
	ErrRadiusOutOfRange     = errors.New("radius is outside the allowed range")
	ErrGeofenceNameRequired = errors.New("geofence name is required")
)

// Coordinate is an immutable WGS84 position in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewCoordinate builds a coordinate and validates it.
func NewCoordinate(latitude, longitude float64) (Coordinate, error) {
	c := Coordinate{Latitude: latitude, Longitude: longitude}
	if err := c.Validate(); err != nil {
		return Coordinate{}, err
	}

	return c, nil
}

// Validate checks that both components are finite and inside their ranges.
// The bounds are inclusive.
func (c Coordinate) Validate() error {
	if !isFinite(c.Latitude) || !isFinite(c.Longitude) {
		return ErrCoordinateNotFinite
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return ErrLatitudeOutOfRange
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return ErrLongitudeOutOfRange
	}

	return nil
}

// IsZero reports whether the coordinate is the (0,0) null island.
func (c Coordinate) IsZero() bool {
	return c.Latitude == 0 && c.Longitude == 0
}

// Point converts the coordinate to an orb point (longitude first).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
