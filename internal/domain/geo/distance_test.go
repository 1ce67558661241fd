package geo

import (
	"math"
	"testing"

	"raahi/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var redFort = entity.Coordinate{Latitude: 28.6562, Longitude: 77.2410}

func TestDistanceMeters_ZeroForSamePoint(t *testing.T) {
	points := []entity.Coordinate{
		redFort,
		{Latitude: 0, Longitude: 0},
		{Latitude: -90, Longitude: 180},
		{Latitude: 51.5007, Longitude: -0.1246},
	}

	for _, p := range points {
		assert.Zero(t, DistanceMeters(p, p))
	}
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	pairs := [][2]entity.Coordinate{
		{redFort, {Latitude: 28.6129, Longitude: 77.2295}},
		{{Latitude: -33.8568, Longitude: 151.2153}, {Latitude: 40.6892, Longitude: -74.0445}},
		{{Latitude: 89.9, Longitude: 10}, {Latitude: -89.9, Longitude: -170}},
		{{Latitude: 0, Longitude: 179.9}, {Latitude: 0, Longitude: -179.9}},
	}

	for _, pair := range pairs {
		ab := DistanceMeters(pair[0], pair[1])
		ba := DistanceMeters(pair[1], pair[0])
		assert.InDelta(t, ab, ba, 1e-6)
	}
}

func TestDistanceMeters_KnownDistances(t *testing.T) {
	// One degree of latitude along a meridian is R * pi / 180.
	oneDegree := DistanceMeters(
		entity.Coordinate{Latitude: 0, Longitude: 0},
		entity.Coordinate{Latitude: 1, Longitude: 0},
	)
	assert.InDelta(t, EarthRadiusMeters*math.Pi/180, oneDegree, 1e-6)

	// Red Fort to India Gate is roughly 5 km.
	indiaGate := entity.Coordinate{Latitude: 28.6129, Longitude: 77.2295}
	d := DistanceMeters(redFort, indiaGate)
	assert.InDelta(t, 4940, d, 100)

	// Crossing the antimeridian takes the short way round.
	east := entity.Coordinate{Latitude: 0, Longitude: 179.9}
	west := entity.Coordinate{Latitude: 0, Longitude: -179.9}
	assert.Less(t, DistanceMeters(east, west), 25000.0)
}

func TestMatch_ContainsIffWithinRadius(t *testing.T) {
	fence := &entity.Geofence{ID: "f1", Center: redFort, RadiusMeters: 300, Active: true}

	// Walk north from the center in 50 m steps across the boundary.
	metersPerDegree := EarthRadiusMeters * math.Pi / 180
	for step := 0; step <= 12; step++ {
		p := entity.Coordinate{
			Latitude:  redFort.Latitude + float64(step*50)/metersPerDegree,
			Longitude: redFort.Longitude,
		}
		d := DistanceMeters(p, fence.Center)
		matches := Match(p, []*entity.Geofence{fence})

		if d <= fence.RadiusMeters {
			require.Len(t, matches, 1, "step %d at %.2fm should match", step, d)
			assert.InDelta(t, d, matches[0].DistanceMeters, 1e-9)
		} else {
			assert.Empty(t, matches, "step %d at %.2fm should not match", step, d)
		}
	}
}

func TestMatch_RedFortCenter(t *testing.T) {
	fence := &entity.Geofence{ID: "red-fort", Name: "Red Fort", Center: redFort, RadiusMeters: 300, Active: true}

	matches := Match(redFort, []*entity.Geofence{fence})

	require.Len(t, matches, 1)
	assert.Equal(t, "red-fort", matches[0].Geofence.ID)
	assert.InDelta(t, 0, matches[0].DistanceMeters, 1e-6)
}

func TestMatch_PointOneKilometerAway(t *testing.T) {
	fence := &entity.Geofence{ID: "red-fort", Center: redFort, RadiusMeters: 300, Active: true}
	metersPerDegree := EarthRadiusMeters * math.Pi / 180
	away := entity.Coordinate{Latitude: redFort.Latitude + 1000/metersPerDegree, Longitude: redFort.Longitude}

	require.InDelta(t, 1000, DistanceMeters(away, redFort), 0.5)
	assert.Empty(t, Match(away, []*entity.Geofence{fence}))
}

func TestMatch_SortsNearestFirstAndSkipsInactive(t *testing.T) {
	metersPerDegree := EarthRadiusMeters * math.Pi / 180
	near := &entity.Geofence{
		ID:           "near",
		Center:       entity.Coordinate{Latitude: redFort.Latitude + 20/metersPerDegree, Longitude: redFort.Longitude},
		RadiusMeters: 500,
		Active:       true,
	}
	far := &entity.Geofence{
		ID:           "far",
		Center:       entity.Coordinate{Latitude: redFort.Latitude + 400/metersPerDegree, Longitude: redFort.Longitude},
		RadiusMeters: 1000,
		Active:       true,
	}
	inactive := &entity.Geofence{ID: "inactive", Center: redFort, RadiusMeters: 1000, Active: false}

	matches := Match(redFort, []*entity.Geofence{far, inactive, nil, near})

	require.Len(t, matches, 2)
	assert.Equal(t, "near", matches[0].Geofence.ID)
	assert.Equal(t, "far", matches[1].Geofence.ID)
	assert.Less(t, matches[0].DistanceMeters, matches[1].DistanceMeters)
}

func TestMatch_EmptyInputReturnsEmptySlice(t *testing.T) {
	matches := Match(redFort, nil)

	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}
