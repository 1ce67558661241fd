package geo

import (
	"encoding/json"
	"testing"

	"raahi/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureCollection_DrawsClosedCircle(t *testing.T) {
	fence := &entity.Geofence{
		ID:             "red-fort",
		Name:           "Red Fort",
		Center:         redFort,
		RadiusMeters:   300,
		Classification: entity.GeofenceSafe,
		Active:         true,
		Static:         true,
	}

	fc := FeatureCollection([]*entity.Geofence{fence, nil})

	require.Len(t, fc.Features, 1)
	feature := fc.Features[0]
	assert.Equal(t, "red-fort", feature.ID)
	assert.Equal(t, "safe", feature.Properties["type"])

	polygon, ok := feature.Geometry.(orb.Polygon)
	require.True(t, ok)
	ring := polygon[0]
	require.Len(t, ring, circleSegments+1)
	assert.True(t, ring.Closed())

	for _, p := range ring {
		vertex := entity.Coordinate{Latitude: p.Lat(), Longitude: p.Lon()}
		assert.InDelta(t, 300, DistanceMeters(redFort, vertex), 1.0)
	}

	raw, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"FeatureCollection"`)
}
