package geo

import (
	"raahi/internal/domain/entity"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
)

// circleSegments is the vertex count of the polygon drawn for each circle.
const circleSegments = 64

// FeatureCollection renders fences as GeoJSON polygons approximating each
// circle. The center and radius stay in the properties so clients that draw
// true circles do not need the ring.
func FeatureCollection(fences []*entity.Geofence) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, fence := range fences {
		if fence == nil {
			continue
		}

		feature := geojson.NewFeature(circlePolygon(fence.Center.Point(), fence.RadiusMeters))
		feature.ID = fence.ID
		feature.Properties = geojson.Properties{
			"id":       fence.ID,
			"name":     fence.Name,
			"type":     fence.Classification.String(),
			"color":    fence.Color,
			"radius":   fence.RadiusMeters,
			"isActive": fence.Active,
			"static":   fence.Static,
			"center":   []float64{fence.Center.Longitude, fence.Center.Latitude},
		}
		fc.Append(feature)
	}

	return fc
}

// circlePolygon walks the circle counterclockwise, as GeoJSON expects for an
// exterior ring, and closes it.
func circlePolygon(center orb.Point, radiusMeters float64) orb.Polygon {
	ring := make(orb.Ring, 0, circleSegments+1)
	for i := range circleSegments {
		bearing := 360.0 - 360.0*float64(i)/circleSegments
		ring = append(ring, orbgeo.PointAtBearingAndDistance(center, bearing, radiusMeters))
	}
	ring = append(ring, ring[0])

	return orb.Polygon{ring}
}
