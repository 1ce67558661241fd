// Package geo holds the geometric core used by geofencing: great-circle
// distance and circular fence matching.
package geo

import (
	"math"
	"slices"

	"raahi/internal/domain/entity"
)

// EarthRadiusMeters is the mean Earth radius used by DistanceMeters.
// Cached distances elsewhere in the system assume this exact value.
const EarthRadiusMeters = 6371000.0

// DistanceMeters returns the haversine great-circle distance between a and b.
func DistanceMeters(a, b entity.Coordinate) float64 {
	phi1 := toRadians(a.Latitude)
	phi2 := toRadians(b.Latitude)
	deltaPhi := phi2 - phi1
	deltaLambda := toRadians(b.Longitude - a.Longitude)

	sinPhi := math.Sin(deltaPhi / 2)
	sinLambda := math.Sin(deltaLambda / 2)
	h := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda

	return 2 * EarthRadiusMeters * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Match returns every active fence containing point, nearest first.
// A fence contains the point when the distance to its center is at most its
// radius. Inactive fences are skipped. The result is never nil.
func Match(point entity.Coordinate, fences []*entity.Geofence) []entity.GeofenceMatch {
	matches := make([]entity.GeofenceMatch, 0)
	for _, fence := range fences {
		if fence == nil || !fence.Active {
			continue
		}

		d := DistanceMeters(point, fence.Center)
		if d <= fence.RadiusMeters {
			matches = append(matches, entity.GeofenceMatch{
				Geofence:       fence,
				DistanceMeters: d,
			})
		}
	}

	slices.SortStableFunc(matches, func(x, y entity.GeofenceMatch) int {
		switch {
		case x.DistanceMeters < y.DistanceMeters:
			return -1
		case x.DistanceMeters > y.DistanceMeters:
			return 1
		default:
			return 0
		}
	})

	return matches
}
