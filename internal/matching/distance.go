package matching

import (
	"math"

	"github.com/pawfectmatch/pawfectmatch-backend/internal/domain"
)

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two locations using
// the haversine formula. Coordinates arrive pre-rounded for privacy, so the
// result is a deliberate approximation.
func DistanceKm(a, b domain.Location) float64 {
	dLat := (b.Lat - a.Lat) * (math.Pi / 180.0)
	dLng := (b.Lng - a.Lng) * (math.Pi / 180.0)
	latA := a.Lat * (math.Pi / 180.0)
	latB := b.Lat * (math.Pi / 180.0)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(latA)*math.Cos(latB)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}
