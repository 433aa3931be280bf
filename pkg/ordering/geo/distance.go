package geo

import (
	"math"

	"ai-ordering-be/internal/entity"
)

const earthRadiusKm = 6371.0

// ValidateCoordinates checks the WGS84 ranges.
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// DistanceKm is the haversine great-circle distance between two points.
func DistanceKm(a, b entity.GeoPoint) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// RadiusCheck is the result of a delivery-radius test.
type RadiusCheck struct {
	WithinRadius bool
	DistanceKm   float64
}

// CheckRadius tests whether the customer point lies within maxKm of the
// business point.
func CheckRadius(customer, business entity.GeoPoint, maxKm float64) RadiusCheck {
	d := DistanceKm(customer, business)
	return RadiusCheck{
		WithinRadius: d <= maxKm,
		DistanceKm:   d,
	}
}
