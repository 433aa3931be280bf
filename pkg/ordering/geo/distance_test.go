package geo

import (
	"testing"

	"ai-ordering-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lon  float64
		want bool
	}{
		{"valid", -6.2, 106.8, true},
		{"lat too high", 90.1, 0, false},
		{"lat too low", -90.1, 0, false},
		{"lon too high", 0, 180.1, false},
		{"lon too low", 0, -180.1, false},
		{"boundaries inclusive", 90, -180, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateCoordinates(tt.lat, tt.lon); got != tt.want {
				t.Errorf("ValidateCoordinates(%v, %v) = %v, want %v", tt.lat, tt.lon, got, tt.want)
			}
		})
	}
}

func TestDistanceKm(t *testing.T) {
	// Jakarta Monas to Bandung Gedung Sate, roughly 118 km.
	monas := entity.GeoPoint{Latitude: -6.1754, Longitude: 106.8272}
	gedungSate := entity.GeoPoint{Latitude: -6.9025, Longitude: 107.6186}

	d := DistanceKm(monas, gedungSate)
	assert.InDelta(t, 118, d, 5)

	assert.InDelta(t, 0, DistanceKm(monas, monas), 0.001)
}

func TestCheckRadius(t *testing.T) {
	business := entity.GeoPoint{Latitude: -6.2, Longitude: 106.8}
	nearby := entity.GeoPoint{Latitude: -6.21, Longitude: 106.81}
	faraway := entity.GeoPoint{Latitude: -6.9, Longitude: 107.6}

	near := CheckRadius(nearby, business, 5)
	assert.True(t, near.WithinRadius)
	assert.Less(t, near.DistanceKm, 5.0)

	far := CheckRadius(faraway, business, 5)
	assert.False(t, far.WithinRadius)
	assert.Greater(t, far.DistanceKm, 5.0)
}
