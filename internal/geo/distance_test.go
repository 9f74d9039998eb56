package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	// New York to Los Angeles, roughly 3936 km
	d := HaversineKm(40.7128, -74.0060, 34.0522, -118.2437)
	assert.InDelta(t, 3936, d, 10)

	// London to Paris, roughly 344 km
	d = HaversineKm(51.5074, -0.1278, 48.8566, 2.3522)
	assert.InDelta(t, 344, d, 5)
}

func TestHaversineKmSamePoint(t *testing.T) {
	assert.Zero(t, HaversineKm(40.7128, -74.0060, 40.7128, -74.0060))
}

func TestHaversineKmAntimeridian(t *testing.T) {
	// Points straddling the date line are ~222 km apart, not half the globe
	d := HaversineKm(0, 179, 0, -179)
	assert.InDelta(t, 222, d, 3)
}

func TestHaversineKmSymmetric(t *testing.T) {
	a := HaversineKm(35.6762, 139.6503, -33.8688, 151.2093)
	b := HaversineKm(-33.8688, 151.2093, 35.6762, 139.6503)
	assert.InDelta(t, a, b, 1e-9)
}
