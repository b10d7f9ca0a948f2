package utils_test

import (
	"math"
	"testing"

	"github.com/childfind-ng/childfind_backend/utils"
)

func TestDistanceKmSamePointIsZero(t *testing.T) {
	if d := utils.DistanceKm(6.5244, 3.3792, 6.5244, 3.3792); d != 0 {
		t.Fatalf("expected 0 for identical points, got %v", d)
	}
}

func TestDistanceKmSymmetric(t *testing.T) {
	a := utils.DistanceKm(51.5074, -0.1278, 48.8566, 2.3522)
	b := utils.DistanceKm(48.8566, 2.3522, 51.5074, -0.1278)
	if math.Abs(a-b) > 1e-9 {
		t.Fatalf("distance not symmetric: %v vs %v", a, b)
	}
}

func TestDistanceKmLondonParis(t *testing.T) {
	// Great-circle distance London to Paris is roughly 344 km.
	d := utils.DistanceKm(51.5074, -0.1278, 48.8566, 2.3522)
	if d < 330 || d > 360 {
		t.Fatalf("expected ~344 km, got %v", d)
	}
}

func TestDistanceKmNonNegative(t *testing.T) {
	points := [][4]float64{
		{-33.8688, 151.2093, 40.7128, -74.0060},
		{90, 0, -90, 0},
		{0, 179.9, 0, -179.9},
	}
	for _, p := range points {
		if d := utils.DistanceKm(p[0], p[1], p[2], p[3]); d < 0 {
			t.Fatalf("negative distance %v for %v", d, p)
		}
	}
}
