package geo

import (
	"math"
	"testing"
)

func TestDistance_SamePointIsZero(t *testing.T) {
	points := [][2]float64{
		{60.1699, 24.9384},
		{0, 0},
		{-33.8688, 151.2093},
		{89.9, -179.9},
	}

	for _, p := range points {
		if d := Distance(p[0], p[1], p[0], p[1]); d != 0 {
			t.Errorf("Distance(%v, %v, same) = %f, want 0", p[0], p[1], d)
		}
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a := [2]float64{60.1699, 24.9384} // Helsinki
	b := [2]float64{60.9967, 24.4642} // Hämeenlinna

	ab := Distance(a[0], a[1], b[0], b[1])
	ba := Distance(b[0], b[1], a[0], a[1])

	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("Distance not symmetric: a->b=%f b->a=%f", ab, ba)
	}
}

func TestDistance_KnownValue(t *testing.T) {
	// Helsinki central railway station to Pasila is roughly 3.2 km.
	d := Distance(60.1699, 24.9384, 60.1988, 24.9339)
	if d < 3.0 || d > 3.5 {
		t.Errorf("Helsinki-Pasila distance = %f km, want ~3.2", d)
	}

	// Helsinki to Hämeenlinna is roughly 95 km.
	d = Distance(60.1699, 24.9384, 60.9967, 24.4642)
	if d < 85 || d > 105 {
		t.Errorf("Helsinki-Hämeenlinna distance = %f km, want ~95", d)
	}
}

func TestDistance_NonNegative(t *testing.T) {
	if d := Distance(60.5, 24.0, 60.501, 24.001); d <= 0 {
		t.Errorf("expected positive distance, got %f", d)
	}
}
