package geo

import (
	"math"
	"testing"
)

func TestDistanceKm(t *testing.T) {
	gastown := Coordinate{Latitude: 49.284131, Longitude: -123.108867}
	granville := Coordinate{Latitude: 49.271446, Longitude: -123.134232}

	if got := DistanceKm(gastown, gastown); got != 0 {
		t.Errorf("DistanceKm to self = %v, want 0", got)
	}

	forward := DistanceKm(gastown, granville)
	backward := DistanceKm(granville, gastown)
	if math.Abs(forward-backward) > 1e-9 {
		t.Errorf("DistanceKm not symmetric: %v vs %v", forward, backward)
	}

	// The two points are roughly 2.3 km apart.
	if forward < 2.0 || forward > 2.6 {
		t.Errorf("DistanceKm = %v, want around 2.3", forward)
	}

	// One degree of latitude at the equator is about 111.19 km.
	deg := DistanceKm(Coordinate{}, Coordinate{Latitude: 1})
	if math.Abs(deg-111.19) > 0.1 {
		t.Errorf("DistanceKm over one degree latitude = %v, want ~111.19", deg)
	}
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		km   float64
		want string
	}{
		{0, "0 m"},
		{0.5, "500 m"},
		{0.999, "999 m"},
		{1, "1.0 km"},
		{3.24, "3.2 km"},
		{12.35, "12.3 km"},
	}

	for _, tt := range tests {
		if got := FormatDistance(tt.km); got != tt.want {
			t.Errorf("FormatDistance(%v) = %q, want %q", tt.km, got, tt.want)
		}
	}
}
