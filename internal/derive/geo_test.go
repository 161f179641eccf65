package derive

import (
	"math"
	"testing"

	"atlas/internal/model"
)

func TestProjection(t *testing.T) {
	cases := []struct {
		lat, lng float64
		x, y     float64
	}{
		{0, 0, 0.5, 0.5},
		{90, -180, 0, 0},
		{-90, 180, 1, 1},
		{29.9792, 31.1342, (31.1342 + 180) / 360, (90 - 29.9792) / 180},
	}
	for _, tc := range cases {
		if got := ProjectX(tc.lng); math.Abs(got-tc.x) > 1e-9 {
			t.Errorf("ProjectX(%v)=%v want %v", tc.lng, got, tc.x)
		}
		if got := ProjectY(tc.lat); math.Abs(got-tc.y) > 1e-9 {
			t.Errorf("ProjectY(%v)=%v want %v", tc.lat, got, tc.y)
		}
	}
}

func TestBuildMapExcludesPartialCoordinates(t *testing.T) {
	lat := 10.0
	cats := []model.Category{{ID: "c", Name: "C", Topics: []model.Topic{
		{ID: "lat-only", Title: "Latitude only", Lat: &lat},
		{ID: "bare", Title: "No coords"},
	}}}
	if pts := BuildMap(cats); pts != nil {
		t.Fatalf("expected no map points, got %v", pts)
	}
}

func TestBuildMapSeed(t *testing.T) {
	pts := BuildMap(model.Seed())
	if len(pts) == 0 {
		t.Fatal("seed should place points on the map")
	}
	for _, p := range pts {
		if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
			t.Fatalf("point %s projects outside the unit box: (%v,%v)", p.ID, p.X, p.Y)
		}
	}
}
