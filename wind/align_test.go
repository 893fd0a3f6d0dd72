package wind

import (
	"testing"

	"github.com/kmarshland/hab-predictor/geo"
)

func TestWeightsSumToOne(t *testing.T) {
	points := []geo.Point{
		{Lat: 37.3, Lon: -122.1, Alt: 5800},
		{Lat: -10, Lon: 179.9, Alt: 0},
		{Lat: 0, Lon: 0, Alt: 12000},
	}
	for _, p := range points {
		a := AlignPoint(p)
		if got := a.PercentNorth + a.PercentSouth; absf(got-1) > 1e-4 {
			t.Errorf("%+v: PercentNorth+PercentSouth = %v, want 1", p, got)
		}
		if got := a.PercentEast + a.PercentWest; absf(got-1) > 1e-4 {
			t.Errorf("%+v: PercentEast+PercentWest = %v, want 1", p, got)
		}
		if got := a.PercentDown + a.PercentUp; absf(got-1) > 1e-4 {
			t.Errorf("%+v: PercentDown+PercentUp = %v, want 1", p, got)
		}
		for _, w := range []float32{a.PercentNorth, a.PercentSouth, a.PercentEast, a.PercentWest, a.PercentDown, a.PercentUp} {
			if w < 0 || w > 1 {
				t.Errorf("%+v: weight %v out of [0,1]", p, w)
			}
		}
	}
}

func TestAlignedCornersWithinBounds(t *testing.T) {
	a := AlignPoint(geo.Point{Lat: 89.9, Lon: -179.9, Alt: 500})
	for _, c := range a.Corners {
		if c.Lat < -90 || c.Lat > 90 {
			t.Errorf("corner lat %v out of [-90,90]", c.Lat)
		}
		if c.Lon < 0 || c.Lon >= 360 {
			t.Errorf("corner lon %v out of [0,360)", c.Lon)
		}
	}
}

func TestCacheKeyBijection(t *testing.T) {
	base := AlignedCorner{Lat: 37.0, Lon: 238.0, Level: 500}
	k1 := CacheKey(base, 3)

	same := AlignedCorner{Lat: 37.0, Lon: 238.0, Level: 500}
	if CacheKey(same, 3) != k1 {
		t.Errorf("identical corners/dataset must produce identical keys")
	}

	variants := []struct {
		name string
		c    AlignedCorner
		ds   int
	}{
		{"level", AlignedCorner{Lat: 37.0, Lon: 238.0, Level: 700}, 3},
		{"lat", AlignedCorner{Lat: 37.5, Lon: 238.0, Level: 500}, 3},
		{"lon", AlignedCorner{Lat: 37.0, Lon: 238.5, Level: 500}, 3},
		{"dataset", AlignedCorner{Lat: 37.0, Lon: 238.0, Level: 500}, 4},
	}
	for _, v := range variants {
		if CacheKey(v.c, v.ds) == k1 {
			t.Errorf("varying %s should change the cache key", v.name)
		}
	}
}

func TestWeightOnGridLine(t *testing.T) {
	// A point exactly on a 0.5deg grid line degenerates its weight to the
	// northern/eastern corner column.
	a := AlignPoint(geo.Point{Lat: 37.0, Lon: -122.0, Alt: 5800})
	if a.PercentNorth != 1 || a.PercentSouth != 0 {
		t.Errorf("on-grid-line lat weights = (%v, %v), want (1, 0)", a.PercentNorth, a.PercentSouth)
	}
	if a.PercentEast != 1 || a.PercentWest != 0 {
		t.Errorf("on-grid-line lon weights = (%v, %v), want (1, 0)", a.PercentEast, a.PercentWest)
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
