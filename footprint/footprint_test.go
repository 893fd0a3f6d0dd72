package footprint

import (
	"testing"
	"time"

	"github.com/kmarshland/hab-predictor/geo"
	"github.com/kmarshland/hab-predictor/internal/randx"
)

type zeroWind struct{}

func (zeroWind) WindAt(p geo.Point) (geo.Velocity, error) { return geo.Velocity{}, nil }

func canonicalParams() Params {
	return Params{
		Launch:              geo.Point{Lat: 40, Lon: -105, Alt: 0, Time: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		BurstAltitudeMean:   30000,
		BurstAltitudeStdDev: 1000,
		AscentRateMean:      5,
		AscentRateStdDev:    0.5,
		DescentRateMean:     5,
		DescentRateStdDev:   0.5,
	}
}

func TestFootprintCountMatchesTrials(t *testing.T) {
	const n = 25
	positions, err := Footprint(zeroWind{}, canonicalParams(), n, randx.New(42))
	if err != nil {
		t.Fatalf("Footprint: %v", err)
	}
	if len(positions) != n {
		t.Errorf("len(positions) = %d, want %d", len(positions), n)
	}
}

func TestFootprintDeterministicWithFixedSeed(t *testing.T) {
	const n = 100
	a, err := Footprint(zeroWind{}, canonicalParams(), n, randx.New(42))
	if err != nil {
		t.Fatalf("Footprint: %v", err)
	}
	b, err := Footprint(zeroWind{}, canonicalParams(), n, randx.New(42))
	if err != nil {
		t.Fatalf("Footprint: %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("landing %d differs across runs with the same seed: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestFootprintRejectsNonPositiveTrialCount(t *testing.T) {
	if _, err := Footprint(zeroWind{}, canonicalParams(), 0, randx.New(1)); err == nil {
		t.Errorf("expected InvalidParams for n=0")
	}
}
