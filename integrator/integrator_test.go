package integrator

import (
	"testing"
	"time"

	"github.com/kmarshland/hab-predictor/geo"
	"github.com/kmarshland/hab-predictor/herr"
)

// zeroWind is a WindSource stub returning zero wind everywhere.
type zeroWind struct{}

func (zeroWind) WindAt(p geo.Point) (geo.Velocity, error) { return geo.Velocity{}, nil }

type errWind struct{}

func (errWind) WindAt(p geo.Point) (geo.Velocity, error) {
	return geo.Velocity{}, herr.ErrNoDatasets
}

func TestStandardIntegratorReachesBurst(t *testing.T) {
	launch := geo.Point{Lat: 0, Lon: 0, Alt: 0, Time: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}

	prediction, err := Predict(zeroWind{}, Params{
		Launch:        launch,
		Profile:       Standard,
		BurstAltitude: 30000,
		AscentRate:    5,
		DescentRate:   5,
	})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}

	wantSteps := 100 // 30000 / (5*60)
	if d := abs(len(prediction.Ascent) - wantSteps); d > 1 {
		t.Errorf("len(ascent) = %d, want ~%d", len(prediction.Ascent), wantSteps)
	}
	if d := abs(len(prediction.Descent) - wantSteps); d > 1 {
		t.Errorf("len(descent) = %d, want ~%d", len(prediction.Descent), wantSteps)
	}

	if tolerance := float32(5 * 60); absf32(prediction.Burst.Alt-30000) > tolerance {
		t.Errorf("burst altitude = %v, want within %v of 30000", prediction.Burst.Alt, tolerance)
	}
	if prediction.Descent[len(prediction.Descent)-1].Alt > 0 {
		t.Errorf("final altitude = %v, want <= 0", prediction.Descent[len(prediction.Descent)-1].Alt)
	}
}

func TestStandardRejectsNonPositiveRates(t *testing.T) {
	launch := geo.Point{Time: time.Now().UTC()}
	for _, p := range []Params{
		{Launch: launch, Profile: Standard, BurstAltitude: 1000, AscentRate: 0, DescentRate: 5},
		{Launch: launch, Profile: Standard, BurstAltitude: 1000, AscentRate: 5, DescentRate: -1},
	} {
		if _, err := Predict(zeroWind{}, p); err == nil {
			t.Errorf("Predict(%+v) should have failed with InvalidParams", p)
		}
	}
}

func TestStandardPropagatesWindLookupFailure(t *testing.T) {
	launch := geo.Point{Time: time.Now().UTC()}
	_, err := Predict(errWind{}, Params{Launch: launch, Profile: Standard, BurstAltitude: 1000, AscentRate: 5, DescentRate: 5})
	if err == nil {
		t.Errorf("expected NoData when the wind source fails")
	}
}

func TestFloatStepsUntilDuration(t *testing.T) {
	launch := geo.Point{Lat: 0, Lon: 0, Alt: 5000, Time: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	prediction, err := Predict(zeroWind{}, Params{Launch: launch, Profile: Float, Duration: 10 * time.Minute})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if len(prediction.Positions) != 10 { // 600s / 60s step
		t.Errorf("len(positions) = %d, want 10", len(prediction.Positions))
	}
	last := prediction.Positions[len(prediction.Positions)-1]
	if !last.Time.Equal(launch.Time.Add(10 * time.Minute)) {
		t.Errorf("final time = %v, want %v", last.Time, launch.Time.Add(10*time.Minute))
	}
}

func TestPredictUnknownProfile(t *testing.T) {
	if _, err := Predict(zeroWind{}, Params{Profile: Profile(99)}); err == nil {
		t.Errorf("expected InvalidParams for an unknown profile")
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
