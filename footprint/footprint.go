// Package footprint implements the Monte-Carlo landing-site footprint: N
// independent Standard-integrator runs with burst altitude and ascent/
// descent rates drawn from per-run Normal distributions, collecting each
// run's landing point.
package footprint

import (
	"fmt"

	"github.com/kmarshland/hab-predictor/geo"
	"github.com/kmarshland/hab-predictor/herr"
	"github.com/kmarshland/hab-predictor/integrator"
	"github.com/kmarshland/hab-predictor/internal/randx"
)

// Params describes the distributions samples are drawn from and the launch
// point shared by every trial.
type Params struct {
	Launch geo.Point

	BurstAltitudeMean, BurstAltitudeStdDev float32
	AscentRateMean, AscentRateStdDev       float32
	DescentRateMean, DescentRateStdDev     float32
}

// Footprint draws n independent samples of (burst_altitude, ascent_rate,
// descent_rate), runs the Standard integrator for each, and returns the
// final descent point (landing site) of every trial. The operation is
// all-or-nothing: any sample's integrator failure aborts the whole call.
// rnd may be nil to use a built-in default seed; tests should pass an
// explicit *randx.Rand for reproducibility.
func Footprint(ws integrator.WindSource, params Params, n int, rnd *randx.Rand) ([]geo.Point, error) {
	if n <= 0 {
		return nil, fmt.Errorf("trial count must be positive: %w", herr.ErrInvalidParams)
	}
	if rnd == nil {
		rnd = randx.New(defaultSeed)
	}

	landings := make([]geo.Point, 0, n)
	for i := 0; i < n; i++ {
		burstAltitude := rnd.Normal(params.BurstAltitudeMean, params.BurstAltitudeStdDev)
		ascentRate := rnd.Normal(params.AscentRateMean, params.AscentRateStdDev)
		descentRate := rnd.Normal(params.DescentRateMean, params.DescentRateStdDev)

		prediction, err := integrator.Predict(ws, integrator.Params{
			Launch:        params.Launch,
			Profile:       integrator.Standard,
			BurstAltitude: burstAltitude,
			AscentRate:    ascentRate,
			DescentRate:   descentRate,
		})
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", i, err)
		}
		if len(prediction.Descent) == 0 {
			return nil, fmt.Errorf("trial %d: %w", i, herr.ErrNoData)
		}
		landings = append(landings, prediction.Descent[len(prediction.Descent)-1])
	}

	return landings, nil
}

// defaultSeed is used only when a caller passes a nil *randx.Rand; it is an
// arbitrary constant, not a contract callers should rely on (pass an
// explicit Rand for reproducibility).
const defaultSeed = 0x9e3779b97f4a7c15
