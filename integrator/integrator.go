// Package integrator implements the explicit fixed-step trajectory
// integrator: the Standard (ascent/burst/descent) and Float (wind-following)
// profiles over a wind field.
package integrator

import (
	"fmt"
	"time"

	"github.com/kmarshland/hab-predictor/geo"
	"github.com/kmarshland/hab-predictor/herr"
)

// WindSource is anything that can answer a wind query at a point. It is
// satisfied by *wind.Catalog in production and by a stub in tests.
type WindSource interface {
	WindAt(p geo.Point) (geo.Velocity, error)
}

// Profile selects which integration model Predict runs.
type Profile int

const (
	// Standard integrates ascent (wind + constant ascent rate) until
	// burst_altitude, then descent (wind − constant descent rate) until
	// altitude returns to or below zero.
	Standard Profile = iota
	// Float integrates wind-only motion at the launch altitude for a fixed
	// duration.
	Float
)

// Params collects every input a Predict call may need; unused fields for a
// given Profile are ignored.
type Params struct {
	Launch  geo.Point
	Profile Profile

	// Standard profile.
	BurstAltitude float32
	AscentRate    float32
	DescentRate   float32

	// Float profile.
	Duration time.Duration

	// Step overrides the fixed integration step. Zero selects
	// geo.DefaultStep.
	Step time.Duration
}

// Prediction is the output of Predict. For Standard, Ascent/Burst/Descent
// are populated and Positions is nil; for Float, Positions is populated and
// the other three are zero.
type Prediction struct {
	Ascent  []geo.Point
	Burst   geo.Point
	Descent []geo.Point

	Positions []geo.Point
}

// maxSteps bounds a single integration run so a pathological wind field or
// parameter combination cannot spin forever. Generous enough never to bind
// a real flight.
const maxSteps = 1_000_000

func step(d time.Duration) time.Duration {
	if d <= 0 {
		return geo.DefaultStep
	}
	return d
}

// Predict runs the requested profile against ws, returning NoData if the
// resulting trajectory has zero length and InvalidParams for rejected
// parameter combinations (non-positive ascent/descent rate, unknown
// profile).
func Predict(ws WindSource, params Params) (Prediction, error) {
	switch params.Profile {
	case Standard:
		return predictStandard(ws, params)
	case Float:
		return predictFloat(ws, params)
	default:
		return Prediction{}, fmt.Errorf("unknown profile %d: %w", params.Profile, herr.ErrInvalidParams)
	}
}

func predictStandard(ws WindSource, params Params) (Prediction, error) {
	if params.AscentRate <= 0 || params.DescentRate <= 0 {
		return Prediction{}, fmt.Errorf("ascent/descent rates must be positive: %w", herr.ErrInvalidParams)
	}

	dt := step(params.Step)
	current := params.Launch

	var ascent []geo.Point
	for i := 0; current.Alt < params.BurstAltitude; i++ {
		if i >= maxSteps {
			return Prediction{}, fmt.Errorf("ascent exceeded %d steps without reaching burst altitude: %w", maxSteps, herr.ErrNoData)
		}
		wind, err := ws.WindAt(current)
		if err != nil {
			return Prediction{}, fmt.Errorf("ascent wind lookup: %w", herr.ErrNoData)
		}
		current = current.AddVelocity(wind.Add(geo.Velocity{Vertical: params.AscentRate}), dt)
		ascent = append(ascent, current)
	}
	burst := current

	var descent []geo.Point
	for i := 0; current.Alt > 0; i++ {
		if i >= maxSteps {
			return Prediction{}, fmt.Errorf("descent exceeded %d steps without reaching ground: %w", maxSteps, herr.ErrNoData)
		}
		wind, err := ws.WindAt(current)
		if err != nil {
			return Prediction{}, fmt.Errorf("descent wind lookup: %w", herr.ErrNoData)
		}
		current = current.AddVelocity(wind.Add(geo.Velocity{Vertical: -params.DescentRate}), dt)
		descent = append(descent, current)
	}

	if len(ascent) == 0 && len(descent) == 0 {
		return Prediction{}, herr.ErrNoData
	}

	return Prediction{Ascent: ascent, Burst: burst, Descent: descent}, nil
}

func predictFloat(ws WindSource, params Params) (Prediction, error) {
	if params.Duration <= 0 {
		return Prediction{}, fmt.Errorf("non-positive float duration: %w", herr.ErrNoData)
	}

	dt := step(params.Step)
	current := params.Launch
	deadline := params.Launch.Time.Add(params.Duration)

	var positions []geo.Point
	for i := 0; current.Time.Before(deadline); i++ {
		if i >= maxSteps {
			return Prediction{}, fmt.Errorf("float exceeded %d steps without reaching duration: %w", maxSteps, herr.ErrNoData)
		}
		wind, err := ws.WindAt(current)
		if err != nil {
			return Prediction{}, fmt.Errorf("float wind lookup: %w", herr.ErrNoData)
		}
		current = current.AddVelocity(wind, dt)
		positions = append(positions, current)
	}

	if len(positions) == 0 {
		return Prediction{}, herr.ErrNoData
	}

	return Prediction{Positions: positions}, nil
}
