package nav

import (
	"fmt"
	"time"

	"github.com/kmarshland/hab-predictor/geo"
	"github.com/kmarshland/hab-predictor/herr"
	"github.com/kmarshland/hab-predictor/integrator"
	"github.com/kmarshland/hab-predictor/internal/applog"
)

// Params collects every input to Navigate.
type Params struct {
	Launch geo.Point

	TimeoutSeconds float32
	Duration       float32 // seconds
	TimeIncrement  float32 // seconds

	AltitudeVariance  uint32
	AltitudeIncrement uint32

	CompareWithNaive bool
	NavType          NavType
}

// Result is what Navigate returns: the best trajectory found, optionally
// alongside a naive (unguided Float) baseline over the same elapsed time.
type Result struct {
	Trajectory []geo.Point
	Naive      []geo.Point
	TimedOut   bool
}

// Navigate runs the generational best-first search: enqueue the launch
// node, repeatedly pop the globally cheapest frontier node (heap-top cost
// plus its generation's stagnation bias), expand it, and track the
// highest-scoring node seen. The deadline firing is not a failure: the
// best-so-far trajectory is still returned, with Result.TimedOut set.
func Navigate(ws integrator.WindSource, params Params, log *applog.Logger) (Result, error) {
	if params.TimeIncrement <= 0 || params.Duration <= 0 {
		return Result{}, fmt.Errorf("time_increment and duration must be positive: %w", herr.ErrInvalidParams)
	}

	a := &arena{}
	q := newGenerationalPQueue(a)

	root := a.add(Node{Location: params.Launch, Parent: -1, Generation: 0})
	q.enqueue(root)

	var deadline time.Time
	hasDeadline := params.TimeoutSeconds > 0
	if hasDeadline {
		deadline = time.Now().Add(time.Duration(float64(params.TimeoutSeconds) * float64(time.Second)))
	}

	bestIdx := -1
	var bestScore float32
	nextGen := 0
	stagnation := 0
	timedOut := false

	for {
		if hasDeadline && time.Now().After(deadline) {
			timedOut = true
			break
		}

		idx, ok := q.dequeue()
		if !ok {
			break
		}
		n := a.get(idx)

		if n.Generation+1 > nextGen {
			nextGen = n.Generation + 1
			stagnation = 0
		} else {
			stagnation++
		}

		if nextGen <= 1 {
			q.setBias(nextGen, 0)
		} else {
			q.setBias(nextGen, DefaultStagnationCost-StagnationMultiplier*float32(stagnation))
		}

		if float32(n.Generation)*params.TimeIncrement < params.Duration {
			children, err := a.expand(ws, idx, params.NavType, params.TimeIncrement, params.AltitudeVariance, params.AltitudeIncrement)
			if err != nil {
				log.Warnf("navigate: expanding generation %d: %v", n.Generation, err)
			} else {
				for _, c := range children {
					q.enqueue(c)
				}
			}
		}

		s := score(params.NavType, n)
		if bestIdx == -1 || s > bestScore {
			bestIdx = idx
			bestScore = s
		}
	}

	if bestIdx == -1 {
		return Result{}, herr.ErrNoData
	}

	result := Result{
		Trajectory: a.unravel(bestIdx),
		TimedOut:   timedOut,
	}

	if params.CompareWithNaive {
		best := a.get(bestIdx)
		elapsed := best.Location.Time.Sub(params.Launch.Time)
		if elapsed > 0 {
			naive, err := integrator.Predict(ws, integrator.Params{
				Launch:   params.Launch,
				Profile:  integrator.Float,
				Duration: elapsed,
			})
			if err != nil {
				log.Warnf("navigate: naive baseline: %v", err)
			} else {
				result.Naive = naive.Positions
			}
		}
	}

	return result, nil
}
