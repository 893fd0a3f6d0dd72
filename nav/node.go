// Package nav implements the generational best-first navigation search:
// Node expansion via the Float integration profile, a per-generation
// priority queue with dynamic stagnation biases, and the Navigate main
// loop.
package nav

import (
	"fmt"
	"math"
	"time"

	"github.com/kmarshland/hab-predictor/geo"
	"github.com/kmarshland/hab-predictor/herr"
	"github.com/kmarshland/hab-predictor/integrator"
)

const (
	// HeuristicWeight scales the distance-to-goal (or downrange progress)
	// term of a child's cost.
	HeuristicWeight = 30
	// MovementWeight scales the altitude-change penalty of a child's cost.
	MovementWeight = 0.1
	// DefaultStagnationCost is the starting per-generation bias.
	DefaultStagnationCost = 0.1
	// StagnationMultiplier scales how much longer stagnation sweetens the
	// bias toward advancing to the next generation.
	StagnationMultiplier = 0.01

	maxAltitude = 20_000
)

// Node is a candidate balloon state at one search step: its location, a
// link to the parent that produced it (an index into the owning search
// run's arena, or -1 for the launch node), its generation (hop count from
// the launch node), and the two cost terms summed for ordering.
type Node struct {
	Location   geo.Point
	Parent     int
	Generation int

	HeuristicCost float32
	MovementCost  float32
}

// Cost is the total ordering cost used by the priority queue: lower is
// explored first.
func (n Node) Cost() float32 {
	return n.HeuristicCost + n.MovementCost
}

// NavType selects how a child's heuristic cost and a node's score are
// computed.
type NavType struct {
	// Destination, if non-nil, requests Destination-style cost/score
	// (seek a specific point). Nil requests Distance-style (maximize
	// downrange longitude progress).
	Destination *geo.Point
}

// arena owns every Node ever enqueued during one Navigate call; nodes
// reference their parent by index rather than by pointer, so the whole
// search DAG is released together when the call returns.
type arena struct {
	nodes []Node
}

func (a *arena) add(n Node) int {
	a.nodes = append(a.nodes, n)
	return len(a.nodes) - 1
}

func (a *arena) get(i int) Node {
	return a.nodes[i]
}

// unravel walks parent links from node index idx back to the root,
// returning the trajectory in launch-to-idx order. The result has exactly
// generation+1 points and starts at the launch point.
func (a *arena) unravel(idx int) []geo.Point {
	n := a.get(idx)
	points := make([]geo.Point, n.Generation+1)
	for i := n.Generation; i >= 0; i-- {
		points[i] = n.Location
		if n.Parent < 0 {
			break
		}
		n = a.get(n.Parent)
	}
	return points
}

// expand runs one Float-profile integration step from the parent's
// location, then fans out over candidate altitudes around the resulting
// point, returning the arena indices of the children. timeIncrement is in
// seconds.
func (a *arena) expand(ws integrator.WindSource, parentIdx int, navType NavType, timeIncrement float32, altitudeVariance, altitudeIncrement uint32) ([]int, error) {
	parent := a.get(parentIdx)

	prediction, err := integrator.Predict(ws, integrator.Params{
		Launch:   parent.Location,
		Profile:  integrator.Float,
		Duration: secondsToDuration(timeIncrement),
	})
	if err != nil {
		return nil, fmt.Errorf("expanding generation %d: %w", parent.Generation, err)
	}
	if len(prediction.Positions) == 0 {
		return nil, fmt.Errorf("expanding generation %d: %w", parent.Generation, herr.ErrNoData)
	}
	q := prediction.Positions[len(prediction.Positions)-1]

	var children []int
	for k := -int64(altitudeVariance); k <= int64(altitudeVariance); k++ {
		altitude := q.Alt + float32(k)*float32(altitudeIncrement)
		if altitude < 0 || altitude > maxAltitude {
			continue
		}

		child := geo.Point{Lat: q.Lat, Lon: q.Lon, Alt: altitude, Time: q.Time}

		heuristic := childHeuristic(navType, parent.Location, q, timeIncrement)
		movement := parent.MovementCost + sqrtAbs(parent.Location.Alt-altitude)*MovementWeight

		idx := a.add(Node{
			Location:      child,
			Parent:        parentIdx,
			Generation:    parent.Generation + 1,
			HeuristicCost: heuristic,
			MovementCost:  movement,
		})
		children = append(children, idx)
	}

	return children, nil
}

func childHeuristic(navType NavType, p, q geo.Point, timeIncrementSeconds float32) float32 {
	if navType.Destination != nil {
		return geo.HaversineDistance(q, *navType.Destination) * HeuristicWeight
	}

	mult := HeuristicWeight / timeIncrementSeconds
	dLon := p.Lon - q.Lon
	// Only the pair straddling the antimeridian needs the wraparound
	// correction; an ordinary sign flip near the prime meridian must not
	// trigger it, so key off magnitude rather than sign alone.
	switch {
	case dLon > 180:
		dLon -= 360
	case dLon < -180:
		dLon += 360
	}
	return dLon * mult
}

// score returns the navigator's running objective for node n; higher is
// better. Destination scoring rewards proximity to the destination;
// Distance scoring rewards downrange longitude progress, unrolled so an
// eastbound flight keeps scoring higher after crossing the dateline.
func score(navType NavType, n Node) float32 {
	if navType.Destination != nil {
		d := *navType.Destination
		dLon := n.Location.Lon - d.Lon
		dLat := n.Location.Lat - d.Lat
		return -(dLon*dLon + dLat*dLat)
	}

	if n.Location.Lon < -140 {
		return n.Location.Lon + 540
	}
	return n.Location.Lon + 180
}

func sqrtAbs(v float32) float32 {
	if v < 0 {
		v = -v
	}
	return float32(math.Sqrt(float64(v)))
}

func secondsToDuration(seconds float32) time.Duration {
	return time.Duration(float64(seconds) * float64(time.Second))
}
