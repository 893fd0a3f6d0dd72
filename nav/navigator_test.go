package nav

import (
	"testing"
	"time"

	"github.com/kmarshland/hab-predictor/geo"
)

// uniformEastWind is a WindSource stub blowing due east at 10 m/s.
type uniformEastWind struct{}

func (uniformEastWind) WindAt(p geo.Point) (geo.Velocity, error) {
	return geo.Velocity{East: 10}, nil
}

// With a uniform eastward wind and a destination due east of the launch,
// the returned trajectory should monotonically approach it.
func TestNavigateDestinationReducesDistance(t *testing.T) {
	launch := geo.Point{Lat: 30, Lon: -120, Alt: 5000, Time: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	dest := geo.Point{Lat: 30, Lon: -100}

	result, err := Navigate(uniformEastWind{}, Params{
		Launch:            launch,
		TimeoutSeconds:    5,
		Duration:          1_000_000,
		TimeIncrement:     600,
		AltitudeVariance:  0,
		AltitudeIncrement: 0,
		NavType:           NavType{Destination: &dest},
	}, nil)
	if err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if len(result.Trajectory) < 2 {
		t.Fatalf("expected a multi-point trajectory, got %d points", len(result.Trajectory))
	}

	prevDist := geo.HaversineDistance(result.Trajectory[0], dest)
	for i := 1; i < len(result.Trajectory); i++ {
		d := geo.HaversineDistance(result.Trajectory[i], dest)
		if d > prevDist+1 { // small tolerance for f32 rounding
			t.Errorf("distance to destination increased at step %d: %v -> %v", i, prevDist, d)
		}
		prevDist = d
	}
}

func TestNavigateTrajectoryInvariants(t *testing.T) {
	launch := geo.Point{Lat: 0, Lon: 0, Alt: 5000, Time: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}

	result, err := Navigate(uniformEastWind{}, Params{
		Launch:            launch,
		TimeoutSeconds:    2,
		Duration:          3600,
		TimeIncrement:     600,
		AltitudeVariance:  1,
		AltitudeIncrement: 500,
		NavType:           NavType{},
	}, nil)
	if err != nil {
		t.Fatalf("Navigate: %v", err)
	}

	traj := result.Trajectory
	if traj[0] != launch {
		t.Errorf("trajectory[0] = %+v, want launch %+v", traj[0], launch)
	}
	for i := 1; i < len(traj); i++ {
		if !traj[i].Time.After(traj[i-1].Time) {
			t.Errorf("time did not strictly increase at step %d: %v -> %v", i, traj[i-1].Time, traj[i].Time)
		}
	}
}

func TestUnravelVisitsGenerationPlusOneNodes(t *testing.T) {
	a := &arena{}
	root := a.add(Node{Location: geo.Point{Lat: 0}, Parent: -1, Generation: 0})
	child := a.add(Node{Location: geo.Point{Lat: 1}, Parent: root, Generation: 1})
	grandchild := a.add(Node{Location: geo.Point{Lat: 2}, Parent: child, Generation: 2})

	points := a.unravel(grandchild)
	if len(points) != 3 {
		t.Fatalf("len(unravel) = %d, want 3 (generation+1)", len(points))
	}
	if points[0].Lat != 0 || points[1].Lat != 1 || points[2].Lat != 2 {
		t.Errorf("unravel order = %+v, want launch-to-node order", points)
	}
}
