package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kmarshland/hab-predictor/geo"
	"github.com/kmarshland/hab-predictor/nav"
)

type navigateOutput struct {
	Positions []pointJSON `json:"positions"`
	Naive     []pointJSON `json:"naive,omitempty"`
	Metadata  metadata    `json:"metadata"`
}

func runNavigate(args []string) error {
	fs := flag.NewFlagSet("navigate", flag.ExitOnError)
	common := registerCommonFlags(fs)
	timeoutSeconds := fs.Float64("timeout", 30, "search wall-clock deadline, seconds")
	duration := fs.Float64("duration", 6*3600, "trajectory duration, seconds")
	timeIncrement := fs.Float64("time-increment", 600, "per-expansion time step, seconds")
	altitudeVariance := fs.Uint("altitude-variance", 2, "candidate altitudes explored per expansion, each side of center")
	altitudeIncrement := fs.Uint("altitude-increment", 500, "altitude spacing between candidates, meters")
	compareWithNaive := fs.Bool("compare-with-naive", false, "include an unguided Float baseline over the same elapsed time")
	destLat := fs.Float64("dest-lat", 0, "destination latitude (used only with -destination)")
	destLon := fs.Float64("dest-lon", 0, "destination longitude")
	useDest := fs.Bool("destination", false, "navigate toward (-dest-lat, -dest-lon) instead of maximizing downrange distance")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cat, log, err := common.catalog()
	if err != nil {
		return err
	}
	launch, err := common.launch()
	if err != nil {
		return err
	}

	var navType nav.NavType
	if *useDest {
		d := geo.Point{Lat: float32(*destLat), Lon: float32(*destLon)}
		navType.Destination = &d
	}

	result, err := nav.Navigate(cat, nav.Params{
		Launch:            launch,
		TimeoutSeconds:    float32(*timeoutSeconds),
		Duration:          float32(*duration),
		TimeIncrement:     float32(*timeIncrement),
		AltitudeVariance:  uint32(*altitudeVariance),
		AltitudeIncrement: uint32(*altitudeIncrement),
		CompareWithNaive:  *compareWithNaive,
		NavType:           navType,
	}, log)
	if err != nil {
		return err
	}
	if result.TimedOut {
		fmt.Fprintln(os.Stderr, "habpredict navigate: search deadline reached, returning best-so-far")
	}

	return printJSON(navigateOutput{
		Positions: toPointJSONSlice(result.Trajectory),
		Naive:     toPointJSONSlice(result.Naive),
	})
}
