package main

import (
	"flag"

	"github.com/kmarshland/hab-predictor/footprint"
	"github.com/kmarshland/hab-predictor/internal/randx"
)

type footprintOutput struct {
	Positions []pointJSON `json:"positions"`
	Metadata  metadata    `json:"metadata"`
}

func runFootprint(args []string) error {
	fs := flag.NewFlagSet("footprint", flag.ExitOnError)
	common := registerCommonFlags(fs)
	trials := fs.Int("trials", 100, "number of Monte-Carlo trials")
	seed := fs.Int64("seed", 0, "RNG seed (0 selects the built-in default)")
	burstAltitudeMean := fs.Float64("burst-altitude-mean", 30000, "burst altitude mean, meters")
	burstAltitudeStdDev := fs.Float64("burst-altitude-stddev", 1000, "burst altitude std dev, meters")
	ascentRateMean := fs.Float64("ascent-rate-mean", 5, "ascent rate mean, m/s")
	ascentRateStdDev := fs.Float64("ascent-rate-stddev", 0.5, "ascent rate std dev, m/s")
	descentRateMean := fs.Float64("descent-rate-mean", 5, "descent rate mean, m/s")
	descentRateStdDev := fs.Float64("descent-rate-stddev", 0.5, "descent rate std dev, m/s")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cat, _, err := common.catalog()
	if err != nil {
		return err
	}
	launch, err := common.launch()
	if err != nil {
		return err
	}

	var rnd *randx.Rand
	if *seed != 0 {
		rnd = randx.New(uint64(*seed))
	}

	positions, err := footprint.Footprint(cat, footprint.Params{
		Launch:              launch,
		BurstAltitudeMean:   float32(*burstAltitudeMean),
		BurstAltitudeStdDev: float32(*burstAltitudeStdDev),
		AscentRateMean:      float32(*ascentRateMean),
		AscentRateStdDev:    float32(*ascentRateStdDev),
		DescentRateMean:     float32(*descentRateMean),
		DescentRateStdDev:   float32(*descentRateStdDev),
	}, *trials, rnd)
	if err != nil {
		return err
	}

	return printJSON(footprintOutput{Positions: toPointJSONSlice(positions)})
}
