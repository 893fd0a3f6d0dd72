package main

import (
	"flag"
	"time"

	"github.com/kmarshland/hab-predictor/integrator"
)

type predictOutput struct {
	Ascent   []pointJSON `json:"ascent"`
	Burst    pointJSON   `json:"burst"`
	Descent  []pointJSON `json:"descent"`
	Metadata metadata    `json:"metadata"`
}

type metadata struct {
	Dataset string `json:"dataset,omitempty"`
}

func runPredict(args []string) error {
	fs := flag.NewFlagSet("predict", flag.ExitOnError)
	common := registerCommonFlags(fs)
	burstAltitude := fs.Float64("burst-altitude", 30000, "burst altitude, meters")
	ascentRate := fs.Float64("ascent-rate", 5, "ascent rate, meters/second")
	descentRate := fs.Float64("descent-rate", 5, "descent rate, meters/second")
	step := fs.Duration("step", 60*time.Second, "integration step")
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

	prediction, err := integrator.Predict(cat, integrator.Params{
		Launch:        launch,
		Profile:       integrator.Standard,
		BurstAltitude: float32(*burstAltitude),
		AscentRate:    float32(*ascentRate),
		DescentRate:   float32(*descentRate),
		Step:          *step,
	})
	if err != nil {
		return err
	}

	return printJSON(predictOutput{
		Ascent:  toPointJSONSlice(prediction.Ascent),
		Burst:   toPointJSON(prediction.Burst),
		Descent: toPointJSONSlice(prediction.Descent),
	})
}
