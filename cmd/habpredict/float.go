package main

import (
	"flag"
	"time"

	"github.com/kmarshland/hab-predictor/integrator"
)

type floatOutput struct {
	Positions []pointJSON `json:"positions"`
	Metadata  metadata    `json:"metadata"`
}

func runFloat(args []string) error {
	fs := flag.NewFlagSet("float", flag.ExitOnError)
	common := registerCommonFlags(fs)
	duration := fs.Duration("duration", time.Hour, "float duration")
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
		Launch:   launch,
		Profile:  integrator.Float,
		Duration: *duration,
		Step:     *step,
	})
	if err != nil {
		return err
	}

	return printJSON(floatOutput{Positions: toPointJSONSlice(prediction.Positions)})
}
