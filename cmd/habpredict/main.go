// Command habpredict is a thin operator harness over the predictor
// library: it loads a wind.Catalog rooted at a forecast directory and runs
// one of the predict/float/footprint/navigate/archive operations, printing
// the result as JSON.
package main

import (
	"fmt"
	"os"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: habpredict <predict|float|footprint|navigate|archive> [flags]\n")
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	verb := os.Args[1]
	args := os.Args[2:]

	var err error
	switch verb {
	case "predict":
		err = runPredict(args)
	case "float":
		err = runFloat(args)
	case "footprint":
		err = runFootprint(args)
	case "navigate":
		err = runNavigate(args)
	case "archive":
		err = runArchive(args)
	default:
		usage()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "habpredict %s: %v\n", verb, err)
		os.Exit(1)
	}
}
