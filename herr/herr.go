// Package herr defines the sentinel error kinds shared across the
// predictor, navigator, and footprint packages.
package herr

import "errors"

var (
	// ErrInvalidParams marks a rejected parameter combination: a non-positive
	// ascent/descent rate, trial count, navigation time increment or
	// duration, an unknown profile, or a non-conforming dataset directory
	// name.
	ErrInvalidParams = errors.New("invalid parameters")

	// ErrNoDatasets marks a catalog whose root contained zero conforming
	// dataset subdirectories.
	ErrNoDatasets = errors.New("no datasets found")

	// ErrNotFound marks a requested aligned corner absent from its expected
	// tile file.
	ErrNotFound = errors.New("corner not found in tile")

	// ErrCorrupt marks a tile whose record stream ended mid-record or whose
	// length is not a multiple of the record size.
	ErrCorrupt = errors.New("corrupt tile data")

	// ErrNoData marks an integrator or navigator call that produced no
	// trajectory at all.
	ErrNoData = errors.New("no trajectory data produced")

	// ErrIo marks any filesystem failure other than the corner/corrupt
	// cases above (permissions, unreadable directory, and so on).
	ErrIo = errors.New("io error")
)

// Timeout marks a search deadline firing before the queue emptied. It is
// not a failure: Navigate still returns its best-so-far result and reports
// the deadline via the result rather than as an error, so this sentinel
// exists for callers that want to surface the condition as an error value
// themselves.
var Timeout = errors.New("search deadline reached")
