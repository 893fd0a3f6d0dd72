package wind

import "math"

// Levels is the fixed, ordered set of standard isobaric surfaces (hPa) that
// forecast data is stratified into.
var Levels = [31]int32{
	2, 3, 5, 7, 10, 20, 30, 50, 70, 80, 100, 150, 200, 250, 300, 350, 400, 450,
	500, 550, 600, 650, 700, 750, 800, 850, 900, 925, 950, 975, 1000,
}

// GridResolution is the native latitude/longitude spacing of the forecast
// grid, in degrees.
const GridResolution = 0.5

// PressureFromAltitude converts a geometric altitude in meters to pressure
// in hPa via the standard barometric formula.
func PressureFromAltitude(altMeters float32) float32 {
	return 1013.25 * float32(math.Pow(1-float64(altMeters)/44330, 5.255))
}

// levelBracket finds the pair of adjacent indices into Levels that bracket
// pressure p, plus the interpolation weight of the down (lower-valued)
// level: 1 when p sits on the down level, 0 when p sits on the up level.
// The nearest index i is found first, then the bracket is drawn from
// {Levels[i-1], Levels[i], Levels[i+1]}; indices are clamped at the ends of
// the table.
func levelBracket(p float32) (downIdx, upIdx int, percentDown float32) {
	n := len(Levels)

	nearest := 0
	bestDiff := absf32(p - float32(Levels[0]))
	for i := 1; i < n; i++ {
		d := absf32(p - float32(Levels[i]))
		if d < bestDiff {
			bestDiff = d
			nearest = i
		}
	}

	var loIdx, hiIdx int
	switch {
	case p <= float32(Levels[0]):
		loIdx, hiIdx = 0, 0
	case p >= float32(Levels[n-1]):
		loIdx, hiIdx = n-1, n-1
	case p < float32(Levels[nearest]):
		loIdx, hiIdx = nearest-1, nearest
	case p > float32(Levels[nearest]):
		loIdx, hiIdx = nearest, nearest+1
	default:
		loIdx, hiIdx = nearest, nearest
	}

	// level_down is the lower-valued (lower index) bracket entry and
	// level_up the higher-valued one, so the denominator below stays
	// positive.
	downIdx, upIdx = loIdx, hiIdx
	if downIdx == upIdx {
		return downIdx, upIdx, 1
	}

	lDown := float32(Levels[downIdx])
	lUp := float32(Levels[upIdx])
	// A corner's weight is its proximity to the query: distance from the
	// opposite bracket point over the bracket span, matching fracBracket's
	// lat/lon convention.
	percentDown = absf32(lUp-p) / (lUp - lDown)
	return downIdx, upIdx, percentDown
}

func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
