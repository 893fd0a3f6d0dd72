package wind

import (
	"math"

	"github.com/kmarshland/hab-predictor/geo"
)

// AlignedCorner is a single grid point at the forecast's native resolution
// plus one of the standard pressure levels. Latitude is snapped to the 0.5°
// grid and clamped to [-90, 90]; longitude is snapped to the 0.5° grid and
// normalized to [0, 360).
type AlignedCorner struct {
	Lat   float32
	Lon   float32
	Level int32 // hPa
}

// Alignment is the eight aligned corners surrounding a Point, plus the six
// interpolation weights used to trilinearly blend them.
type Alignment struct {
	Corners [8]AlignedCorner

	PercentNorth, PercentSouth float32
	PercentEast, PercentWest   float32
	PercentDown, PercentUp     float32
}

// corner index bit layout: bit0 = north(1)/south(0), bit1 = east(1)/west(0),
// bit2 = down(1)/up(0).
const (
	cornerSouth = 0
	cornerNorth = 1
	cornerWest  = 0
	cornerEast  = 2
	cornerUp    = 0
	cornerDown  = 4
)

// toGridLon normalizes a Point longitude (in [-180, 180)) into the aligned
// corner's [0, 360) convention.
func toGridLon(lon float32) float32 {
	l := math.Mod(float64(lon), 360)
	if l < 0 {
		l += 360
	}
	return float32(l)
}

func clampLat(lat float32) float32 {
	if lat < -90 {
		return -90
	}
	if lat > 90 {
		return 90
	}
	return lat
}

// fracBracket returns the floor/ceil of x/step (in units of step) and the
// fractional weight toward the ceil side. On an exact grid line (ceil ==
// floor) the weight degenerates to 1 and the lower-side weight to 0.
func fracBracket(x, step float32) (lo, hi, highWeight float32) {
	t := x / step
	lo = float32(math.Floor(float64(t)))
	hi = float32(math.Ceil(float64(t)))
	if hi == lo {
		return lo, hi, 1
	}
	return lo, hi, t - lo
}

// AlignPoint computes the Alignment for a query point.
func AlignPoint(p geo.Point) Alignment {
	pressure := PressureFromAltitude(p.Alt)
	downIdx, upIdx, percentDown := levelBracket(pressure)

	gridLon := toGridLon(p.Lon)
	gridLat := clampLat(p.Lat)

	latLo, latHi, latHighWeight := fracBracket(gridLat, GridResolution)
	lonLo, lonHi, lonHighWeight := fracBracket(gridLon, GridResolution)

	latSouth := clampLat(latLo * GridResolution)
	latNorth := clampLat(latHi * GridResolution)
	lonWest := wrapGridLon(lonLo * GridResolution)
	lonEast := wrapGridLon(lonHi * GridResolution)

	a := Alignment{
		PercentNorth: latHighWeight,
		PercentSouth: 1 - latHighWeight,
		PercentEast:  lonHighWeight,
		PercentWest:  1 - lonHighWeight,
		PercentDown:  percentDown,
		PercentUp:    1 - percentDown,
	}

	for idx := 0; idx < 8; idx++ {
		lat := latSouth
		if idx&1 == cornerNorth {
			lat = latNorth
		}
		lon := lonWest
		if idx&2 == cornerEast {
			lon = lonEast
		}
		level := Levels[upIdx]
		if idx&4 == cornerDown {
			level = Levels[downIdx]
		}
		a.Corners[idx] = AlignedCorner{Lat: lat, Lon: lon, Level: level}
	}

	return a
}

func wrapGridLon(lon float32) float32 {
	l := math.Mod(float64(lon), 360)
	if l < 0 {
		l += 360
	}
	return float32(l)
}

// Weight returns the trilinear interpolation weight for corner index idx
// (the same bit layout used by AlignPoint), the product of the three axis
// fractions.
func (a Alignment) Weight(idx int) float32 {
	w := float32(1)
	if idx&1 == cornerNorth {
		w *= a.PercentNorth
	} else {
		w *= a.PercentSouth
	}
	if idx&2 == cornerEast {
		w *= a.PercentEast
	} else {
		w *= a.PercentWest
	}
	if idx&4 == cornerDown {
		w *= a.PercentDown
	} else {
		w *= a.PercentUp
	}
	return w
}

// CacheKey packs (level, datasetID, lat, lon) of an aligned corner into a
// 32-bit key: level index in bits [0,5), dataset id (mod 32) in bits [5,10),
// latitude index in bits [10,20), longitude index in bits [20,32).
func CacheKey(c AlignedCorner, datasetID int) uint32 {
	levelIdx := levelIndex(c.Level)
	latIdx := uint32((c.Lat + 90) / GridResolution)
	lonIdx := uint32(c.Lon / GridResolution)
	return uint32(levelIdx) |
		uint32(datasetID&0x1F)<<5 |
		(latIdx&0x3FF)<<10 |
		(lonIdx&0xFFF)<<20
}

func levelIndex(level int32) int {
	for i, l := range Levels {
		if l == level {
			return i
		}
	}
	return 0
}
