package main

import (
	"time"

	"github.com/kmarshland/hab-predictor/geo"
)

// pointJSON is the consumer-facing serialization of geo.Point: time is
// rendered in a stable textual UTC form (RFC3339). Marshaling lives here
// in cmd/, never in the core packages.
type pointJSON struct {
	Latitude  float32   `json:"latitude"`
	Longitude float32   `json:"longitude"`
	Altitude  float32   `json:"altitude"`
	Time      time.Time `json:"time"`
}

func toPointJSON(p geo.Point) pointJSON {
	return pointJSON{Latitude: p.Lat, Longitude: p.Lon, Altitude: p.Alt, Time: p.Time.UTC()}
}

func toPointJSONSlice(ps []geo.Point) []pointJSON {
	out := make([]pointJSON, len(ps))
	for i, p := range ps {
		out[i] = toPointJSON(p)
	}
	return out
}
