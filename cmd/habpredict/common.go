package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kmarshland/hab-predictor/geo"
	"github.com/kmarshland/hab-predictor/internal/applog"
	"github.com/kmarshland/hab-predictor/wind"
)

// commonFlags are registered identically on the FlagSet of every
// prediction subcommand (all but archive), scoped per-subcommand rather
// than global so verbs don't share state.
type commonFlags struct {
	root      *string
	cacheSize *int
	logLevel  *string
	logDir    *string
	diskCache *time.Duration

	lat  *float64
	lon  *float64
	alt  *float64
	when *string
}

func registerCommonFlags(fs *flag.FlagSet) *commonFlags {
	return &commonFlags{
		root:      fs.String("root", "", "dataset catalog root directory (required)"),
		cacheSize: fs.Int("cache-size", 0, "aligned-corner cache size (0 selects wind.DefaultCacheSize)"),
		logLevel:  fs.String("log-level", "info", "log level: debug, info, warn, error"),
		logDir:    fs.String("log-dir", "", "directory for rotating log files (empty discards logs)"),
		diskCache: fs.Duration("dataset-cache-ttl", 0, "reuse a cached directory listing younger than this (0 disables)"),

		lat:  fs.Float64("lat", 0, "launch latitude, degrees"),
		lon:  fs.Float64("lon", 0, "launch longitude, degrees"),
		alt:  fs.Float64("alt", 0, "launch altitude, meters"),
		when: fs.String("time", "", "launch time, RFC3339 (default: now)"),
	}
}

func (c *commonFlags) catalog() (*wind.Catalog, *applog.Logger, error) {
	if *c.root == "" {
		return nil, nil, fmt.Errorf("-root is required")
	}

	var log *applog.Logger
	if *c.logDir != "" {
		log = applog.New(*c.logLevel, *c.logDir, "")
	}
	cat := wind.NewCatalog(*c.root, *c.cacheSize, log)
	if *c.diskCache > 0 {
		cat.EnableDirectoryCache(*c.diskCache)
	}
	return cat, log, nil
}

func (c *commonFlags) launch() (geo.Point, error) {
	t := time.Now().UTC()
	if *c.when != "" {
		parsed, err := time.Parse(time.RFC3339, *c.when)
		if err != nil {
			return geo.Point{}, fmt.Errorf("-time %q: %w", *c.when, err)
		}
		t = parsed.UTC()
	}
	return geo.Point{
		Lat:  float32(*c.lat),
		Lon:  float32(*c.lon),
		Alt:  float32(*c.alt),
		Time: t,
	}, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
