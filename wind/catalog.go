// Package wind implements the forecast catalog and interpolated wind field:
// alignment of a point to the grid, the compact binary tile decoder, and the
// mutex-guarded, LRU-cached Catalog that serves wind and full atmospheric
// state at arbitrary points.
package wind

import (
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/kmarshland/hab-predictor/geo"
	"github.com/kmarshland/hab-predictor/herr"
	"github.com/kmarshland/hab-predictor/internal/applog"
	"github.com/kmarshland/hab-predictor/internal/diskcache"
)

// DefaultCacheSize is the default bounded size of the catalog's aligned-
// corner cache.
const DefaultCacheSize = 3_000_000

// Catalog is the process-wide forecast catalog: an ordered set of Datasets
// sharing one LRU Atmospheroid cache, all guarded by a single mutex. Wind
// and atmospheroid lookups hold the lock for the full 8-corner interpolation,
// including any tile reads and cache inserts that interpolation triggers.
type Catalog struct {
	root         string
	log          *applog.Logger
	diskCacheTTL time.Duration

	mu       sync.Mutex
	loaded   bool
	datasets []Dataset
	cache    *lru.Cache[uint32, geo.Atmospheroid]
}

// NewCatalog constructs a Catalog rooted at dir. Directory scanning is
// deferred until first use. cacheSize <= 0 selects DefaultCacheSize.
func NewCatalog(dir string, cacheSize int, log *applog.Logger) *Catalog {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[uint32, geo.Atmospheroid](cacheSize)
	if err != nil {
		// Only returns an error for a non-positive size, which we've just
		// guarded against.
		panic(err)
	}
	return &Catalog{root: dir, log: log, cache: cache}
}

var (
	sharedMu sync.Mutex
	shared   *Catalog
)

// Shared returns the process-wide Catalog, constructing it on first call
// with the given root, DefaultCacheSize, and logger. Later calls return the
// same instance regardless of their arguments; hosts that need multiple
// roots (tests especially) should construct Catalogs with NewCatalog
// directly.
func Shared(dir string, log *applog.Logger) *Catalog {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared == nil {
		shared = NewCatalog(dir, 0, log)
	}
	return shared
}

// EnableDirectoryCache turns on the optional on-disk directory-listing
// cache (internal/diskcache): a parsed dataset list younger than ttl is
// reused instead of rescanning c.root. This never changes
// ListDatasets/selectDataset's documented behavior, only how the listing
// is produced on a cold process start against an unchanged root.
func (c *Catalog) EnableDirectoryCache(ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diskCacheTTL = ttl
}

// datasetListing is the on-disk shape of a cached directory scan: enough
// to reconstruct every Dataset without re-parsing directory names.
type datasetListing struct {
	Root     string
	Datasets []Dataset
}

func (c *Catalog) cacheKey() string {
	h := fnv.New64a()
	h.Write([]byte(c.root))
	return fmt.Sprintf("datasets-%016x.cache", h.Sum64())
}

func (c *Catalog) ensureLoaded() error {
	if c.loaded {
		return nil
	}

	if c.diskCacheTTL > 0 {
		var listing datasetListing
		modTime, err := diskcache.Retrieve(c.cacheKey(), &listing)
		if err == nil && listing.Root == c.root && time.Since(modTime) < c.diskCacheTTL && len(listing.Datasets) > 0 {
			c.datasets = listing.Datasets
			c.loaded = true
			return nil
		}
	}

	entries, err := os.ReadDir(c.root)
	if err != nil {
		return fmt.Errorf("reading dataset root %s: %v: %w", c.root, err, herr.ErrIo)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	id := 0
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		ds, err := parseDataset(filepath.Join(c.root, e.Name()), e.Name(), id)
		if err != nil {
			c.log.Debugf("skipping non-conforming dataset directory %q: %v", e.Name(), err)
			continue
		}
		c.datasets = append(c.datasets, ds)
		id++
	}

	if len(c.datasets) == 0 {
		return herr.ErrNoDatasets
	}

	if c.diskCacheTTL > 0 {
		if err := diskcache.Store(c.cacheKey(), datasetListing{Root: c.root, Datasets: c.datasets}); err != nil {
			c.log.Debugf("storing dataset directory cache: %v", err)
		}
	}

	c.loaded = true
	return nil
}

// ListDatasets returns the catalog's dataset names in insertion (scan) order.
func (c *Catalog) ListDatasets() ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return nil, err
	}
	names := make([]string, len(c.datasets))
	for i, d := range c.datasets {
		names[i] = d.Name
	}
	return names, nil
}

// selectDataset returns the dataset whose valid time is nearest t, breaking
// ties by lowest id. Caller must hold c.mu.
func (c *Catalog) selectDataset(t time.Time) (Dataset, error) {
	if err := c.ensureLoaded(); err != nil {
		return Dataset{}, err
	}

	best := c.datasets[0]
	bestDiff := absDuration(t.Sub(best.ValidTime))
	for _, d := range c.datasets[1:] {
		diff := absDuration(t.Sub(d.ValidTime))
		if diff < bestDiff || (diff == bestDiff && d.ID < best.ID) {
			best = d
			bestDiff = diff
		}
	}
	return best, nil
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// AtmospheroidAt returns the trilinearly interpolated Atmospheroid at p,
// selecting the dataset nearest p.Time.
func (c *Catalog) AtmospheroidAt(p geo.Point) (geo.Atmospheroid, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ds, err := c.selectDataset(p.Time)
	if err != nil {
		return geo.Atmospheroid{}, err
	}

	alignment := AlignPoint(p)
	var sum geo.Atmospheroid
	for i, corner := range alignment.Corners {
		a, err := ds.atmospheroidAtAligned(corner, c.cache)
		if err != nil {
			return geo.Atmospheroid{}, fmt.Errorf("dataset %s: %w", ds.Name, err)
		}
		sum = sum.Add(a.Scale(alignment.Weight(i)))
	}
	return sum, nil
}

// WindAt returns the interpolated wind velocity at p. It is a thin
// convenience over AtmospheroidAt for callers that don't need temperature.
func (c *Catalog) WindAt(p geo.Point) (geo.Velocity, error) {
	a, err := c.AtmospheroidAt(p)
	if err != nil {
		return geo.Velocity{}, err
	}
	return a.Velocity, nil
}
