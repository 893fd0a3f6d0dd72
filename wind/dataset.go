package wind

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/kmarshland/hab-predictor/geo"
	"github.com/kmarshland/hab-predictor/herr"
)

// Dataset is one forecast: a valid-time, an on-disk root, and the integer id
// it was assigned when the owning Catalog scanned its parent directory.
// Datasets are immutable once constructed.
type Dataset struct {
	Name      string
	CreatedAt time.Time
	ValidTime time.Time
	Root      string
	ID        int
}

var forecastHours = map[string]bool{"0000": true, "0600": true, "1200": true, "1800": true}

// parseDataset parses a dataset directory name of the form
// gfs_4_YYYYMMDD_HHMM_FFF. Non-conforming names return an error and the
// caller silently skips the entry.
func parseDataset(root, name string, id int) (Dataset, error) {
	parts := strings.Split(name, "_")
	if len(parts) != 5 {
		return Dataset{}, fmt.Errorf("%s: %w", name, herr.ErrInvalidParams)
	}
	if parts[0] != "gfs" || parts[1] != "4" {
		return Dataset{}, fmt.Errorf("%s: %w", name, herr.ErrInvalidParams)
	}
	dateStr, hourStr, offsetStr := parts[2], parts[3], parts[4]

	if len(dateStr) != 8 {
		return Dataset{}, fmt.Errorf("%s: bad date %q: %w", name, dateStr, herr.ErrInvalidParams)
	}
	if !forecastHours[hourStr] {
		return Dataset{}, fmt.Errorf("%s: bad forecast hour %q: %w", name, hourStr, herr.ErrInvalidParams)
	}
	offset, err := strconv.Atoi(offsetStr)
	if err != nil {
		return Dataset{}, fmt.Errorf("%s: bad hour offset %q: %w", name, offsetStr, herr.ErrInvalidParams)
	}

	createdAt, err := time.Parse("20060102 1504", dateStr+" "+hourStr)
	if err != nil {
		return Dataset{}, fmt.Errorf("%s: %w", name, herr.ErrInvalidParams)
	}
	createdAt = createdAt.UTC()

	return Dataset{
		Name:      name,
		CreatedAt: createdAt,
		ValidTime: createdAt.Add(time.Duration(offset) * time.Hour),
		Root:      root,
		ID:        id,
	}, nil
}

// atmospheroidAtAligned returns the Atmospheroid at aligned corner c,
// consulting and populating cache as it scans the backing tile. cache must
// already be held exclusively by the caller (the Catalog's mutex).
func (d Dataset) atmospheroidAtAligned(c AlignedCorner, cache *lru.Cache[uint32, geo.Atmospheroid]) (geo.Atmospheroid, error) {
	key := CacheKey(c, d.ID)
	if v, ok := cache.Get(key); ok {
		return v, nil
	}

	path := tilePath(d.Root, c)
	var found geo.Atmospheroid
	var foundOK bool

	err := decodeTile(path, func(r tileRecord) {
		recCorner := AlignedCorner{Lat: r.Lat, Lon: r.Lon, Level: c.Level}
		a := geo.Atmospheroid{
			Velocity: geo.Velocity{East: r.U, North: -r.V, Vertical: 0},
			Temperature: r.Temp,
		}
		cache.Add(CacheKey(recCorner, d.ID), a)

		if r.Lat == c.Lat && r.Lon == c.Lon {
			found = a
			foundOK = true
		}
	})
	if err != nil {
		return geo.Atmospheroid{}, err
	}
	if !foundOK {
		return geo.Atmospheroid{}, fmt.Errorf("corner (%v, %v, %d hPa) in %s: %w", c.Lat, c.Lon, c.Level, path, herr.ErrNotFound)
	}
	return found, nil
}
