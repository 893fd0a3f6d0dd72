// Package diskcache implements a small msgpack+flate object store under the
// user cache directory. The catalog uses it to persist its parsed dataset
// listing so repeated process starts against an unchanged root directory
// skip the directory scan.
package diskcache

import (
	"compress/flate"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// appDir is the subdirectory of os.UserCacheDir that this module's cache
// entries live under.
const appDir = "hab-predictor"

func fullPath(path string) (string, error) {
	cd, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cd, appDir, path), nil
}

// Store flate-compresses and msgpack-encodes obj to the cache entry at
// path (relative to the app's cache directory), creating parent
// directories as needed.
func Store(path string, obj any) error {
	full, err := fullPath(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return err
	}

	f, err := os.Create(full)
	if err != nil {
		return err
	}
	defer f.Close()

	fw, err := flate.NewWriter(f, flate.BestSpeed)
	if err != nil {
		return err
	}

	if err := msgpack.NewEncoder(fw).Encode(obj); err != nil {
		return err
	}
	return fw.Close()
}

// Retrieve decodes the cache entry at path into obj, returning its
// modification time. A missing entry returns a non-nil error the caller is
// expected to treat as a cache miss (fall back to the expensive path).
func Retrieve(path string, obj any) (time.Time, error) {
	full, err := fullPath(path)
	if err != nil {
		return time.Time{}, err
	}

	f, err := os.Open(full)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return time.Time{}, err
	}

	fr := flate.NewReader(f)
	defer fr.Close()

	return fi.ModTime(), msgpack.NewDecoder(fr).Decode(obj)
}
