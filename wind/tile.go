package wind

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/kmarshland/hab-predictor/herr"
)

// recordBytes is the on-disk size of one tile record: four big-endian f32
// (lat, lon, u, v) plus one big-endian f32 (temperature).
const recordBytes = 20

// tileRecord is one decoded row of a .gribp tile: a (lat, lon) sample at the
// pressure level encoded by the tile's containing directory.
type tileRecord struct {
	Lat, Lon float32
	U, V     float32
	Temp     float32
}

// tilePath returns the on-disk path for the tile containing corner c,
// relative to dataset root: <root>/L<level>/C<latCell>_<lonCell>.gribp.
func tilePath(root string, c AlignedCorner) string {
	latCell := floorToMultiple(c.Lat, 25)
	lonCell := floorToMultiple(c.Lon, 25)
	return filepath.Join(root, fmt.Sprintf("L%d", c.Level), fmt.Sprintf("C%d_%d.gribp", latCell, lonCell))
}

func floorToMultiple(v float32, step int32) int32 {
	return int32(math.Floor(float64(v)/float64(step))) * step
}

func readF32BE(b []byte) float32 {
	return math.Float32frombits(binary.BigEndian.Uint32(b))
}

// decodeTile reads every record from a tile file, invoking visit for each
// one. A clean EOF between records ends decoding successfully; a short read
// mid-record is ErrCorrupt.
func decodeTile(path string, visit func(tileRecord)) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", path, herr.ErrNotFound)
		}
		return fmt.Errorf("%s: %w", path, herr.ErrIo)
	}
	defer f.Close()

	buf := make([]byte, recordBytes)
	for {
		n, err := io.ReadFull(f, buf)
		if err == io.EOF {
			return nil
		}
		if err == io.ErrUnexpectedEOF {
			return fmt.Errorf("%s: short record (%d of %d bytes): %w", path, n, recordBytes, herr.ErrCorrupt)
		}
		if err != nil {
			return fmt.Errorf("%s: %v: %w", path, err, herr.ErrIo)
		}

		visit(tileRecord{
			Lat:  readF32BE(buf[0:4]),
			Lon:  readF32BE(buf[4:8]),
			U:    readF32BE(buf[8:12]),
			V:    readF32BE(buf[12:16]),
			Temp: readF32BE(buf[16:20]),
		})
	}
}
