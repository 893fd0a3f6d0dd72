// Package geo implements the point/velocity geometry that underlies wind
// lookup, integration, and navigation: geodetic position update, great-circle
// distance, and antimeridian wrap.
package geo

import (
	"math"
	"time"
)

// EarthRadiusMeters is the mean earth radius used for all geodetic math.
const EarthRadiusMeters = 6_371_000.0

// DefaultStep is the integration step used throughout the core when a
// caller does not override it.
const DefaultStep = 60 * time.Second

// Point is an immutable balloon (or wind-sample) state: latitude and
// longitude in degrees, altitude in meters, and a UTC timestamp. Longitude
// is always normalized to [-180, 180). Arithmetic on a Point never mutates
// it; every operation returns a new value.
type Point struct {
	Lat  float32 // degrees
	Lon  float32 // degrees, in [-180, 180)
	Alt  float32 // meters
	Time time.Time
}

// Velocity is a north/east/vertical vector in meters per second. It is used
// both for sampled wind and for the additive ascent/descent control term.
type Velocity struct {
	North    float32
	East     float32
	Vertical float32
}

// Add returns the componentwise sum of two velocities.
func (v Velocity) Add(o Velocity) Velocity {
	return Velocity{North: v.North + o.North, East: v.East + o.East, Vertical: v.Vertical + o.Vertical}
}

// Scale returns v scaled by s.
func (v Velocity) Scale(s float32) Velocity {
	return Velocity{North: v.North * s, East: v.East * s, Vertical: v.Vertical * s}
}

// Wrap circularly clamps a longitude in degrees to [-180, 180).
func Wrap(lon float32) float32 {
	l := math.Mod(float64(lon)+180, 360)
	if l < 0 {
		l += 360
	}
	return float32(l - 180)
}

// AddVelocity advances p by velocity v over step dt, applying the geodetic
// position update: north/east components move along the local tangent
// plane (with the east component corrected for the shrinking longitude
// circle at latitude), vertical moves altitude linearly, and time advances
// by exactly dt.
func (p Point) AddVelocity(v Velocity, dt time.Duration) Point {
	dtSeconds := float32(dt.Seconds())
	const degPerRad = 180 / math.Pi

	dLat := (v.North * dtSeconds / EarthRadiusMeters) * degPerRad
	newLat := p.Lat + dLat

	cosLat := math.Cos(float64(p.Lat) * math.Pi / 180)
	// Guard the pole singularity the way a well-behaved grid lookup must:
	// clamp the divisor away from zero rather than producing +-Inf.
	if cosLat < 1e-6 && cosLat > -1e-6 {
		if cosLat >= 0 {
			cosLat = 1e-6
		} else {
			cosLat = -1e-6
		}
	}
	dLon := (v.East * dtSeconds / EarthRadiusMeters) * degPerRad / float32(cosLat)
	newLon := Wrap(p.Lon + dLon)

	return Point{
		Lat:  newLat,
		Lon:  newLon,
		Alt:  p.Alt + v.Vertical*dtSeconds,
		Time: p.Time.Add(dt),
	}
}

// HaversineDistance returns the great-circle distance between two points in
// meters, using EarthRadiusMeters.
func HaversineDistance(a, b Point) float32 {
	lat1 := float64(a.Lat) * math.Pi / 180
	lat2 := float64(b.Lat) * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (float64(b.Lon) - float64(a.Lon)) * math.Pi / 180

	sinDLat := math.Sin(dLat / 2)
	sinDLon := math.Sin(dLon / 2)
	h := sinDLat*sinDLat + math.Cos(lat1)*math.Cos(lat2)*sinDLon*sinDLon
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return float32(EarthRadiusMeters * c)
}

// Atmospheroid is the interpolable atmospheric state at a point: wind
// velocity and temperature. It supports componentwise add and scalar
// multiply so that it can be trilinearly interpolated across aligned
// corners.
type Atmospheroid struct {
	Velocity    Velocity
	Temperature float32 // degrees Celsius
}

// Add returns the componentwise sum of two Atmospheroids.
func (a Atmospheroid) Add(o Atmospheroid) Atmospheroid {
	return Atmospheroid{Velocity: a.Velocity.Add(o.Velocity), Temperature: a.Temperature + o.Temperature}
}

// Scale returns a scaled by s.
func (a Atmospheroid) Scale(s float32) Atmospheroid {
	return Atmospheroid{Velocity: a.Velocity.Scale(s), Temperature: a.Temperature * s}
}
