// Package solar computes low-precision sun positions: the subsolar point and the
// topocentric azimuth/altitude seen by an observer.
package solar

import (
	"math"
	"time"

	"github.com/yanqian/sunside/internal/domain/geo"
)

const (
	rad = math.Pi / 180

	msPerDay = 86400000.0
	// Days between the Unix epoch and J2000.0 (2000-01-01T12:00Z).
	j2000Offset = 10957.5

	// Mean obliquity of the ecliptic at J2000.0.
	earthObliquity = 23.4397 * rad
	// Longitude of Earth's perihelion.
	perihelion = 102.9372 * rad
)

// Position is the horizon-based direction to the sun in degrees. Azimuth is a compass
// bearing (clockwise from north); negative altitude is below the horizon.
type Position struct {
	Azimuth  float64 `json:"azimuth"`
	Altitude float64 `json:"altitude"`
}

// IsDaylight reports whether the sun is above the horizon.
func (p Position) IsDaylight() bool {
	return p.Altitude > 0
}

// IsBelowHorizon reports whether the sun has set. Altitude exactly 0 is neither.
func (p Position) IsBelowHorizon() bool {
	return p.Altitude < 0
}

// SubsolarPoint returns the point on earth directly beneath the sun at t. The ecliptic
// is taken to coincide with the equator (zero obliquity), so the latitude stays at 0.
func SubsolarPoint(t time.Time) geo.Coordinate {
	d := daysSinceJ2000(t)
	ra, dec := equatorial(eclipticLongitude(d), 0)
	gst := siderealTime(d, 0)

	return geo.Coordinate{
		Lat: dec / rad,
		Lon: wrapLongitude((ra - gst) / rad),
	}
}

// SunPosition returns the sun's azimuth and altitude for an observer at c and instant t.
func SunPosition(t time.Time, c geo.Coordinate) Position {
	d := daysSinceJ2000(t)
	ra, dec := equatorial(eclipticLongitude(d), earthObliquity)

	lw := -c.Lon * rad
	phi := c.Lat * rad
	h := siderealTime(d, lw) - ra

	altitude := math.Asin(math.Sin(phi)*math.Sin(dec) + math.Cos(phi)*math.Cos(dec)*math.Cos(h))
	// atan2 measures from south towards west; rotate by 180 to a north-based bearing.
	azimuth := math.Atan2(math.Sin(h), math.Cos(h)*math.Sin(phi)-math.Tan(dec)*math.Cos(phi)) + math.Pi

	return Position{
		Azimuth:  geo.NormalizeDegrees(azimuth / rad),
		Altitude: altitude / rad,
	}
}

func daysSinceJ2000(t time.Time) float64 {
	return float64(t.UnixMilli())/msPerDay - j2000Offset
}

func solarMeanAnomaly(d float64) float64 {
	return rad * (357.5291 + 0.98560028*d)
}

func eclipticLongitude(d float64) float64 {
	m := solarMeanAnomaly(d)
	center := rad * (1.9148*math.Sin(m) + 0.02*math.Sin(2*m) + 0.0003*math.Sin(3*m))
	return m + center + perihelion + math.Pi
}

// equatorial converts an ecliptic longitude (latitude 0) to right ascension and
// declination for the given obliquity.
func equatorial(l, obliquity float64) (ra, dec float64) {
	ra = math.Atan2(math.Sin(l)*math.Cos(obliquity), math.Cos(l))
	dec = math.Asin(math.Sin(obliquity) * math.Sin(l))
	return ra, dec
}

func siderealTime(d, lw float64) float64 {
	return rad*(280.16+360.9856235*d) - lw
}

// wrapLongitude maps degrees into [-180, 180).
func wrapLongitude(deg float64) float64 {
	return geo.NormalizeDegrees(deg+180) - 180
}
