// Package geo implements spherical-earth geodesy and the sampled great-circle flight
// path used by the seat advisor.
package geo

import "math"

// EarthRadiusKm is the mean radius of the spherical earth model.
const EarthRadiusKm = 6371.0

// Coordinate is a point in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// IsValid reports whether the coordinate lies in the documented ranges.
func (c Coordinate) IsValid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// DistanceKm returns the haversine great-circle distance between a and b.
func DistanceKm(a, b Coordinate) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

// BearingDegrees returns the initial bearing from a to b in [0, 360).
func BearingDegrees(a, b Coordinate) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	return NormalizeDegrees(toDegrees(math.Atan2(y, x)))
}

// InterpolateGreatCircle returns the point at fraction f of the arc from a to b.
// Coincident and antipodal endpoints have no unique arc; a is returned for them.
func InterpolateGreatCircle(a, b Coordinate, f float64) Coordinate {
	switch f {
	case 0:
		return a
	case 1:
		return b
	}
	delta := DistanceKm(a, b) / EarthRadiusKm
	sinDelta := math.Sin(delta)
	if math.Abs(sinDelta) < 1e-12 {
		return a
	}
	wa := math.Sin((1-f)*delta) / sinDelta
	wb := math.Sin(f*delta) / sinDelta

	ax, ay, az := unitVector(a)
	bx, by, bz := unitVector(b)
	x := wa*ax + wb*bx
	y := wa*ay + wb*by
	z := wa*az + wb*bz

	return Coordinate{
		Lat: toDegrees(math.Atan2(z, math.Sqrt(x*x+y*y))),
		Lon: toDegrees(math.Atan2(y, x)),
	}
}

// PerpendicularDistanceKm returns the height of the triangle (point, start, end) over
// the base start-end, from Heron's formula on great-circle side lengths. Callers must
// not pass a zero-length segment; the height is undefined there and NaN is returned.
func PerpendicularDistanceKm(point, start, end Coordinate) float64 {
	base := DistanceKm(start, end)
	if base == 0 {
		return math.NaN()
	}
	a := DistanceKm(start, point)
	b := DistanceKm(end, point)
	s := (a + b + base) / 2
	// Rounding can push a degenerate (collinear) triangle slightly negative.
	area := math.Sqrt(math.Max(0, s*(s-a)*(s-b)*(s-base)))
	return 2 * area / base
}

// NormalizeDegrees maps any angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

func unitVector(c Coordinate) (x, y, z float64) {
	lat := toRadians(c.Lat)
	lon := toRadians(c.Lon)
	return math.Cos(lat) * math.Cos(lon), math.Cos(lat) * math.Sin(lon), math.Sin(lat)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
