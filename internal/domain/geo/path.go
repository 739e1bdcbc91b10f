package geo

import "time"

// PathIntervals is the number of equal arc fractions a flight path is split into.
const PathIntervals = 8

// PathPoint is one time-stamped waypoint. Time is epoch milliseconds.
type PathPoint struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Time int64   `json:"time"`
}

// Coordinate drops the timestamp.
func (p PathPoint) Coordinate() Coordinate {
	return Coordinate{Lat: p.Lat, Lon: p.Lon}
}

// Instant returns the timestamp as a UTC time.
func (p PathPoint) Instant() time.Time {
	return time.UnixMilli(p.Time).UTC()
}

// BuildPath samples PathIntervals+1 points along the great circle from departure to
// arrival. Time advances linearly with arc fraction; the first point carries
// departure and the last departure+duration.
func BuildPath(departure, arrival Coordinate, departAt time.Time, duration time.Duration) []PathPoint {
	start := departAt.UnixMilli()
	durationMs := duration.Milliseconds()

	points := make([]PathPoint, 0, PathIntervals+1)
	for i := 0; i <= PathIntervals; i++ {
		fraction := float64(i) / PathIntervals
		c := InterpolateGreatCircle(departure, arrival, fraction)
		offset := int64(fraction * float64(durationMs))
		if i == PathIntervals {
			offset = durationMs
		}
		points = append(points, PathPoint{Lat: c.Lat, Lon: c.Lon, Time: start + offset})
	}
	return points
}

// Midpoint returns the middle sample of a path.
func Midpoint(path []PathPoint) PathPoint {
	return path[len(path)/2]
}
