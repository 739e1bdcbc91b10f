package seatadvisor

import (
	"math"

	"github.com/yanqian/sunside/internal/domain/catalog"
	"github.com/yanqian/sunside/internal/domain/geo"
	"github.com/yanqian/sunside/internal/domain/solar"
)

// visibleLandmarks keeps landmarks within corridorKm of the path that the lighting at
// the midpoint allows, in table order, and assigns each a side.
func visibleLandmarks(landmarks []catalog.Landmark, path []geo.PathPoint, flightBearing float64, sun solar.Position, localHour int, corridorKm float64) []VisibleLandmark {
	out := make([]VisibleLandmark, 0)
	if len(path) == 0 {
		return out
	}
	mid := geo.Midpoint(path).Coordinate()
	for _, lm := range landmarks {
		if !visibleInLight(lm.Type, sun, localHour) {
			continue
		}
		if !withinCorridor(distanceToPath(lm.Coordinates, path), corridorKm) {
			continue
		}
		out = append(out, VisibleLandmark{
			Name: lm.Name,
			Type: lm.Type,
			Side: landmarkSide(mid, lm.Coordinates, flightBearing),
		})
	}
	return out
}

// distanceToPath is the smallest segment distance. Zero-length segments are skipped;
// a path made only of them falls back to the distance from its first point.
func distanceToPath(point geo.Coordinate, path []geo.PathPoint) float64 {
	best := math.Inf(1)
	for i := 1; i < len(path); i++ {
		start, end := path[i-1].Coordinate(), path[i].Coordinate()
		if geo.DistanceKm(start, end) == 0 {
			continue
		}
		if d := geo.PerpendicularDistanceKm(point, start, end); d < best {
			best = d
		}
	}
	if math.IsInf(best, 1) {
		return geo.DistanceKm(point, path[0].Coordinate())
	}
	return best
}

func withinCorridor(distanceKm, corridorKm float64) bool {
	return distanceKm <= corridorKm
}

// visibleInLight: illuminated types at night, everything by day or in the
// sunrise/sunset windows, nothing otherwise.
func visibleInLight(t catalog.LandmarkType, sun solar.Position, localHour int) bool {
	switch {
	case sun.IsBelowHorizon() && t.Illuminated():
		return true
	case sun.IsDaylight(), inSunriseWindow(localHour), inSunsetWindow(localHour):
		return true
	default:
		return false
	}
}

// landmarkSide: relative bearings in [1, 179] are right, everything else (including
// 0 and 180) is left.
func landmarkSide(mid, landmark geo.Coordinate, flightBearing float64) LandmarkSide {
	rel := geo.NormalizeDegrees(geo.BearingDegrees(mid, landmark) - flightBearing)
	if rel >= 1 && rel <= 179 {
		return Right
	}
	return Left
}
