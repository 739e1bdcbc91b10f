package seatadvisor

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/yanqian/sunside/internal/domain/catalog"
	"github.com/yanqian/sunside/internal/domain/geo"
	"github.com/yanqian/sunside/internal/domain/solar"
	apperrors "github.com/yanqian/sunside/pkg/errors"
	"github.com/yanqian/sunside/pkg/util"
)

const clockLayout = "03:04 PM"

const (
	// maxFlightMinutes caps requested and estimated durations at one week.
	maxFlightMinutes = 7 * 24 * 60
	// maxDepartureTimestamp is 9999-12-31T23:59:59.999Z in epoch milliseconds.
	maxDepartureTimestamp int64 = 253402300799999
)

// Service exposes the seat recommendation pipeline and its reference data.
type Service interface {
	Recommend(ctx context.Context, req Request) (Response, error)
	Airports(ctx context.Context, query string) []catalog.Airport
	Landmarks(ctx context.Context) []catalog.Landmark
}

type service struct {
	cfg     Config
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewService wires up the seat advisor domain.
func NewService(cfg Config, cat *catalog.Catalog, logger *slog.Logger) Service {
	return &service{
		cfg:     cfg.withDefaults(),
		catalog: cat,
		logger:  logger.With("component", "seatadvisor.service"),
	}
}

func (s *service) Recommend(_ context.Context, req Request) (Response, error) {
	departure, arrival, err := s.resolveAirports(req)
	if err != nil {
		return Response{}, err
	}
	if req.DepartureTimestamp <= 0 || req.DepartureTimestamp > maxDepartureTimestamp {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, "departureTimestamp must be a positive epoch in milliseconds no later than year 9999", nil)
	}
	if req.FlightDurationMinutes < 0 {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, "flightDurationMinutes cannot be negative", nil)
	}
	if req.FlightDurationMinutes > maxFlightMinutes {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("flightDurationMinutes cannot exceed %d", maxFlightMinutes), nil)
	}

	distance := geo.DistanceKm(departure.Coordinates, arrival.Coordinates)
	minutes := req.FlightDurationMinutes
	if minutes == 0 {
		minutes = s.estimateMinutes(distance)
	}
	departAt := util.FromEpochMillis(req.DepartureTimestamp)
	duration := time.Duration(minutes) * time.Minute

	path := geo.BuildPath(departure.Coordinates, arrival.Coordinates, departAt, duration)
	mid := geo.Midpoint(path)
	sun := solar.SunPosition(mid.Instant(), mid.Coordinate())
	bearing := geo.BearingDegrees(departure.Coordinates, arrival.Coordinates)
	localHour := mid.Instant().In(s.cfg.Location).Hour()

	side, reason := recommend(localHour, sun, bearing)
	landmarks := visibleLandmarks(s.catalog.Landmarks(), path, bearing, sun, localHour, s.cfg.CorridorKm)

	res := Response{
		Recommendation:   side,
		Reason:           reason,
		FlightPath:       path,
		SunPosition:      sun,
		FlightDuration:   minutes,
		DepartureTime:    departAt.In(s.cfg.Location).Format(clockLayout),
		ArrivalTime:      departAt.Add(duration).In(s.cfg.Location).Format(clockLayout),
		DepartureAirport: departure,
		ArrivalAirport:   arrival,
		VisibleLandmarks: landmarks,
		DistanceKm:       distance,
		FlightBearing:    bearing,
		SunTrack:         sunTrack(path),
	}
	if !finite(res) {
		return Response{}, apperrors.Wrap(apperrors.CodeInternal, "recommendation produced non-finite values", nil)
	}

	s.logger.Info("seat recommendation computed",
		"departure", departure.IATA,
		"arrival", arrival.IATA,
		"duration_min", minutes,
		"recommendation", side,
		"sun_altitude", sun.Altitude,
		"landmarks", len(landmarks),
	)
	return res, nil
}

func (s *service) Airports(_ context.Context, query string) []catalog.Airport {
	return s.catalog.SearchAirports(query)
}

func (s *service) Landmarks(_ context.Context) []catalog.Landmark {
	return s.catalog.Landmarks()
}

// resolveAirports checks both legs before any computation happens.
func (s *service) resolveAirports(req Request) (catalog.Airport, catalog.Airport, error) {
	departure, depOK := s.catalog.LookupAirport(req.DepartureIATA)
	arrival, arrOK := s.catalog.LookupAirport(req.ArrivalIATA)

	var unknown []string
	if !depOK {
		unknown = append(unknown, fmt.Sprintf("%q", strings.TrimSpace(req.DepartureIATA)))
	}
	if !arrOK {
		unknown = append(unknown, fmt.Sprintf("%q", strings.TrimSpace(req.ArrivalIATA)))
	}
	if len(unknown) > 0 {
		return catalog.Airport{}, catalog.Airport{}, apperrors.Wrap(apperrors.CodeInvalidInput, "invalid airport codes: "+strings.Join(unknown, ", "), nil)
	}
	return departure, arrival, nil
}

func (s *service) estimateMinutes(distanceKm float64) int {
	minutes := int(math.Round(distanceKm / s.cfg.CruiseSpeedKmh * 60))
	if minutes < 1 {
		minutes = 1
	}
	if minutes > maxFlightMinutes {
		minutes = maxFlightMinutes
	}
	return minutes
}

func sunTrack(path []geo.PathPoint) []SunTrackPoint {
	first, last := path[0].Time, path[len(path)-1].Time
	moments := []struct {
		label string
		at    int64
	}{
		{"Departure", first},
		{"Mid-flight", first + (last-first)/2},
		{"Arrival", last},
	}
	out := make([]SunTrackPoint, 0, len(moments))
	for _, m := range moments {
		p := solar.SubsolarPoint(util.FromEpochMillis(m.at))
		out = append(out, SunTrackPoint{Lat: p.Lat, Lon: p.Lon, Time: m.at, Label: m.label})
	}
	return out
}

func finite(res Response) bool {
	values := []float64{res.SunPosition.Azimuth, res.SunPosition.Altitude, res.DistanceKm, res.FlightBearing}
	for _, p := range res.FlightPath {
		values = append(values, p.Lat, p.Lon)
	}
	for _, p := range res.SunTrack {
		values = append(values, p.Lat, p.Lon)
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
