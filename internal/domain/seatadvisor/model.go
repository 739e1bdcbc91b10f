package seatadvisor

import (
	"time"

	"github.com/yanqian/sunside/internal/domain/catalog"
	"github.com/yanqian/sunside/internal/domain/geo"
	"github.com/yanqian/sunside/internal/domain/solar"
)

// Request captures the payload accepted by the seat advisor.
type Request struct {
	DepartureIATA         string `json:"departureIata"`
	ArrivalIATA           string `json:"arrivalIata"`
	DepartureTimestamp    int64  `json:"departureTimestamp"`
	FlightDurationMinutes int    `json:"flightDurationMinutes"`
}

// Side is the cabin-side verdict.
type Side string

const (
	LeftSide   Side = "Left Side"
	RightSide  Side = "Right Side"
	EitherSide Side = "Either Side"
)

// LandmarkSide tells which windows a landmark passes.
type LandmarkSide string

const (
	Left  LandmarkSide = "Left"
	Right LandmarkSide = "Right"
)

// VisibleLandmark is a landmark inside the viewing corridor.
type VisibleLandmark struct {
	Name string               `json:"name"`
	Type catalog.LandmarkType `json:"type"`
	Side LandmarkSide         `json:"side"`
}

// SunTrackPoint is the subsolar point at a labelled moment of the flight.
type SunTrackPoint struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Time  int64   `json:"time"`
	Label string  `json:"label"`
}

// Response is serialized back to API consumers.
type Response struct {
	Recommendation   Side              `json:"recommendation"`
	Reason           string            `json:"reason"`
	FlightPath       []geo.PathPoint   `json:"flightPath"`
	SunPosition      solar.Position    `json:"sunPosition"`
	FlightDuration   int               `json:"flightDuration"`
	DepartureTime    string            `json:"departureTime"`
	ArrivalTime      string            `json:"arrivalTime"`
	DepartureAirport catalog.Airport   `json:"departureAirport"`
	ArrivalAirport   catalog.Airport   `json:"arrivalAirport"`
	VisibleLandmarks []VisibleLandmark `json:"visibleLandmarks"`
	DistanceKm       float64           `json:"distanceKm"`
	FlightBearing    float64           `json:"flightBearing"`
	SunTrack         []SunTrackPoint   `json:"sunTrack"`
}

// Config wires runtime knobs for the advisor domain.
type Config struct {
	// Location renders clock strings and decides the midpoint hour of day.
	Location       *time.Location
	CorridorKm     float64
	CruiseSpeedKmh float64
}

const (
	defaultCorridorKm     = 50
	defaultCruiseSpeedKmh = 850
)

func (c Config) withDefaults() Config {
	if c.Location == nil {
		c.Location = time.Local
	}
	if c.CorridorKm <= 0 {
		c.CorridorKm = defaultCorridorKm
	}
	if c.CruiseSpeedKmh <= 0 {
		c.CruiseSpeedKmh = defaultCruiseSpeedKmh
	}
	return c
}
