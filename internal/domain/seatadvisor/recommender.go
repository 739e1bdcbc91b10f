package seatadvisor

import (
	"fmt"
	"strings"

	"github.com/yanqian/sunside/internal/domain/geo"
	"github.com/yanqian/sunside/internal/domain/solar"
)

type regime int

const (
	regimeSunrise regime = iota
	regimeSunset
	regimeDaytime
	regimeNight
)

func inSunriseWindow(hour int) bool { return hour >= 6 && hour <= 10 }
func inSunsetWindow(hour int) bool  { return hour >= 16 && hour <= 20 }

// classify picks the lighting regime at the path midpoint. The hour windows win over
// altitude.
func classify(localHour int, sun solar.Position) regime {
	switch {
	case inSunriseWindow(localHour):
		return regimeSunrise
	case inSunsetWindow(localHour):
		return regimeSunset
	case sun.IsDaylight():
		return regimeDaytime
	default:
		return regimeNight
	}
}

// sunSide returns the side whose windows face the sun. 180 degrees counts as right.
func sunSide(sunAzimuth, flightBearing float64) Side {
	if geo.NormalizeDegrees(sunAzimuth-flightBearing) > 180 {
		return LeftSide
	}
	return RightSide
}

// recommend returns the verdict and reason for one flight.
// Daytime reuses the sun-facing side formula even though its reason talks about glare.
func recommend(localHour int, sun solar.Position, flightBearing float64) (Side, string) {
	side := sunSide(sun.Azimuth, flightBearing)
	switch classify(localHour, sun) {
	case regimeSunrise:
		return side, fmt.Sprintf("Sit on the %s to face the sun and enjoy a beautiful view of the sunrise.", label(side))
	case regimeSunset:
		return side, fmt.Sprintf("Sit on the %s to face the sun and enjoy a beautiful view of the sunset.", label(side))
	case regimeDaytime:
		return side, fmt.Sprintf("The sun is high during the flight; the %s keeps glare out of your eyes for a clear view of the landscape below.", label(side))
	default:
		return EitherSide, "This is a night flight, so neither side has an advantage; either side offers the same view of the night sky."
	}
}

func label(s Side) string {
	return strings.ToLower(string(s))
}
