package seatadvisor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/sunside/internal/domain/solar"
)

func TestRecommend(t *testing.T) {
	cases := []struct {
		name     string
		hour     int
		sun      solar.Position
		bearing  float64
		want     Side
		contains string
	}{
		{"sunrise faces the sun", 8, solar.Position{Azimuth: 200, Altitude: 5}, 0, LeftSide, "sunrise"},
		{"sunset faces the sun", 18, solar.Position{Azimuth: 250, Altitude: 3}, 180, RightSide, "sunset"},
		{"daytime glare", 13, solar.Position{Azimuth: 100, Altitude: 40}, 90, RightSide, "glare"},
		{"daytime left", 12, solar.Position{Azimuth: 10, Altitude: 55}, 90, LeftSide, "glare"},
		{"night", 2, solar.Position{Azimuth: 350, Altitude: -30}, 10, EitherSide, "night flight"},
		{"night other geometry", 23, solar.Position{Azimuth: 45, Altitude: -5}, 300, EitherSide, "night flight"},
		{"horizon outside windows", 13, solar.Position{Azimuth: 45, Altitude: 0}, 300, EitherSide, "night flight"},
		{"window wins over darkness", 6, solar.Position{Azimuth: 60, Altitude: -4}, 0, RightSide, "sunrise"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			side, reason := recommend(tc.hour, tc.sun, tc.bearing)
			require.Equal(t, tc.want, side)
			require.Contains(t, reason, tc.contains)
		})
	}
}

func TestRecommendWindowBoundaries(t *testing.T) {
	sun := solar.Position{Azimuth: 90, Altitude: 20}
	for hour, want := range map[int]regime{
		5: regimeDaytime, 6: regimeSunrise, 10: regimeSunrise, 11: regimeDaytime,
		15: regimeDaytime, 16: regimeSunset, 20: regimeSunset, 21: regimeDaytime,
	} {
		require.Equal(t, want, classify(hour, sun), "hour %d", hour)
	}
}

func TestSunSideTieBreak(t *testing.T) {
	require.Equal(t, RightSide, sunSide(180, 0))
	require.Equal(t, LeftSide, sunSide(180.5, 0))
	require.Equal(t, RightSide, sunSide(0, 0))
	// Wraps through north.
	require.Equal(t, LeftSide, sunSide(10, 40))
	require.Equal(t, RightSide, sunSide(350, 300))
}
