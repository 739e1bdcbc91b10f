package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yanqian/sunside/internal/domain/seatadvisor"
)

var (
	colorSun   = lipgloss.Color("#FFB347")
	colorMuted = lipgloss.Color("#6C757D")
	colorTitle = lipgloss.Color("#00BFFF")
)

type styles struct {
	title   lipgloss.Style
	verdict lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	box     lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(colorTitle),
		verdict: r.NewStyle().Bold(true).Foreground(colorSun),
		label:   r.NewStyle().Width(12).Foreground(colorMuted),
		muted:   r.NewStyle().Foreground(colorMuted),
		box:     r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorTitle).Padding(0, 1),
	}
}

func render(w io.Writer, res seatadvisor.Response) string {
	st := newStyles(w)
	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, st.label.Render(label), value)
	}

	sections := []string{
		st.title.Render(fmt.Sprintf("%s (%s) -> %s (%s)",
			res.DepartureAirport.IATA, res.DepartureAirport.City,
			res.ArrivalAirport.IATA, res.ArrivalAirport.City)),
		"",
		st.verdict.Render(string(res.Recommendation)),
		res.Reason,
		"",
		row("Departs", res.DepartureTime),
		row("Arrives", res.ArrivalTime),
		row("Duration", fmt.Sprintf("%d min", res.FlightDuration)),
		row("Distance", fmt.Sprintf("%.0f km", res.DistanceKm)),
		row("Bearing", fmt.Sprintf("%.1f°", res.FlightBearing)),
		row("Sun", fmt.Sprintf("az %.1f° alt %.1f°", res.SunPosition.Azimuth, res.SunPosition.Altitude)),
		"",
		row("Left", landmarkList(res.VisibleLandmarks, seatadvisor.Left, st)),
		row("Right", landmarkList(res.VisibleLandmarks, seatadvisor.Right, st)),
	}
	return st.box.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func landmarkList(items []seatadvisor.VisibleLandmark, side seatadvisor.LandmarkSide, st styles) string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		if item.Side == side {
			names = append(names, item.Name)
		}
	}
	if len(names) == 0 {
		return st.muted.Render("none")
	}
	return strings.Join(names, ", ")
}
