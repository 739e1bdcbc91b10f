// Command sunside prints which window seat gets the better view for a flight.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/yanqian/sunside/internal/domain/catalog"
	"github.com/yanqian/sunside/internal/domain/seatadvisor"
	apperrors "github.com/yanqian/sunside/pkg/errors"
	"github.com/yanqian/sunside/pkg/logger"
	"github.com/yanqian/sunside/pkg/util"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sunside", flag.ContinueOnError)
	fs.SetOutput(stderr)
	from := fs.String("from", "", "departure airport IATA code")
	to := fs.String("to", "", "arrival airport IATA code")
	depart := fs.String("depart", "", "departure time in RFC3339 (default now)")
	duration := fs.Int("duration", 0, "flight duration in minutes (0 estimates from distance)")
	tz := fs.String("tz", "Local", "IANA timezone for clock times and hour of day")
	corridor := fs.Float64("corridor", 50, "landmark corridor half-width in km")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	req, loc, err := buildRequest(*from, *to, *depart, *duration, *tz)
	if err != nil {
		fmt.Fprintf(stderr, "sunside: %v\n", err)
		return exitUsage
	}

	svc := seatadvisor.NewService(seatadvisor.Config{
		Location:   loc,
		CorridorKm: *corridor,
	}, catalog.Default(), logger.NewWithWriter(stderr, "warn"))

	resp, err := svc.Recommend(context.Background(), req)
	if err != nil {
		fmt.Fprintf(stderr, "sunside: %s\n", apperrors.MessageOf(err))
		if apperrors.IsCode(err, apperrors.CodeInvalidInput) {
			return exitUsage
		}
		return exitFailure
	}

	fmt.Fprintln(stdout, render(stdout, resp))
	return exitOK
}

func buildRequest(from, to, depart string, duration int, tz string) (seatadvisor.Request, *time.Location, error) {
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return seatadvisor.Request{}, nil, errors.New("-from and -to are required")
	}
	loc := time.Local
	if name := strings.TrimSpace(tz); name != "" && !strings.EqualFold(name, "local") {
		parsed, err := time.LoadLocation(name)
		if err != nil {
			return seatadvisor.Request{}, nil, fmt.Errorf("unknown timezone %q", tz)
		}
		loc = parsed
	}
	departAt := util.NowUTC()
	if strings.TrimSpace(depart) != "" {
		parsed, err := time.Parse(time.RFC3339, depart)
		if err != nil {
			return seatadvisor.Request{}, nil, fmt.Errorf("invalid -depart %q: want RFC3339", depart)
		}
		departAt = parsed
	}
	return seatadvisor.Request{
		DepartureIATA:         from,
		ArrivalIATA:           to,
		DepartureTimestamp:    util.EpochMillis(departAt),
		FlightDurationMinutes: duration,
	}, loc, nil
}
