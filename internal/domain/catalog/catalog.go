// Package catalog holds the compiled-in airport and landmark reference tables.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/jszwec/csvutil"

	"github.com/yanqian/sunside/internal/domain/geo"
)

var (
	//go:embed data/airports.csv
	airportsCSV []byte
	//go:embed data/landmarks.csv
	landmarksCSV []byte
)

// Catalog is an immutable keyed view over the reference tables.
type Catalog struct {
	airports  []Airport
	byIATA    map[string]int
	landmarks []Landmark
}

// New builds a catalog from explicit tables. Later duplicates of an IATA code are ignored.
func New(airports []Airport, landmarks []Landmark) *Catalog {
	c := &Catalog{
		airports:  append([]Airport(nil), airports...),
		byIATA:    make(map[string]int, len(airports)),
		landmarks: append([]Landmark(nil), landmarks...),
	}
	for i, a := range c.airports {
		code := normalizeCode(a.IATA)
		if _, dup := c.byIATA[code]; dup {
			continue
		}
		c.byIATA[code] = i
	}
	return c
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	airports, err := parseAirports(airportsCSV)
	if err != nil {
		panic(err)
	}
	landmarks, err := parseLandmarks(landmarksCSV)
	if err != nil {
		panic(err)
	}
	return New(airports, landmarks)
})

// Default returns the embedded reference catalog.
func Default() *Catalog {
	return defaultCatalog()
}

// LookupAirport finds an airport by IATA code, ignoring case and surrounding space.
func (c *Catalog) LookupAirport(code string) (Airport, bool) {
	i, ok := c.byIATA[normalizeCode(code)]
	if !ok {
		return Airport{}, false
	}
	return c.airports[i], true
}

// SearchAirports returns airports whose code, name or city contains q, in table order.
func (c *Catalog) SearchAirports(q string) []Airport {
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]Airport, 0, len(c.airports))
	for _, a := range c.airports {
		if q == "" ||
			strings.Contains(strings.ToLower(a.IATA), q) ||
			strings.Contains(strings.ToLower(a.Name), q) ||
			strings.Contains(strings.ToLower(a.City), q) {
			out = append(out, a)
		}
	}
	return out
}

// Landmarks returns a copy of the landmark table.
func (c *Catalog) Landmarks() []Landmark {
	return append([]Landmark(nil), c.landmarks...)
}

type airportRow struct {
	IATA string  `csv:"iata"`
	Name string  `csv:"name"`
	City string  `csv:"city"`
	Lat  float64 `csv:"lat"`
	Lon  float64 `csv:"lon"`
}

type landmarkRow struct {
	Name string       `csv:"name"`
	Type LandmarkType `csv:"type"`
	Lat  float64      `csv:"lat"`
	Lon  float64      `csv:"lon"`
	Alt  float64      `csv:"alt"`
}

func parseAirports(data []byte) ([]Airport, error) {
	var rows []airportRow
	if err := csvutil.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode airports: %w", err)
	}
	out := make([]Airport, 0, len(rows))
	for _, r := range rows {
		coord := geo.Coordinate{Lat: r.Lat, Lon: r.Lon}
		if len(r.IATA) != 3 || !coord.IsValid() {
			return nil, fmt.Errorf("invalid airport row %q", r.IATA)
		}
		out = append(out, Airport{IATA: normalizeCode(r.IATA), Name: r.Name, City: r.City, Coordinates: coord})
	}
	return out, nil
}

func parseLandmarks(data []byte) ([]Landmark, error) {
	var rows []landmarkRow
	if err := csvutil.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode landmarks: %w", err)
	}
	out := make([]Landmark, 0, len(rows))
	for _, r := range rows {
		coord := geo.Coordinate{Lat: r.Lat, Lon: r.Lon}
		if !r.Type.Valid() || !coord.IsValid() {
			return nil, fmt.Errorf("invalid landmark row %q", r.Name)
		}
		out = append(out, Landmark{Name: r.Name, Type: r.Type, Coordinates: coord, AltitudeM: r.Alt})
	}
	return out, nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
