package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/sunside/internal/domain/geo"
)

func TestDefaultTablesLoad(t *testing.T) {
	c := Default()
	require.Len(t, c.SearchAirports(""), 20)
	require.Len(t, c.Landmarks(), 25)
}

func TestLookupAirport(t *testing.T) {
	c := Default()

	jfk, ok := c.LookupAirport(" jfk ")
	require.True(t, ok)
	require.Equal(t, "JFK", jfk.IATA)
	require.Equal(t, "New York", jfk.City)
	require.Equal(t, geo.Coordinate{Lat: 40.6413, Lon: -73.7781}, jfk.Coordinates)

	_, ok = c.LookupAirport("ZZZ")
	require.False(t, ok)
}

func TestSearchAirports(t *testing.T) {
	c := Default()

	byCity := c.SearchAirports("london")
	require.Len(t, byCity, 1)
	require.Equal(t, "LHR", byCity[0].IATA)

	byName := c.SearchAirports("INTERNATIONAL")
	require.NotEmpty(t, byName)
	require.Equal(t, "DEL", byName[0].IATA)

	require.Empty(t, c.SearchAirports("atlantis"))
}

func TestLandmarksReturnsCopy(t *testing.T) {
	c := Default()
	first := c.Landmarks()
	first[0].Name = "mutated"
	require.Equal(t, "Mount Fuji", c.Landmarks()[0].Name)
}

func TestLandmarkTypes(t *testing.T) {
	for _, lm := range Default().Landmarks() {
		require.True(t, lm.Type.Valid(), lm.Name)
	}
	require.True(t, City.Illuminated())
	require.True(t, Architecture.Illuminated())
	require.True(t, Monument.Illuminated())
	require.False(t, Mountain.Illuminated())
	require.False(t, NaturalWonder.Illuminated())
	require.False(t, Island.Illuminated())
	require.False(t, LandmarkType("Volcano").Valid())
}

func TestParseLandmarksRejectsUnknownType(t *testing.T) {
	_, err := parseLandmarks([]byte("name,type,lat,lon,alt\nEtna,Volcano,37.75,14.99,3357\n"))
	require.Error(t, err)
}

func TestNewIgnoresDuplicateCodes(t *testing.T) {
	c := New([]Airport{{IATA: "AAA", Name: "first"}, {IATA: "aaa", Name: "second"}}, nil)
	a, ok := c.LookupAirport("AAA")
	require.True(t, ok)
	require.Equal(t, "first", a.Name)
}
