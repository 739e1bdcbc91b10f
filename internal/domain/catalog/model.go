package catalog

import "github.com/yanqian/sunside/internal/domain/geo"

// Airport is a reference airport looked up by IATA code.
type Airport struct {
	IATA        string         `json:"iata"`
	Name        string         `json:"name"`
	City        string         `json:"city"`
	Coordinates geo.Coordinate `json:"coordinates"`
}

// LandmarkType is the fixed category set of points of interest.
type LandmarkType string

const (
	Mountain      LandmarkType = "Mountain"
	City          LandmarkType = "City"
	Monument      LandmarkType = "Monument"
	NaturalWonder LandmarkType = "Natural Wonder"
	Island        LandmarkType = "Island"
	Architecture  LandmarkType = "Architecture"
)

// Valid reports whether t is one of the known categories.
func (t LandmarkType) Valid() bool {
	switch t {
	case Mountain, City, Monument, NaturalWonder, Island, Architecture:
		return true
	}
	return false
}

// Illuminated reports whether landmarks of this type stay visible after dark.
func (t LandmarkType) Illuminated() bool {
	return t == City || t == Architecture || t == Monument
}

// Landmark is a point of interest that may be seen from the cabin.
type Landmark struct {
	Name        string         `json:"name"`
	Type        LandmarkType   `json:"type"`
	Coordinates geo.Coordinate `json:"coordinates"`
	AltitudeM   float64        `json:"altitude"`
}
