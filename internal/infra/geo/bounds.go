package geo

import (
	"math/rand"
	"strings"
)

// Bounds is a lat/lng bounding box.
type Bounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

func (b Bounds) Contains(lat, lng float64) bool {
	return lat >= b.South && lat <= b.North && lng >= b.West && lng <= b.East
}

// Point is a coordinate pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// StPetersburgBounds is the fixed box used to validate geocoding
// results against the target city.
var StPetersburgBounds = Bounds{North: 60.1, South: 59.7, East: 30.8, West: 29.5}

// StPetersburgCenter is the default map center.
var StPetersburgCenter = Point{Lat: 59.9311, Lng: 30.3609}

// WithinStPetersburg reports whether coordinates fall inside the city
// bounding box.
func WithinStPetersburg(lat, lng float64) bool {
	return StPetersburgBounds.Contains(lat, lng)
}

// RandomStPetersburgPoint returns coordinates somewhere inside the
// city box, used for demo placement.
func RandomStPetersburgPoint() Point {
	latRange := StPetersburgBounds.North - StPetersburgBounds.South
	lngRange := StPetersburgBounds.East - StPetersburgBounds.West
	return Point{
		Lat: StPetersburgBounds.South + rand.Float64()*latRange,
		Lng: StPetersburgBounds.West + rand.Float64()*lngRange,
	}
}

// cityMarkers are the spellings the geocoder accepts as "already names
// the city". IsStPetersburgAddress additionally recognizes the
// surrounding oblast; the lookup itself does not.
var cityMarkers = []string{"санкт-петербург", "спб", "питер", "st petersburg"}

func hasCityMarker(address string) bool {
	lower := strings.ToLower(address)
	for _, marker := range cityMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// IsStPetersburgAddress reports whether the address text appears to be
// in St. Petersburg or its oblast.
func IsStPetersburgAddress(address string) bool {
	return hasCityMarker(address) ||
		strings.Contains(strings.ToLower(address), "ленинградская область")
}

// FormatStPetersburgAddress suffixes the city and country unless the
// address already names them.
func FormatStPetersburgAddress(address string) string {
	trimmed := strings.TrimSpace(address)
	if IsStPetersburgAddress(trimmed) {
		return trimmed
	}
	return trimmed + ", Санкт-Петербург, Россия"
}
