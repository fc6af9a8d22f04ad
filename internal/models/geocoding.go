package models

// GeoResult is one resolved geocoding lookup. Name is the cleaned location
// name used as the cache key.
type GeoResult struct {
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DisplayName string  `json:"display_name"`
}

// GeocodedEvent pairs a parsed event with its resolved coordinates
type GeocodedEvent struct {
	Event       ParsedEvent `json:"event"`
	Coordinates GeoResult   `json:"coordinates"`
}
