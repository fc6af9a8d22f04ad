// Package annotate pulls inline map-location markers and URLs out of the
// free-text fields of a finalized event, and produces the cleaned display
// text with those annotations removed.
package annotate

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/jengzang/tripsheet-backend-go/internal/models"
)

// MapMarker is the reserved glyph that prefixes an inline place name
const MapMarker = "🗺️"

var (
	markerRe = regexp.MustCompile(MapMarker + `\s*`)
	urlRe    = regexp.MustCompile(`https?://\S+`)
)

// MapLocations returns every place name flagged with the map marker, in
// source order. A name runs from just after the marker to the next newline
// or the next marker, trimmed; empty names are dropped.
func MapLocations(text string) []string {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, MapMarker)

	var locations []string
	for _, part := range parts[1:] {
		name := part
		if i := strings.IndexByte(name, '\n'); i >= 0 {
			name = name[:i]
		}
		name = strings.TrimSpace(name)
		if name != "" {
			locations = append(locations, name)
		}
	}
	return locations
}

// URLs returns every http(s) link in the text, in source order. A link is a
// maximal run of non-whitespace characters.
func URLs(text string) []string {
	return urlRe.FindAllString(text, -1)
}

// StripMapMarkers removes every marker glyph (and trailing spaces) while
// keeping the place names in the display text. Extraction on the result
// yields nothing.
func StripMapMarkers(text string) string {
	return markerRe.ReplaceAllString(text, "")
}

// StripURLs removes every http(s) link from the text
func StripURLs(text string) string {
	return urlRe.ReplaceAllString(text, "")
}

// EventAnnotations is the full annotation set of one event plus its cleaned
// display fields.
type EventAnnotations struct {
	EventID      string   `json:"event_id"`
	MapLocations []string `json:"map_locations,omitempty"`
	URLs         []string `json:"urls,omitempty"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Location     string   `json:"location,omitempty"`
}

// ForEvent collects annotations across title, description and location, in
// that field order, and cleans each field for display.
func ForEvent(ev models.ParsedEvent) EventAnnotations {
	out := EventAnnotations{
		EventID:     ev.ID,
		Title:       StripMapMarkers(ev.Title),
		Description: StripMapMarkers(ev.Description),
		Location:    StripMapMarkers(ev.Location),
	}
	for _, field := range []string{ev.Title, ev.Description, ev.Location} {
		out.MapLocations = append(out.MapLocations, MapLocations(field)...)
		out.URLs = append(out.URLs, URLs(field)...)
	}
	return out
}

// MapsSearchURL builds the Google Maps search link for a place name
func MapsSearchURL(name string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(name)
}
