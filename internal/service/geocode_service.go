package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang/geo/s2"

	"github.com/jengzang/tripsheet-backend-go/internal/models"
	"github.com/jengzang/tripsheet-backend-go/internal/spatial"
)

// GeoCache is the persistent lookup cache port
type GeoCache interface {
	Get(name string) (*models.GeoResult, error)
	Put(result *models.GeoResult) error
}

// Pacer serializes upstream requests. Wait blocks until the next request
// slot opens or the context is cancelled.
type Pacer interface {
	Wait(ctx context.Context) error
}

// intervalPacer hands out request slots at least interval apart, in arrival
// order
type intervalPacer struct {
	mu       sync.Mutex
	next     time.Time
	interval time.Duration
}

// NewIntervalPacer creates a pacer spacing requests by interval
func NewIntervalPacer(interval time.Duration) Pacer {
	return &intervalPacer{interval: interval}
}

func (p *intervalPacer) Wait(ctx context.Context) error {
	p.mu.Lock()
	now := time.Now()
	slot := p.next
	if slot.Before(now) {
		slot = now
	}
	p.next = slot.Add(p.interval)
	p.mu.Unlock()

	wait := time.Until(slot)
	if wait <= 0 {
		return nil
	}
	select {
	case <-time.After(wait):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// leadingMarkersRe strips marker glyphs and whitespace off the front of a
// location name before it is used as a query or cache key
var leadingMarkersRe = regexp.MustCompile(`^[🗺️📍\s]+`)

// CleanLocationName removes leading marker glyphs and surrounding whitespace
func CleanLocationName(name string) string {
	return strings.TrimSpace(leadingMarkersRe.ReplaceAllString(name, ""))
}

// nominatimResult mirrors the fields we use from the Nominatim search
// response; lat/lon arrive as strings
type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// GeocodingService resolves location names through Nominatim, consulting a
// persistent cache first and pacing upstream requests through a serialized
// queue.
type GeocodingService struct {
	cache   GeoCache
	pacer   Pacer
	client  *http.Client
	baseURL string
}

// NewGeocodingService creates a new geocoding service
func NewGeocodingService(cache GeoCache, pacer Pacer, baseURL string) *GeocodingService {
	return &GeocodingService{
		cache:   cache,
		pacer:   pacer,
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
	}
}

// Lookup resolves one location name. The cache is checked before a request
// is queued; a name Nominatim does not know yields (nil, nil) and is not
// cached.
func (s *GeocodingService) Lookup(ctx context.Context, name string) (*models.GeoResult, error) {
	clean := CleanLocationName(name)
	if clean == "" {
		return nil, nil
	}

	hit, err := s.cache.Get(clean)
	if err != nil {
		return nil, err
	}
	if hit != nil {
		return hit, nil
	}

	if err := s.pacer.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", clean)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocoding request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding request failed: status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude in geocoding response: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude in geocoding response: %w", err)
	}

	result := &models.GeoResult{
		Name:        clean,
		Lat:         lat,
		Lon:         lon,
		DisplayName: results[0].DisplayName,
	}
	if err := s.cache.Put(result); err != nil {
		log.Printf("Failed to cache geocoding result for %q: %v", clean, err)
	}
	return result, nil
}

// BatchGeocodeResult is the outcome of geocoding an event list
type BatchGeocodeResult struct {
	Events        []models.GeocodedEvent `json:"events"`
	RouteLengthKm float64                `json:"route_length_km"`
}

// BatchGeocode resolves every event carrying a location, in event order.
// Events whose location cannot be resolved are skipped. The route length is
// the great-circle distance along the resolved points.
func (s *GeocodingService) BatchGeocode(ctx context.Context, events []models.ParsedEvent) (*BatchGeocodeResult, error) {
	out := &BatchGeocodeResult{Events: []models.GeocodedEvent{}}

	var points []s2.LatLng
	for _, ev := range events {
		if ev.Location == "" {
			continue
		}
		coords, err := s.Lookup(ctx, ev.Location)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			log.Printf("Failed to geocode %q: %v", ev.Location, err)
			continue
		}
		if coords == nil {
			continue
		}
		out.Events = append(out.Events, models.GeocodedEvent{Event: ev, Coordinates: *coords})
		points = append(points, s2.LatLngFromDegrees(coords.Lat, coords.Lon))
	}

	out.RouteLengthKm = spatial.RouteLengthMeters(points) / 1000
	return out, nil
}
