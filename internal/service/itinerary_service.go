package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/jengzang/tripsheet-backend-go/internal/annotate"
	"github.com/jengzang/tripsheet-backend-go/internal/models"
	"github.com/jengzang/tripsheet-backend-go/internal/repository"
	"github.com/jengzang/tripsheet-backend-go/internal/sheet"
)

// Sentinel errors surfaced to the handler layer
var (
	ErrNoSheetURL      = errors.New("no sheet url configured")
	ErrInvalidSheetURL = errors.New("invalid sheet url")
)

// SheetFetcher retrieves the raw CSV export of a sheet
type SheetFetcher interface {
	Fetch(ctx context.Context, exportURL string) (io.ReadCloser, error)
}

// HTTPSheetFetcher fetches the export endpoint over HTTP
type HTTPSheetFetcher struct {
	client *http.Client
}

// NewHTTPSheetFetcher creates a fetcher with a request timeout
func NewHTTPSheetFetcher() *HTTPSheetFetcher {
	return &HTTPSheetFetcher{client: &http.Client{Timeout: 15 * time.Second}}
}

// Fetch downloads the CSV export. The caller owns the returned body.
func (f *HTTPSheetFetcher) Fetch(ctx context.Context, exportURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, exportURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build sheet request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sheet: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch sheet: status %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// ItineraryService loads the configured sheet, runs the matrix
// transformation and caches the result in memory until a refresh is
// requested or the settings change.
type ItineraryService struct {
	fetcher  SheetFetcher
	settings *repository.SettingsRepository

	mu     sync.RWMutex
	cached *models.ParseResult
}

// NewItineraryService creates a new itinerary service
func NewItineraryService(fetcher SheetFetcher, settings *repository.SettingsRepository) *ItineraryService {
	return &ItineraryService{fetcher: fetcher, settings: settings}
}

// Load returns the cached parse result, refreshing from the sheet when
// refresh is set or nothing is cached yet.
func (s *ItineraryService) Load(ctx context.Context, refresh bool) (*models.ParseResult, error) {
	if !refresh {
		s.mu.RLock()
		cached := s.cached
		s.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}
	}
	return s.Refresh(ctx)
}

// Refresh fetches the configured sheet and re-parses it
func (s *ItineraryService) Refresh(ctx context.Context) (*models.ParseResult, error) {
	rawURL, err := s.settings.Get(repository.SettingSheetURL)
	if err != nil {
		return nil, err
	}
	if rawURL == "" {
		return nil, ErrNoSheetURL
	}

	exportURL, ok := sheet.ResolveExportURL(rawURL)
	if !ok {
		return nil, ErrInvalidSheetURL
	}

	body, err := s.fetcher.Fetch(ctx, exportURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	matrix, err := sheet.DecodeCSV(body)
	if err != nil {
		return nil, err
	}

	result := sheet.ParseMatrix(matrix)

	// A stored title overrides the synthesized "<start> - <end> Trip" one.
	if title, err := s.settings.Get(repository.SettingTripTitle); err == nil && title != "" {
		result.Metadata.Title = title
	}

	s.mu.Lock()
	s.cached = &result
	s.mu.Unlock()
	return &result, nil
}

// Invalidate drops the cached parse result, forcing the next Load to fetch
func (s *ItineraryService) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

// DayAnnotations is the annotation set of every event of one day
type DayAnnotations struct {
	Date   string                      `json:"date"`
	Events []annotate.EventAnnotations `json:"events"`
}

// Annotations builds the per-event annotation sets for the whole itinerary
func Annotations(result *models.ParseResult) []DayAnnotations {
	days := make([]DayAnnotations, 0, len(result.Itinerary))
	for _, day := range result.Itinerary {
		d := DayAnnotations{Date: day.Date, Events: make([]annotate.EventAnnotations, 0, len(day.Events))}
		for _, ev := range day.Events {
			d.Events = append(d.Events, annotate.ForEvent(ev))
		}
		days = append(days, d)
	}
	return days
}
