package service

import (
	"github.com/jengzang/tripsheet-backend-go/internal/models"
	"github.com/jengzang/tripsheet-backend-go/internal/repository"
	"github.com/jengzang/tripsheet-backend-go/internal/sheet"
)

// SettingsService validates and persists the sheet configuration and keeps
// the itinerary cache coherent with it.
type SettingsService struct {
	repo      *repository.SettingsRepository
	itinerary *ItineraryService
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo *repository.SettingsRepository, itinerary *ItineraryService) *SettingsService {
	return &SettingsService{repo: repo, itinerary: itinerary}
}

// Get returns the current settings
func (s *SettingsService) Get() (*models.Settings, error) {
	sheetURL, err := s.repo.Get(repository.SettingSheetURL)
	if err != nil {
		return nil, err
	}
	title, err := s.repo.Get(repository.SettingTripTitle)
	if err != nil {
		return nil, err
	}
	updatedAt, err := s.repo.UpdatedAt(repository.SettingSheetURL)
	if err != nil {
		return nil, err
	}
	return &models.Settings{SheetURL: sheetURL, TripTitle: title, UpdatedAt: updatedAt}, nil
}

// Update validates the sheet URL, stores it in export form together with the
// title override, and invalidates the cached itinerary. An unextractable
// sheet id yields ErrInvalidSheetURL before anything is written.
func (s *SettingsService) Update(sheetURL, tripTitle string) (*models.Settings, error) {
	exportURL, ok := sheet.ResolveExportURL(sheetURL)
	if !ok {
		return nil, ErrInvalidSheetURL
	}

	if err := s.repo.Set(repository.SettingSheetURL, exportURL); err != nil {
		return nil, err
	}
	if err := s.repo.Set(repository.SettingTripTitle, tripTitle); err != nil {
		return nil, err
	}

	s.itinerary.Invalidate()
	return s.Get()
}

// Seed stores an initial sheet URL when none is configured yet. Used at
// startup for the SHEET_URL environment variable.
func (s *SettingsService) Seed(sheetURL string) error {
	if sheetURL == "" {
		return nil
	}
	current, err := s.repo.Get(repository.SettingSheetURL)
	if err != nil {
		return err
	}
	if current != "" {
		return nil
	}
	_, err = s.Update(sheetURL, "")
	return err
}
