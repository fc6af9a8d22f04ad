package service

import (
	"context"
	"database/sql"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/tripsheet-backend-go/internal/database"
	"github.com/jengzang/tripsheet-backend-go/internal/repository"
)

const editURL = "https://docs.google.com/spreadsheets/d/ABC123/edit#gid=0"

// stubFetcher serves a fixed CSV body and counts fetches
type stubFetcher struct {
	csv     string
	fetches int
	lastURL string
}

func (f *stubFetcher) Fetch(_ context.Context, exportURL string) (io.ReadCloser, error) {
	f.fetches++
	f.lastURL = exportURL
	return io.NopCloser(strings.NewReader(f.csv)), nil
}

func newTestSettingsRepo(t *testing.T) *repository.SettingsRepository {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))
	return repository.NewSettingsRepository(db)
}

func TestRefreshParsesConfiguredSheet(t *testing.T) {
	repo := newTestSettingsRepo(t)
	require.NoError(t, repo.Set(repository.SettingSheetURL, editURL))

	fetcher := &stubFetcher{csv: "時間,12/28 (日),12/29 (一)\n" +
		"8:00,逛街,\n" +
		"9:00,逛街,早餐\n" +
		"11:00,吃飯,\n"}
	svc := NewItineraryService(fetcher, repo)

	result, err := svc.Load(context.Background(), false)
	require.NoError(t, err)

	// The stored edit URL is resolved to the export endpoint before fetching.
	assert.Equal(t,
		"https://docs.google.com/spreadsheets/d/ABC123/export?format=csv&gid=0",
		fetcher.lastURL)

	require.Len(t, result.Itinerary, 2)
	require.Len(t, result.Itinerary[0].Events, 2)
	assert.Equal(t, "8:00 - 9:00", result.Itinerary[0].Events[0].DisplayTime)
	assert.Equal(t, "12/28 - 12/29 Trip", result.Metadata.Title)
}

func TestLoadUsesCacheUntilRefresh(t *testing.T) {
	repo := newTestSettingsRepo(t)
	require.NoError(t, repo.Set(repository.SettingSheetURL, editURL))

	fetcher := &stubFetcher{csv: "時間,12/28 (日)\n8:00,抵達\n"}
	svc := NewItineraryService(fetcher, repo)

	_, err := svc.Load(context.Background(), false)
	require.NoError(t, err)
	_, err = svc.Load(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.fetches)

	_, err = svc.Load(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.fetches)

	svc.Invalidate()
	_, err = svc.Load(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 3, fetcher.fetches)
}

func TestRefreshWithoutSheetURL(t *testing.T) {
	svc := NewItineraryService(&stubFetcher{}, newTestSettingsRepo(t))

	_, err := svc.Load(context.Background(), false)
	assert.ErrorIs(t, err, ErrNoSheetURL)
}

func TestRefreshWithInvalidSheetURL(t *testing.T) {
	repo := newTestSettingsRepo(t)
	require.NoError(t, repo.Set(repository.SettingSheetURL, "not a sheet url"))

	fetcher := &stubFetcher{}
	svc := NewItineraryService(fetcher, repo)

	_, err := svc.Load(context.Background(), false)
	assert.ErrorIs(t, err, ErrInvalidSheetURL)
	assert.Zero(t, fetcher.fetches, "invalid url must gate the fetch")
}

func TestRefreshAppliesTitleOverride(t *testing.T) {
	repo := newTestSettingsRepo(t)
	require.NoError(t, repo.Set(repository.SettingSheetURL, editURL))
	require.NoError(t, repo.Set(repository.SettingTripTitle, "東京過年之旅"))

	fetcher := &stubFetcher{csv: "時間,12/28 (日)\n8:00,抵達\n"}
	svc := NewItineraryService(fetcher, repo)

	result, err := svc.Load(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "東京過年之旅", result.Metadata.Title)
	assert.Equal(t, "12/28", result.Metadata.StartDate)
}

func TestAnnotationsCollectsPerDay(t *testing.T) {
	repo := newTestSettingsRepo(t)
	require.NoError(t, repo.Set(repository.SettingSheetURL, editURL))

	fetcher := &stubFetcher{csv: "時間,12/28 (日)\n" +
		"8:00,\"🗺️淺草寺 參拜\n詳見 https://example.com/plan\"\n"}
	svc := NewItineraryService(fetcher, repo)

	result, err := svc.Load(context.Background(), false)
	require.NoError(t, err)

	days := Annotations(result)
	require.Len(t, days, 1)
	require.Len(t, days[0].Events, 1)
	assert.Equal(t, []string{"淺草寺 參拜"}, days[0].Events[0].MapLocations)
	assert.Equal(t, []string{"https://example.com/plan"}, days[0].Events[0].URLs)
}
