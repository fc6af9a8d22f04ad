package repository

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/tripsheet-backend-go/internal/database"
	"github.com/jengzang/tripsheet-backend-go/internal/models"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))
	return db
}

func TestGeoCacheRoundTrip(t *testing.T) {
	repo := NewGeoCacheRepository(newTestDB(t))

	miss, err := repo.Get("東京鐵塔")
	require.NoError(t, err)
	assert.Nil(t, miss, "a miss is nil, not an error")

	want := &models.GeoResult{
		Name:        "東京鐵塔",
		Lat:         35.6586,
		Lon:         139.7454,
		DisplayName: "Tokyo Tower, Minato, Tokyo",
	}
	require.NoError(t, repo.Put(want))

	got, err := repo.Get("東京鐵塔")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGeoCachePutReplaces(t *testing.T) {
	repo := NewGeoCacheRepository(newTestDB(t))

	require.NoError(t, repo.Put(&models.GeoResult{Name: "新宿", Lat: 1, Lon: 2}))
	require.NoError(t, repo.Put(&models.GeoResult{Name: "新宿", Lat: 35.6896, Lon: 139.7006, DisplayName: "Shinjuku"}))

	got, err := repo.Get("新宿")
	require.NoError(t, err)
	assert.InDelta(t, 35.6896, got.Lat, 1e-6)
	assert.Equal(t, "Shinjuku", got.DisplayName)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSettingsRepository(t *testing.T) {
	repo := NewSettingsRepository(newTestDB(t))

	val, err := repo.Get(SettingSheetURL)
	require.NoError(t, err)
	assert.Empty(t, val)

	updatedAt, err := repo.UpdatedAt(SettingSheetURL)
	require.NoError(t, err)
	assert.True(t, updatedAt.IsZero())

	require.NoError(t, repo.Set(SettingSheetURL, "https://example.com/a"))
	require.NoError(t, repo.Set(SettingSheetURL, "https://example.com/b"))

	val, err = repo.Get(SettingSheetURL)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/b", val)

	updatedAt, err = repo.UpdatedAt(SettingSheetURL)
	require.NoError(t, err)
	assert.False(t, updatedAt.IsZero())
}
