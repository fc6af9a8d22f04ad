package repository

import (
	"database/sql"
	"fmt"

	"github.com/jengzang/tripsheet-backend-go/internal/models"
)

// GeoCacheRepository persists geocoding results in sqlite, keyed by the
// cleaned location name. Only successful lookups are stored; misses are
// retried on the next request.
type GeoCacheRepository struct {
	db *sql.DB
}

// NewGeoCacheRepository creates a new geocode cache repository
func NewGeoCacheRepository(db *sql.DB) *GeoCacheRepository {
	return &GeoCacheRepository{db: db}
}

// Get returns the cached result for a cleaned location name, or nil on a
// cache miss.
func (r *GeoCacheRepository) Get(name string) (*models.GeoResult, error) {
	query := `SELECT name, lat, lon, display_name FROM geo_cache WHERE name = ?`

	result := &models.GeoResult{}
	err := r.db.QueryRow(query, name).Scan(
		&result.Name,
		&result.Lat,
		&result.Lon,
		&result.DisplayName,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query geo cache: %w", err)
	}

	return result, nil
}

// Put stores a lookup result, replacing any previous entry for the name
func (r *GeoCacheRepository) Put(result *models.GeoResult) error {
	query := `
		INSERT INTO geo_cache (name, lat, lon, display_name)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			lat = excluded.lat,
			lon = excluded.lon,
			display_name = excluded.display_name
	`

	_, err := r.db.Exec(query, result.Name, result.Lat, result.Lon, result.DisplayName)
	if err != nil {
		return fmt.Errorf("failed to store geo cache entry: %w", err)
	}

	return nil
}

// Count returns the number of cached lookups
func (r *GeoCacheRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM geo_cache`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count geo cache entries: %w", err)
	}
	return count, nil
}
