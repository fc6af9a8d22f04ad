package database

import (
	"database/sql"
	"fmt"
)

// schema holds the embedded migration statements, applied in order. Every
// statement must be idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS geo_cache (
		name TEXT PRIMARY KEY,
		lat REAL NOT NULL,
		lon REAL NOT NULL,
		display_name TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

// Migrate applies the embedded schema statements
func Migrate(db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement %d: %w", i, err)
		}
	}
	return nil
}
