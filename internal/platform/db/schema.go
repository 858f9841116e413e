package db

import (
	"database/sql"
	"errors"
	"fmt"
)

type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// InitSchema creates the cache tables if they do not exist.
func InitSchema(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	payloadType := "TEXT"
	if dialect == Postgres {
		payloadType = "JSONB"
	}

	createPlaceNameCacheQuery := `
	CREATE TABLE IF NOT EXISTS place_name_cache (
        coord_key TEXT PRIMARY KEY,
        place_name TEXT NOT NULL
    );
	`

	createRouteCacheQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS route_cache (
        kind TEXT NOT NULL,
        route_key TEXT NOT NULL,
        payload %s NOT NULL,
        PRIMARY KEY (kind, route_key)
    );
	`, payloadType)

	statements := []string{
		createPlaceNameCacheQuery,
		createRouteCacheQuery,
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
