package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// SQLite backed store for computed routes, stored as JSON text.
type SqliteRouteStore[V any] struct {
	DB   *sql.DB
	Kind string
}

func NewSqliteRouteStore[V any](db *sql.DB, kind string) *SqliteRouteStore[V] {
	return &SqliteRouteStore[V]{DB: db, Kind: kind}
}

func (s *SqliteRouteStore[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var zero V
	if s.DB == nil {
		return zero, false, errors.New("route store: db is nil")
	}

	var payload string
	err := s.DB.QueryRowContext(ctx, `
	SELECT payload
    FROM route_cache
    WHERE kind = ?
        AND route_key = ?;
	`, s.Kind, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}

	var v V
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		return zero, false, fmt.Errorf("get route cache: decode payload for %q: %w", key, err)
	}

	return v, true, nil
}

func (s *SqliteRouteStore[V]) Put(ctx context.Context, key string, v V) error {
	if s.DB == nil {
		return errors.New("route store: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert route cache: empty route key")
	}

	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("insert route cache: encode payload for %q: %w", key, err)
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT OR IGNORE INTO route_cache (
        kind,
        route_key,
        payload
    )
    VALUES (?, ?, ?);
	`, s.Kind, key, string(payload))
	if err != nil {
		return fmt.Errorf("insert route cache key=%q: %w", key, err)
	}

	return nil
}
