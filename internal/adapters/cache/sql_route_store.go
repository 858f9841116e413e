package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"shipment-route-service/internal/platform/obs"
)

// Route kinds share one table and are told apart by the kind column.
const (
	KindTour     = "tour"
	KindShipment = "shipment"
)

// SQLRouteStore is a Postgres-backed store for computed routes, keyed by a
// stable tour or shipment id. Values are stored as JSON.
type SQLRouteStore[V any] struct {
	DB   *sql.DB
	Kind string
}

func NewSQLRouteStore[V any](db *sql.DB, kind string) *SQLRouteStore[V] {
	return &SQLRouteStore[V]{DB: db, Kind: kind}
}

// Fetch the cached route for one id.
func (s *SQLRouteStore[V]) Get(ctx context.Context, key string) (_ V, _ bool, err error) {
	defer obs.Time(ctx, "route.store.Get")(&err)

	var zero V
	if s.DB == nil {
		return zero, false, errors.New("route store: db is nil")
	}

	q := `
	SELECT payload
    FROM route_cache
    WHERE kind = $1
        AND route_key = $2;
	`

	var payload []byte
	err = s.DB.QueryRowContext(ctx, q, s.Kind, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}

	var v V
	if err := json.Unmarshal(payload, &v); err != nil {
		return zero, false, fmt.Errorf("get route cache: decode payload for %q: %w", key, err)
	}

	return v, true, nil
}

// Store a computed route. An existing row for the id is kept.
func (s *SQLRouteStore[V]) Put(ctx context.Context, key string, v V) error {
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
	INSERT INTO route_cache (kind, route_key, payload)
    VALUES ($1, $2, $3)
	ON CONFLICT (kind, route_key) DO NOTHING;
	`, s.Kind, key, string(payload))
	if err != nil {
		return fmt.Errorf("insert route cache key=%q: %w", key, err)
	}

	return nil
}
