package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"shipment-route-service/internal/platform/obs"
)

// SQLNameStore is a Postgres-backed store mapping rounded "lat,lng" keys to
// reverse-geocoded place names.
type SQLNameStore struct {
	DB *sql.DB
}

func NewSQLNameStore(db *sql.DB) *SQLNameStore {
	return &SQLNameStore{DB: db}
}

// Fetch the cached name for one coordinate key.
func (s *SQLNameStore) Get(ctx context.Context, key string) (_ string, _ bool, err error) {
	defer obs.Time(ctx, "name.store.Get")(&err)

	if s.DB == nil {
		return "", false, errors.New("name store: db is nil")
	}

	q := `
	SELECT place_name
    FROM place_name_cache
    WHERE coord_key = $1;
	`

	var name string
	err = s.DB.QueryRowContext(ctx, q, key).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get name cache: query place_name_cache table: %w", err)
	}

	return name, true, nil
}

// Fetch cached names for many coordinate keys.
func (s *SQLNameStore) GetMany(ctx context.Context, keys []string) (_ map[string]string, err error) {
	defer obs.Time(ctx, "name.store.GetMany")(&err)

	if s.DB == nil {
		return nil, errors.New("name store: db is nil")
	}

	uniq := uniqueKeys(keys)
	if len(uniq) == 0 {
		return map[string]string{}, nil
	}

	q := `
	SELECT coord_key, place_name
    FROM place_name_cache
    WHERE coord_key = ANY($1::text[]);
	`

	rows, err := s.DB.QueryContext(ctx, q, uniq)
	if err != nil {
		return nil, fmt.Errorf("get name cache: query place_name_cache table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string, len(uniq))
	for rows.Next() {
		var key, name string
		if err := rows.Scan(&key, &name); err != nil {
			return nil, fmt.Errorf("get name cache: scan rows: %w", err)
		}
		out[key] = name
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get name cache: row iteration: %w", err)
	}

	return out, nil
}

// Store one coordinate key -> name mapping. Existing rows are kept.
func (s *SQLNameStore) Put(ctx context.Context, key string, name string) error {
	if s.DB == nil {
		return errors.New("name store: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert name cache: empty coordinate key")
	}

	_, err := s.DB.ExecContext(ctx, `
	INSERT INTO place_name_cache (coord_key, place_name)
    VALUES ($1, $2)
	ON CONFLICT (coord_key) DO NOTHING;
	`, key, name)
	if err != nil {
		return fmt.Errorf("insert name cache key=%q: %w", key, err)
	}

	return nil
}

func uniqueKeys(keys []string) []string {
	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}

		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		uniq = append(uniq, k)
	}
	return uniq
}
