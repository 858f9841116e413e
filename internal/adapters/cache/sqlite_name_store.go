package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLite backed store mapping rounded "lat,lng" keys to place names.
// Keys are expected to be already rounded by the caller.
type SqliteNameStore struct {
	DB *sql.DB
}

func NewSqliteNameStore(db *sql.DB) *SqliteNameStore {
	return &SqliteNameStore{DB: db}
}

func (s *SqliteNameStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.DB == nil {
		return "", false, errors.New("name store: db is nil")
	}

	var name string
	err := s.DB.QueryRowContext(ctx, `
	SELECT place_name
    FROM place_name_cache
    WHERE coord_key = ?;
	`, key).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get name cache: query place_name_cache table: %w", err)
	}

	return name, true, nil
}

// Fetch cached names for many coordinate keys.
func (s *SqliteNameStore) GetMany(ctx context.Context, keys []string) (map[string]string, error) {
	if s.DB == nil {
		return nil, errors.New("name store: db is nil")
	}

	uniq := uniqueKeys(keys)
	if len(uniq) == 0 {
		return map[string]string{}, nil
	}

	ph := make([]string, 0, len(uniq))
	args := make([]any, 0, len(uniq))
	for _, k := range uniq {
		ph = append(ph, "?")
		args = append(args, k)
	}

	// SQLite does not support binding slices directly in an IN (...) clause.
	// Only the placeholder structure is interpolated; all values remain parameterized.
	q := fmt.Sprintf(`
	SELECT
        coord_key,
        place_name
    FROM place_name_cache
    WHERE coord_key IN (%s);
	`, strings.Join(ph, ","))

	rows, err := s.DB.QueryContext(ctx, q, args...)
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

func (s *SqliteNameStore) Put(ctx context.Context, key string, name string) error {
	if s.DB == nil {
		return errors.New("name store: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert name cache: empty coordinate key")
	}

	_, err := s.DB.ExecContext(ctx, `
	INSERT OR IGNORE INTO place_name_cache (
        coord_key,
        place_name
    )
    VALUES (?, ?);
	`, key, name)
	if err != nil {
		return fmt.Errorf("insert name cache key=%q: %w", key, err)
	}

	return nil
}
