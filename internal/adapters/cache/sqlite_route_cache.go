package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"freight-route-service/internal/domain"
	"freight-route-service/internal/ports"
	"strings"
)

// SQLite backed cache for resolved routes.
// Rows are keyed by (network fingerprint, source, destination), so a changed
// network never reads routes computed for a previous one.
type SqliteRouteCache struct {
	DB *sql.DB
}

func NewSqliteRouteCache(db *sql.DB) *SqliteRouteCache {
	return &SqliteRouteCache{DB: db}
}

// Fetch a cached route.
func (s *SqliteRouteCache) Get(ctx context.Context, key ports.RouteKey) (domain.PathResult, bool, error) {
	if s.DB == nil {
		return domain.PathResult{}, false, errors.New("route cache: db is nil")
	}

	q := `
	SELECT route
    FROM route_cache
    WHERE network = ?
        AND source = ?
        AND destination = ?;
	`

	var raw string
	err := s.DB.QueryRowContext(ctx, q, networkKey(key), key.From, key.To).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.PathResult{}, false, nil
	}
	if err != nil {
		return domain.PathResult{}, false, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}

	r, err := decodeRoute([]byte(raw))
	if err != nil {
		return domain.PathResult{}, false, fmt.Errorf("get route cache key=%s: %w", key, err)
	}
	return r, true, nil
}

// Store a resolved route, replacing any previous entry.
func (s *SqliteRouteCache) Put(ctx context.Context, key ports.RouteKey, route domain.PathResult) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	if strings.TrimSpace(key.From) == "" || strings.TrimSpace(key.To) == "" {
		return errors.New("insert route cache: source and destination must not be empty")
	}

	raw, err := encodeRoute(route)
	if err != nil {
		return fmt.Errorf("insert route cache: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT OR REPLACE INTO route_cache (
        network,
        source,
        destination,
        route
    )
    VALUES (?, ?, ?, ?);
	`, networkKey(key), key.From, key.To, string(raw))
	if err != nil {
		return fmt.Errorf("insert route cache key=%s: %w", key, err)
	}

	return nil
}

func networkKey(key ports.RouteKey) string {
	return fmt.Sprintf("%016x", key.Network)
}
