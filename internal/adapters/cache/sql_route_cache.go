package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"freight-route-service/internal/domain"
	"freight-route-service/internal/platform/obs"
	"freight-route-service/internal/ports"
	"strings"
)

// SQLRouteCache is a Postgres-backed (pgx driver) cache for resolved routes.
type SQLRouteCache struct {
	DB *sql.DB
}

func NewSQLRouteCache(db *sql.DB) *SQLRouteCache {
	return &SQLRouteCache{DB: db}
}

// Fetch a cached route.
func (s *SQLRouteCache) Get(ctx context.Context, key ports.RouteKey) (_ domain.PathResult, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.Get")(&err)

	if s.DB == nil {
		return domain.PathResult{}, false, errors.New("route cache: db is nil")
	}

	q := `
	SELECT route
    FROM route_cache
    WHERE network = $1
        AND source = $2
        AND destination = $3;
	`

	var raw string
	err = s.DB.QueryRowContext(ctx, q, networkKey(key), key.From, key.To).Scan(&raw)
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
func (s *SQLRouteCache) Put(ctx context.Context, key ports.RouteKey, route domain.PathResult) error {
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
	INSERT INTO route_cache (network, source, destination, route)
    VALUES ($1, $2, $3, $4)
	ON CONFLICT (network, source, destination) DO UPDATE
	SET route = EXCLUDED.route;
	`, networkKey(key), key.From, key.To, string(raw))
	if err != nil {
		return fmt.Errorf("insert route cache key=%s: %w", key, err)
	}

	return nil
}
