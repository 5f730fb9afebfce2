package cache

import (
	"context"
	"database/sql"
	"errors"
	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/platform/obs"
	"fmt"
	"strings"
	"time"
)

// SQLite backed cache of resolved routes.
// Keys are expected to be consistent (e.g., derived by directions.CacheKey)
// by the caller.
type SqliteRouteCache struct {
	DB  *sql.DB
	TTL time.Duration

	now func() time.Time
}

func NewSqliteRouteCache(db *sql.DB, ttl time.Duration) *SqliteRouteCache {
	return &SqliteRouteCache{DB: db, TTL: ttl, now: time.Now}
}

// Fetch the cached route for key, ignoring expired rows.
func (s *SqliteRouteCache) Get(ctx context.Context, key string) (_ domain.RouteResult, ok bool, err error) {
	defer obs.Time(ctx, "route.cache.Get")(&err)
	defer func() { recordLookup("sqlite", ok, err) }()

	if s.DB == nil {
		return domain.RouteResult{}, false, errors.New("route cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return domain.RouteResult{}, false, errors.New("get route cache: key must not be empty")
	}

	q := `
	SELECT
        payload
    FROM route_cache
    WHERE cache_key = ?
        AND expires_at > ?;
	`

	var payload string
	err = s.DB.QueryRowContext(ctx, q, key, s.now().Unix()).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.RouteResult{}, false, nil
	}
	if err != nil {
		return domain.RouteResult{}, false, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}

	route, err := decodeRoute([]byte(payload))
	if err != nil {
		return domain.RouteResult{}, false, fmt.Errorf("get route cache: %w", err)
	}

	return route, true, nil
}

// Store a route under key, replacing any previous entry.
func (s *SqliteRouteCache) Put(ctx context.Context, key string, route domain.RouteResult) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert route cache: key must not be empty")
	}

	payload, err := encodeRoute(route)
	if err != nil {
		return fmt.Errorf("insert route cache: %w", err)
	}

	now := s.now()
	_, err = s.DB.ExecContext(ctx, `
	INSERT OR REPLACE INTO route_cache (
        cache_key,
        payload,
        created_at,
        expires_at
    )
    VALUES (?, ?, ?, ?);
	`, key, string(payload), now.Unix(), now.Add(s.TTL).Unix())
	if err != nil {
		return fmt.Errorf("insert route cache key=%q: %w", key, err)
	}

	return nil
}
