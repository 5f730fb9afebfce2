package cache

import (
	"context"
	"errors"
	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/platform/obs"
	"fmt"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "route:"

// RedisRouteCache stores resolved routes in Redis with a per-key TTL.
type RedisRouteCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisRouteCache(rdb *redis.Client, ttl time.Duration) *RedisRouteCache {
	return &RedisRouteCache{rdb: rdb, ttl: ttl}
}

// NewRedisRouteCacheFromURL parses a redis:// URL and verifies the connection.
func NewRedisRouteCacheFromURL(ctx context.Context, url string, ttl time.Duration) (*RedisRouteCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis route cache: parse url: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis route cache: ping: %w", err)
	}

	return NewRedisRouteCache(rdb, ttl), nil
}

func (c *RedisRouteCache) Get(ctx context.Context, key string) (_ domain.RouteResult, ok bool, err error) {
	defer obs.Time(ctx, "route.cache.Get")(&err)
	defer func() { recordLookup("redis", ok, err) }()

	if strings.TrimSpace(key) == "" {
		return domain.RouteResult{}, false, errors.New("get route cache: key must not be empty")
	}

	b, err := c.rdb.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.RouteResult{}, false, nil
	}
	if err != nil {
		return domain.RouteResult{}, false, fmt.Errorf("get route cache: %w", err)
	}

	route, err := decodeRoute(b)
	if err != nil {
		return domain.RouteResult{}, false, fmt.Errorf("get route cache: %w", err)
	}

	return route, true, nil
}

func (c *RedisRouteCache) Put(ctx context.Context, key string, route domain.RouteResult) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("insert route cache: key must not be empty")
	}

	payload, err := encodeRoute(route)
	if err != nil {
		return fmt.Errorf("insert route cache: %w", err)
	}

	if err := c.rdb.Set(ctx, redisKeyPrefix+key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("insert route cache key=%q: %w", key, err)
	}

	return nil
}

func (c *RedisRouteCache) Close() error { return c.rdb.Close() }
