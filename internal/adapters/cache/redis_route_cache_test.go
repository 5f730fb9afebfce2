package cache

import (
	"context"
	"fleet-route-service/internal/domain"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
)

func sampleRoute() domain.RouteResult {
	return domain.RouteResult{
		Legs: []domain.Leg{
			{DistanceMeters: 1200, DistanceText: "1.2 km", StartAddress: "Hub", EndAddress: "A", Start: &domain.Coordinates{Lon: -99.02, Lat: 19.35}},
			{DistanceMeters: 800, DistanceText: "0.8 km", StartAddress: "A", EndAddress: "B"},
		},
		WaypointOrder: []int{0},
		Polyline:      "_p~iF~ps|U",
	}
}

func TestRedisRouteCacheRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	c := NewRedisRouteCache(rdb, time.Hour)
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "k1"); err != nil || ok {
		t.Fatalf("empty cache: ok=%v err=%v, want miss", ok, err)
	}

	if err := c.Put(ctx, "k1", sampleRoute()); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, "k1")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v, want hit", ok, err)
	}
	if got.TotalDistanceMeters() != 2000 {
		t.Fatalf("distance = %d, want 2000", got.TotalDistanceMeters())
	}
	if got.Legs[0].Start == nil || got.Legs[0].Start.Lat != 19.35 {
		t.Fatalf("start = %+v, want lat 19.35", got.Legs[0].Start)
	}

	if ttl := mr.TTL(redisKeyPrefix + "k1"); ttl != time.Hour {
		t.Fatalf("ttl = %v, want 1h", ttl)
	}
}

func TestRedisRouteCacheExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	c := NewRedisRouteCache(rdb, time.Minute)
	ctx := context.Background()

	if err := c.Put(ctx, "k1", sampleRoute()); err != nil {
		t.Fatalf("put: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, ok, err := c.Get(ctx, "k1"); err != nil || ok {
		t.Fatalf("expired entry: ok=%v err=%v, want miss", ok, err)
	}
}

func TestNewRedisRouteCacheFromURL(t *testing.T) {
	mr := miniredis.RunT(t)

	c, err := NewRedisRouteCacheFromURL(context.Background(), "redis://"+mr.Addr(), time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	if _, err := NewRedisRouteCacheFromURL(context.Background(), "not a url", time.Hour); err == nil {
		t.Fatal("expected parse error")
	}
}
