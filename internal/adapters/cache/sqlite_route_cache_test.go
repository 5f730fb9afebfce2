package cache

import (
	"context"
	"database/sql"
	"fleet-route-service/internal/adapters/repositories"
	"fleet-route-service/internal/platform/db"
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	sqlDB, err := db.OpenSQLite(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := repositories.InitSchema(context.Background(), sqlDB); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return sqlDB
}

func TestSqliteRouteCacheRoundTrip(t *testing.T) {
	c := NewSqliteRouteCache(openTestDB(t), time.Hour)
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "k1"); err != nil || ok {
		t.Fatalf("empty cache: ok=%v err=%v, want miss", ok, err)
	}

	if err := c.Put(ctx, "k1", sampleRoute()); err != nil {
		t.Fatalf("put: %v", err)
	}
	// Replacing an entry must not violate the primary key.
	if err := c.Put(ctx, "k1", sampleRoute()); err != nil {
		t.Fatalf("second put: %v", err)
	}

	got, ok, err := c.Get(ctx, "k1")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v, want hit", ok, err)
	}
	if len(got.Legs) != 2 || got.Legs[1].EndAddress != "B" {
		t.Fatalf("legs = %+v", got.Legs)
	}
}

func TestSqliteRouteCacheExpiry(t *testing.T) {
	c := NewSqliteRouteCache(openTestDB(t), time.Minute)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }

	if err := c.Put(ctx, "k1", sampleRoute()); err != nil {
		t.Fatalf("put: %v", err)
	}

	c.now = func() time.Time { return base.Add(30 * time.Second) }
	if _, ok, _ := c.Get(ctx, "k1"); !ok {
		t.Fatal("entry should still be fresh")
	}

	c.now = func() time.Time { return base.Add(2 * time.Minute) }
	if _, ok, err := c.Get(ctx, "k1"); err != nil || ok {
		t.Fatalf("expired entry: ok=%v err=%v, want miss", ok, err)
	}
}

func TestSqliteRouteCacheRejectsEmptyKey(t *testing.T) {
	c := NewSqliteRouteCache(openTestDB(t), time.Minute)

	if err := c.Put(context.Background(), " ", sampleRoute()); err == nil {
		t.Fatal("expected error for empty key")
	}
}
