package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Dialect selects placeholder syntax for the few statements that differ.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

// Initialize the route cache schema. The DDL is valid for SQLite and Postgres.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createRouteCacheQuery := `
	CREATE TABLE IF NOT EXISTS route_cache (
        cache_key TEXT PRIMARY KEY,
        payload TEXT NOT NULL,
        created_at BIGINT NOT NULL,
        expires_at BIGINT NOT NULL
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_route_cache_expires_at
    ON route_cache(expires_at);
	`

	statements := []string{
		createRouteCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// PruneRouteCache deletes entries that expired before now and returns how many.
func PruneRouteCache(ctx context.Context, db *sql.DB, dialect Dialect, now time.Time) (int64, error) {
	if db == nil {
		return 0, errors.New("prune route cache: DB is nil")
	}

	query := `DELETE FROM route_cache WHERE expires_at <= ?;`
	if dialect == Postgres {
		query = `DELETE FROM route_cache WHERE expires_at <= $1;`
	}

	res, err := db.ExecContext(ctx, query, now.Unix())
	if err != nil {
		return 0, fmt.Errorf("prune route cache: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune route cache: rows affected: %w", err)
	}

	return n, nil
}
