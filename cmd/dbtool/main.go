package main

import (
	"context"
	"database/sql"
	"fleet-route-service/internal/adapters/repositories"
	"fleet-route-service/internal/config"
	"fleet-route-service/internal/platform/db"
	"log"
	"time"
)

// dbtool prepares the route cache database and purges expired entries.
// It uses Postgres when DATABASE_URL is set, otherwise the SQLite file at DB_PATH.
func main() {
	config.LoadDotEnv()

	ctx := context.Background()

	sqlDB, dialect, err := open()
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, sqlDB); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Pruning expired route cache entries...")
	n, err := repositories.PruneRouteCache(ctx, sqlDB, dialect, time.Now())
	if err != nil {
		log.Fatalf("prune failed: %v", err)
	}
	log.Printf("Prune complete. removed=%d", n)
}

func open() (*sql.DB, repositories.Dialect, error) {
	if databaseURL := config.Get("DATABASE_URL", ""); databaseURL != "" {
		sqlDB, err := db.Open(databaseURL)
		return sqlDB, repositories.Postgres, err
	}

	sqlDB, err := db.OpenSQLite(config.Get("DB_PATH", "data/app.db"))
	return sqlDB, repositories.SQLite, err
}
