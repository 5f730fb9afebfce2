package main

import (
	"context"
	"database/sql"
	"fleet-route-service/internal/adapters/cache"
	"fleet-route-service/internal/adapters/directions"
	"fleet-route-service/internal/adapters/repositories"
	"fleet-route-service/internal/api"
	"fleet-route-service/internal/config"
	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/platform/db"
	"fleet-route-service/internal/ports"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// main is the application composition root.
// It validates configuration, wires the Google Directions provider (optionally
// behind a route cache) and starts the HTTP server.
func main() {
	config.LoadDotEnv()

	// Missing credentials halt startup before any request is accepted.
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	fleets, err := fleetRepository(cfg)
	if err != nil {
		log.Fatal(err)
	}

	google, err := directions.NewGoogleDirectionsProvider(cfg.MapsAPIKey, directions.GoogleOptions{
		BaseURL: cfg.MapsBaseURL,
		Timeout: cfg.MapsTimeout,
		RPS:     cfg.MapsRPS,
		Burst:   cfg.MapsBurst,
	})
	if err != nil {
		log.Fatal(err)
	}

	routeCache, closer, err := openRouteCache(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if closer != nil {
		defer closer.Close()
	}

	var provider ports.DirectionsProvider = google
	if routeCache != nil {
		provider = directions.NewCachedDirectionsProvider(google, routeCache)
	}

	router := api.NewRouter(fleets, provider, api.RouterOptions{
		Language:  cfg.MapsLanguage,
		RateRPS:   cfg.RateRPS,
		RateBurst: cfg.RateBurst,
	})

	// WriteTimeout leaves room for the mapping call's own timeout.
	log.Printf("Server listening addr=:%s cache=%s", cfg.Port, cfg.CacheBackend)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.MapsTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func fleetRepository(cfg config.Config) (ports.FleetRepository, error) {
	if cfg.FleetPath == "" {
		return repositories.NewStaticFleetRepository(domain.DefaultFleet()), nil
	}

	fleet, err := repositories.LoadFleetYAML(cfg.FleetPath)
	if err != nil {
		return nil, err
	}
	log.Printf("fleet loaded path=%s policy=%s vehicles=%d", cfg.FleetPath, fleet.Policy, len(fleet.Vehicles))
	return repositories.NewStaticFleetRepository(fleet), nil
}

// openRouteCache builds the configured route cache. It returns a nil cache
// for CACHE_BACKEND=none.
func openRouteCache(cfg config.Config) (ports.RouteCache, io.Closer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch cfg.CacheBackend {
	case config.CacheSQLite:
		sqlDB, err := db.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		if err := initSchema(ctx, sqlDB); err != nil {
			return nil, nil, err
		}
		return cache.NewSqliteRouteCache(sqlDB, cfg.CacheTTL), sqlDB, nil

	case config.CachePostgres:
		sqlDB, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := initSchema(ctx, sqlDB); err != nil {
			return nil, nil, err
		}
		return cache.NewSQLRouteCache(sqlDB, cfg.CacheTTL), sqlDB, nil

	case config.CacheRedis:
		rc, err := cache.NewRedisRouteCacheFromURL(ctx, cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			return nil, nil, err
		}
		return rc, rc, nil

	default:
		return nil, nil, nil
	}
}

func initSchema(ctx context.Context, sqlDB *sql.DB) error {
	if err := repositories.InitSchema(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return fmt.Errorf("open route cache: %w", err)
	}
	return nil
}
