package config

import (
	"fleet-route-service/internal/domain"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Cache backends selectable through CACHE_BACKEND.
const (
	CacheNone     = "none"
	CacheSQLite   = "sqlite"
	CachePostgres = "postgres"
	CacheRedis    = "redis"
)

type Config struct {
	Port string

	MapsAPIKey   string
	MapsBaseURL  string
	MapsLanguage string
	MapsTimeout  time.Duration
	MapsRPS      float64
	MapsBurst    int

	FleetPath string

	CacheBackend string
	CacheTTL     time.Duration
	DBPath       string
	DatabaseURL  string
	RedisURL     string

	RateRPS   float64
	RateBurst int
}

// LoadDotEnv loads a .env file when present. A missing file is not an error.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads the service configuration from the environment.
// A missing MAPS_API_KEY or a malformed value is a domain.ErrConfiguration.
func Load() (Config, error) {
	cfg := Config{
		Port:         Get("PORT", "8080"),
		MapsAPIKey:   Get("MAPS_API_KEY", ""),
		MapsBaseURL:  strings.TrimRight(Get("MAPS_BASE_URL", "https://maps.googleapis.com"), "/"),
		MapsLanguage: Get("MAPS_LANGUAGE", "es"),
		FleetPath:    Get("FLEET_PATH", ""),
		CacheBackend: strings.ToLower(Get("CACHE_BACKEND", CacheNone)),
		DBPath:       Get("DB_PATH", "data/app.db"),
		DatabaseURL:  Get("DATABASE_URL", ""),
		RedisURL:     Get("REDIS_URL", ""),
	}

	if cfg.MapsAPIKey == "" {
		return Config{}, fmt.Errorf("load config: MAPS_API_KEY is required: %w", domain.ErrConfiguration)
	}

	var err error
	if cfg.MapsTimeout, err = duration("MAPS_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL, err = duration("CACHE_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.MapsRPS, err = float("MAPS_RPS", 5); err != nil {
		return Config{}, err
	}
	if cfg.MapsBurst, err = integer("MAPS_BURST", 5); err != nil {
		return Config{}, err
	}
	if cfg.RateRPS, err = float("RATE_RPS", 10); err != nil {
		return Config{}, err
	}
	if cfg.RateBurst, err = integer("RATE_BURST", 20); err != nil {
		return Config{}, err
	}

	switch cfg.CacheBackend {
	case CacheNone, CacheSQLite:
	case CachePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("load config: DATABASE_URL is required for cache backend %q: %w", cfg.CacheBackend, domain.ErrConfiguration)
		}
	case CacheRedis:
		if cfg.RedisURL == "" {
			return Config{}, fmt.Errorf("load config: REDIS_URL is required for cache backend %q: %w", cfg.CacheBackend, domain.ErrConfiguration)
		}
	default:
		return Config{}, fmt.Errorf("load config: unknown CACHE_BACKEND %q: %w", cfg.CacheBackend, domain.ErrConfiguration)
	}

	return cfg, nil
}

func duration(key string, fallback time.Duration) (time.Duration, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("load config: %s=%q is not a positive duration: %w", key, v, domain.ErrConfiguration)
	}
	return d, nil
}

func float(key string, fallback float64) (float64, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return 0, fmt.Errorf("load config: %s=%q is not a positive number: %w", key, v, domain.ErrConfiguration)
	}
	return f, nil
}

func integer(key string, fallback int) (int, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("load config: %s=%q is not a positive integer: %w", key, v, domain.ErrConfiguration)
	}
	return n, nil
}
