package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the process settings shared by the commands.
type Config struct {
	DBDriver    string
	DBPath      string
	DatabaseURL string
	SeedPath    string
	Port        string

	RouteCache string
	RedisAddr  string

	PlannerWorkers int
	FailurePolicy  string

	TracingEnabled     bool
	TracingExporter    string
	OTLPEndpoint       string
	TracingSampleRatio float64
}

// Load reads an optional .env file and then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := Config{
		DBDriver:        Get("DB_DRIVER", "sqlite"),
		DBPath:          Get("DB_PATH", "data/app.db"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SeedPath:        Get("SEED_PATH", "data/seeds/scenario.json"),
		Port:            Get("PORT", "8080"),
		RouteCache:      strings.ToLower(Get("ROUTE_CACHE", "memory")),
		RedisAddr:       Get("REDIS_ADDR", "localhost:6379"),
		FailurePolicy:   Get("FAILURE_POLICY", "abort"),
		TracingExporter: Get("TRACING_EXPORTER", "stdout"),
		OTLPEndpoint:    Get("OTLP_ENDPOINT", "localhost:4317"),
	}

	var err error
	if cfg.PlannerWorkers, err = strconv.Atoi(Get("PLANNER_WORKERS", "0")); err != nil {
		return Config{}, fmt.Errorf("config: PLANNER_WORKERS: %w", err)
	}
	if cfg.TracingEnabled, err = strconv.ParseBool(Get("TRACING_ENABLED", "false")); err != nil {
		return Config{}, fmt.Errorf("config: TRACING_ENABLED: %w", err)
	}
	if cfg.TracingSampleRatio, err = strconv.ParseFloat(Get("TRACING_SAMPLE_RATIO", "1"), 64); err != nil {
		return Config{}, fmt.Errorf("config: TRACING_SAMPLE_RATIO: %w", err)
	}

	switch cfg.DBDriver {
	case "sqlite", "pgx":
	default:
		return Config{}, fmt.Errorf("config: DB_DRIVER must be sqlite or pgx, got %q", cfg.DBDriver)
	}
	if cfg.DBDriver == "pgx" && strings.TrimSpace(cfg.DatabaseURL) == "" {
		return Config{}, fmt.Errorf("config: DATABASE_URL is required when DB_DRIVER=pgx")
	}

	return cfg, nil
}

// DSN returns the data source for the configured driver.
func (c Config) DSN() string {
	if c.DBDriver == "pgx" {
		return c.DatabaseURL
	}
	return c.DBPath
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
