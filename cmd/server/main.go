package main

import (
	"context"
	"database/sql"
	"fmt"
	"freight-route-service/internal/adapters/cache"
	"freight-route-service/internal/adapters/repositories"
	"freight-route-service/internal/api"
	"freight-route-service/internal/config"
	"freight-route-service/internal/platform/db"
	"freight-route-service/internal/platform/obs"
	"freight-route-service/internal/ports"
	"freight-route-service/internal/services"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (SQL storage, route caches) behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	shutdownTracing, err := obs.InitTracing(ctx, obs.TracingConfig{
		Enabled:     cfg.TracingEnabled,
		ServiceName: "freight-route-service",
		Exporter:    cfg.TracingExporter,
		Endpoint:    cfg.OTLPEndpoint,
		SampleRatio: cfg.TracingSampleRatio,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer obs.ShutdownWithTimeout(ctx, shutdownTracing)

	sqlDB, err := db.OpenDriver(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(sqlDB, repositories.Dialect(cfg.DBDriver), cfg.SeedPath); err != nil {
		log.Fatal(err)
	}

	routeCache, closeCache, err := newRouteCache(cfg, sqlDB)
	if err != nil {
		log.Fatal(err)
	}
	defer closeCache()

	metrics, err := obs.NewPlannerMetrics(nil)
	if err != nil {
		log.Fatal(err)
	}

	policy, err := services.ParseFailurePolicy(cfg.FailurePolicy)
	if err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSQLScenarioRepository(sqlDB)
	router := api.NewRouter(repo, routeCache, metrics, services.PlannerConfig{
		Workers:       cfg.PlannerWorkers,
		FailurePolicy: policy,
	})

	log.Printf("Server listening addr=:%s driver=%s route_cache=%s", cfg.Port, cfg.DBDriver, cfg.RouteCache)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// newRouteCache selects the route cache backend named by ROUTE_CACHE.
// The returned close func is always safe to call.
func newRouteCache(cfg config.Config, sqlDB *sql.DB) (ports.RouteCache, func(), error) {
	noop := func() {}

	switch cfg.RouteCache {
	case "", "none":
		return nil, noop, nil
	case "memory":
		return cache.NewMemoryRouteCache(), noop, nil
	case "sqlite":
		if cfg.DBDriver != "sqlite" {
			return nil, noop, fmt.Errorf("route cache: sqlite cache requires DB_DRIVER=sqlite")
		}
		return cache.NewSqliteRouteCache(sqlDB), noop, nil
	case "sql":
		if cfg.DBDriver != "pgx" {
			return nil, noop, fmt.Errorf("route cache: sql cache requires DB_DRIVER=pgx")
		}
		return cache.NewSQLRouteCache(sqlDB), noop, nil
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("route cache: ping redis %s: %w", cfg.RedisAddr, err)
		}
		return cache.NewRedisRouteCache(client, 24*time.Hour), func() { _ = client.Close() }, nil
	default:
		return nil, noop, fmt.Errorf("route cache: unknown backend %q", cfg.RouteCache)
	}
}

func initAndSeed(sqlDB *sql.DB, dialect repositories.Dialect, seedPath string) error {
	if err := repositories.InitSchema(sqlDB); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(sqlDB, dialect, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
