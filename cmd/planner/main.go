package main

import (
	"context"
	"flag"
	"fmt"
	"freight-route-service/internal/adapters/presenter"
	"freight-route-service/internal/adapters/repositories"
	"freight-route-service/internal/config"
	"freight-route-service/internal/domain"
	"freight-route-service/internal/platform/db"
	"freight-route-service/internal/services"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
)

// planner reads a scenario, plans every cargo item and prints the
// plain-text timeline to stdout.
func main() {
	scenarioPath := flag.String("scenario", "", "scenario JSON file (default: SEED_PATH)")
	fromDB := flag.Bool("db", false, "load the scenario from the configured database instead of a file")
	policy := flag.String("policy", "", "failure policy: abort or skip (default: FAILURE_POLICY)")
	workers := flag.Int("workers", 0, "parallel cargo workers (default: PLANNER_WORKERS or GOMAXPROCS)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, cfg, *scenarioPath, *fromDB, *policy, *workers); err != nil {
		log.Fatal(err)
	}
}

func run(
	ctx context.Context,
	out io.Writer,
	cfg config.Config,
	scenarioPath string,
	fromDB bool,
	policy string,
	workers int,
) error {
	if policy == "" {
		policy = cfg.FailurePolicy
	}
	failurePolicy, err := services.ParseFailurePolicy(policy)
	if err != nil {
		return fmt.Errorf("planner: %w", err)
	}
	if workers <= 0 {
		workers = cfg.PlannerWorkers
	}

	scenario, err := loadScenario(ctx, cfg, scenarioPath, fromDB)
	if err != nil {
		return fmt.Errorf("planner: %w", err)
	}

	res, err := services.PlanDeliveries(ctx, scenario, services.PlannerConfig{
		Workers:       workers,
		FailurePolicy: failurePolicy,
	})
	if err != nil {
		return fmt.Errorf("planner: %w", err)
	}

	for _, s := range res.Skipped {
		log.Printf("skipped cargo=%q err=%v", s.Cargo.Name, s.Err)
	}

	return presenter.WritePlans(out, res.Plans)
}

func loadScenario(ctx context.Context, cfg config.Config, scenarioPath string, fromDB bool) (*domain.Scenario, error) {
	if fromDB {
		sqlDB, err := db.OpenDriver(cfg.DBDriver, cfg.DSN())
		if err != nil {
			return nil, err
		}
		defer sqlDB.Close()

		return repositories.NewSQLScenarioRepository(sqlDB).LoadScenario(ctx)
	}

	if scenarioPath == "" {
		scenarioPath = cfg.SeedPath
	}
	seed, err := repositories.ReadScenarioSeed(scenarioPath)
	if err != nil {
		return nil, err
	}
	return seed.Scenario()
}
