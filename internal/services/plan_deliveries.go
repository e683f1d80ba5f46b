package services

import (
	"context"
	"errors"
	"fmt"
	"freight-route-service/internal/domain"
	"freight-route-service/internal/platform/obs"
	"log"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// FailurePolicy decides what happens when a single cargo item cannot be planned.
type FailurePolicy string

const (
	// Stop the run at the first failing cargo item (in input order).
	FailurePolicyAbort FailurePolicy = "abort"
	// Record the failure and keep planning the remaining cargo.
	FailurePolicySkip FailurePolicy = "skip"
)

func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch FailurePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", FailurePolicyAbort:
		return FailurePolicyAbort, nil
	case FailurePolicySkip:
		return FailurePolicySkip, nil
	default:
		return "", fmt.Errorf("unknown failure policy %q (want abort or skip)", s)
	}
}

type PlannerConfig struct {
	// Maximum number of cargo items planned concurrently; <= 0 means GOMAXPROCS.
	Workers       int
	FailurePolicy FailurePolicy
}

// SkippedCargo records a cargo item dropped under FailurePolicySkip.
type SkippedCargo struct {
	Cargo domain.CargoItem
	Err   error
}

// PlanResult is the output of one planning run.
// Plans follow cargo input order; under FailurePolicySkip the failed items
// are absent from Plans and listed in Skipped instead.
type PlanResult struct {
	RunID   string
	Plans   []domain.TimelinePlan
	Skipped []SkippedCargo
}

// Planner assigns vehicles to cargo items and builds their timelines.
type Planner struct {
	resolver *RouteResolver
	cfg      PlannerConfig
	metrics  *obs.PlannerMetrics
}

func NewPlanner(resolver *RouteResolver, cfg PlannerConfig, metrics *obs.PlannerMetrics) (*Planner, error) {
	if resolver == nil {
		return nil, errors.New("new planner: resolver is nil")
	}
	if cfg.FailurePolicy == "" {
		cfg.FailurePolicy = FailurePolicyAbort
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}

	return &Planner{resolver: resolver, cfg: cfg, metrics: metrics}, nil
}

// PlanDeliveries plans every scenario cargo item against a fresh resolver.
func PlanDeliveries(ctx context.Context, scenario *domain.Scenario, cfg PlannerConfig) (*PlanResult, error) {
	if scenario == nil {
		return nil, errors.New("plan deliveries: scenario is nil")
	}

	resolver, err := NewRouteResolver(scenario.Network, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("plan deliveries: %w", err)
	}
	planner, err := NewPlanner(resolver, cfg, nil)
	if err != nil {
		return nil, fmt.Errorf("plan deliveries: %w", err)
	}

	return planner.PlanDeliveries(ctx, scenario.Vehicles, scenario.Cargo)
}

type cargoOutcome struct {
	plan domain.TimelinePlan
	err  error
}

// PlanDeliveries produces one TimelinePlan per cargo item, in input order.
//
// Cargo items are independent and are planned concurrently; each worker
// writes only its own result slot. Vehicles may be reused across cargo items
// (no cross-cargo booking). Unknown locations and context cancellation always
// end the run; other per-cargo failures follow the configured FailurePolicy.
func (p *Planner) PlanDeliveries(
	ctx context.Context,
	vehicles []domain.Vehicle,
	cargo []domain.CargoItem,
) (_ *PlanResult, err error) {
	defer obs.Time(ctx, "planner.PlanDeliveries")(&err)

	start := time.Now()
	defer func() { p.metrics.ObservePlan(time.Since(start)) }()

	runID := uuid.NewString()
	ctx, span := tracer.Start(ctx, "planner.PlanDeliveries", trace.WithAttributes(
		attribute.String("plan.run_id", runID),
		attribute.Int("plan.cargo", len(cargo)),
		attribute.Int("plan.vehicles", len(vehicles)),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	log.Printf(
		"plan deliveries: run_id=%s cargo=%d vehicles=%d workers=%d policy=%s",
		runID, len(cargo), len(vehicles), p.cfg.Workers, p.cfg.FailurePolicy,
	)

	outcomes := make([]cargoOutcome, len(cargo))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Workers)

	for i, c := range cargo {
		g.Go(func() error {
			plan, err := p.planCargo(gctx, c, vehicles)
			outcomes[i] = cargoOutcome{plan: plan, err: err}

			// Only run-wide failures cancel the other workers.
			if err != nil && isFatal(err) {
				return fmt.Errorf("plan deliveries: cargo %q: %w", c.Name, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		p.metrics.ObserveCargo(obs.CargoFailed)
		return nil, err
	}

	// Under abort the first failure by input order fails the whole run,
	// so no cargo item of that run counts as planned.
	if p.cfg.FailurePolicy != FailurePolicySkip {
		for i, o := range outcomes {
			if o.err != nil {
				p.metrics.ObserveCargo(obs.CargoFailed)
				return nil, fmt.Errorf("plan deliveries: cargo %q: %w", cargo[i].Name, o.err)
			}
		}
	}

	res := &PlanResult{
		RunID: runID,
		Plans: make([]domain.TimelinePlan, 0, len(cargo)),
	}
	for i, o := range outcomes {
		if o.err == nil {
			p.metrics.ObserveCargo(obs.CargoPlanned)
			res.Plans = append(res.Plans, o.plan)
			continue
		}

		p.metrics.ObserveCargo(obs.CargoSkipped)
		log.Printf("plan deliveries: run_id=%s skipping cargo=%q err=%v", runID, cargo[i].Name, o.err)
		res.Skipped = append(res.Skipped, SkippedCargo{Cargo: cargo[i], Err: o.err})
	}

	return res, nil
}

// planCargo selects the cheapest capable vehicle for c and builds its timeline.
func (p *Planner) planCargo(
	ctx context.Context,
	c domain.CargoItem,
	vehicles []domain.Vehicle,
) (_ domain.TimelinePlan, err error) {
	ctx, span := tracer.Start(ctx, "planner.planCargo", trace.WithAttributes(
		attribute.String("cargo.name", c.Name),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	if err := ctx.Err(); err != nil {
		return domain.TimelinePlan{}, err
	}

	if c.Origin == c.Destination {
		return domain.TimelinePlan{}, fmt.Errorf("plan cargo %q at %q: %w", c.Name, c.Origin, domain.ErrSameOriginDestination)
	}

	capable := domain.CapableVehicles(vehicles, c)
	if len(capable) == 0 {
		return domain.TimelinePlan{}, &domain.NoCapableVehicleError{Cargo: c.Name, Weight: c.Weight}
	}

	var (
		best        *domain.Vehicle
		bestLeg     domain.PathResult
		bestTotal   uint64
		unreachable []error
	)

	// Candidates are evaluated in input order; only a strictly lower total
	// replaces the current best, so the first-listed vehicle wins ties.
	for i := range capable {
		v := capable[i]

		leg, err := p.resolver.Route(ctx, v.Start, c.Origin)
		if err != nil {
			if errors.Is(err, domain.ErrNoPath) {
				unreachable = append(unreachable, err)
				continue
			}
			return domain.TimelinePlan{}, fmt.Errorf("plan cargo %q: vehicle %q: %w", c.Name, v.Name, err)
		}

		if total := leg.TotalWeight(); best == nil || total < bestTotal {
			best = &v
			bestLeg = leg
			bestTotal = total
		}
	}

	if best == nil {
		return domain.TimelinePlan{}, &domain.NoCapableVehicleError{
			Cargo:       c.Name,
			Weight:      c.Weight,
			Unreachable: unreachable,
		}
	}

	delivery, err := p.resolver.Route(ctx, c.Origin, c.Destination)
	if err != nil {
		return domain.TimelinePlan{}, fmt.Errorf("plan cargo %q: delivery route: %w", c.Name, err)
	}

	// Concatenate pickup and delivery legs; the origin appears once, as the
	// last pickup location (or as the vehicle start when the leg is empty).
	stitched := bestLeg.Clone()
	stitched.Locations = append(stitched.Locations, delivery.Locations...)
	stitched.HopWeights = append(stitched.HopWeights, delivery.HopWeights...)

	events, err := BuildTimeline(*best, stitched.Locations, c, stitched.HopWeights)
	if err != nil {
		return domain.TimelinePlan{}, fmt.Errorf("plan cargo %q: %w", c.Name, err)
	}

	span.SetAttributes(attribute.String("cargo.vehicle", best.Name))

	return domain.TimelinePlan{
		Cargo:       c,
		Vehicle:     *best,
		Events:      events,
		TotalWeight: stitched.TotalWeight(),
	}, nil
}

// isFatal reports errors that invalidate the whole run rather than one cargo item.
func isFatal(err error) bool {
	return errors.Is(err, domain.ErrUnknownLocation) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
