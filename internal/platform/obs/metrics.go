package obs

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Route resolution results.
const (
	RouteComputed = "computed"
	RouteCacheHit = "cache_hit"
	RouteNoPath   = "no_path"
)

// Cargo planning outcomes.
const (
	CargoPlanned = "planned"
	CargoSkipped = "skipped"
	CargoFailed  = "failed"
)

// PlannerMetrics bundles Prometheus metrics for route resolution and planning.
// A nil *PlannerMetrics is valid and records nothing.
type PlannerMetrics struct {
	gatherer prometheus.Gatherer

	RoutesResolved *prometheus.CounterVec
	CargoPlanned   *prometheus.CounterVec
	PlanDurations  prometheus.Histogram
}

// NewPlannerMetrics registers planner metrics against reg, defaulting to the
// global Prometheus registry when nil.
func NewPlannerMetrics(reg prometheus.Registerer) (*PlannerMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	routes, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "freight_routes_resolved_total",
		Help: "Shortest-path queries answered, labeled by result.",
	}, []string{"result"}), "freight_routes_resolved_total")
	if err != nil {
		return nil, err
	}

	cargo, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "freight_cargo_planned_total",
		Help: "Cargo items processed by the planner, labeled by outcome.",
	}, []string{"outcome"}), "freight_cargo_planned_total")
	if err != nil {
		return nil, err
	}

	durations, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "freight_plan_duration_seconds",
		Help:    "Wall time of a full planning run in seconds.",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}), "freight_plan_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &PlannerMetrics{
		gatherer:       gatherer,
		RoutesResolved: routes,
		CargoPlanned:   cargo,
		PlanDurations:  durations,
	}, nil
}

func (m *PlannerMetrics) ObserveRoute(result string) {
	if m == nil || m.RoutesResolved == nil {
		return
	}
	m.RoutesResolved.WithLabelValues(result).Inc()
}

func (m *PlannerMetrics) ObserveCargo(outcome string) {
	if m == nil || m.CargoPlanned == nil {
		return
	}
	m.CargoPlanned.WithLabelValues(outcome).Inc()
}

func (m *PlannerMetrics) ObservePlan(d time.Duration) {
	if m == nil || m.PlanDurations == nil {
		return
	}
	m.PlanDurations.Observe(d.Seconds())
}

// Handler exposes a ready-to-use /metrics handler.
func (m *PlannerMetrics) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if m != nil && m.gatherer != nil {
		gatherer = m.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return h, nil
}
