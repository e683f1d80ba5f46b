package obs

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPlannerMetricsRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewPlannerMetrics(reg)
	if err != nil {
		t.Fatalf("new metrics: %v", err)
	}

	m.ObserveRoute(RouteComputed)
	m.ObserveRoute(RouteComputed)
	m.ObserveRoute(RouteNoPath)
	m.ObserveCargo(CargoPlanned)
	m.ObservePlan(3 * time.Millisecond)

	if got := testutil.ToFloat64(m.RoutesResolved.WithLabelValues(RouteComputed)); got != 2 {
		t.Fatalf("computed routes = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.RoutesResolved.WithLabelValues(RouteNoPath)); got != 1 {
		t.Fatalf("no_path routes = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.CargoPlanned.WithLabelValues(CargoPlanned)); got != 1 {
		t.Fatalf("planned cargo = %v, want 1", got)
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(rec.Body.String(), "freight_plan_duration_seconds_count 1") {
		t.Fatalf("metrics output missing plan histogram:\n%s", rec.Body.String())
	}
}

func TestPlannerMetricsReRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPlannerMetrics(reg)
	if err != nil {
		t.Fatalf("first registration: %v", err)
	}
	second, err := NewPlannerMetrics(reg)
	if err != nil {
		t.Fatalf("second registration: %v", err)
	}

	first.ObserveCargo(CargoSkipped)
	if got := testutil.ToFloat64(second.CargoPlanned.WithLabelValues(CargoSkipped)); got != 1 {
		t.Fatalf("shared collector value = %v, want 1", got)
	}
}

func TestNilPlannerMetrics(t *testing.T) {
	var m *PlannerMetrics
	m.ObserveRoute(RouteComputed)
	m.ObserveCargo(CargoFailed)
	m.ObservePlan(time.Second)
}
