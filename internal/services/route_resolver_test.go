package services

import (
	"context"
	"errors"
	"freight-route-service/internal/adapters/cache"
	"freight-route-service/internal/domain"
	"reflect"
	"testing"
)

// testNetwork builds A-30-B-10-C, A-50-D, C-15-D plus an isolated island Z.
func testNetwork(t *testing.T) *domain.Network {
	t.Helper()

	network, err := domain.NewNetwork(
		[]domain.Location{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}, {Name: "Z"}},
		[]domain.Connection{
			{Name: "E1", Weight: 30, From: "A", To: "B"},
			{Name: "E2", Weight: 10, From: "B", To: "C"},
			{Name: "E3", Weight: 50, From: "A", To: "D"},
			{Name: "E4", Weight: 15, From: "C", To: "D"},
		},
	)
	if err != nil {
		t.Fatalf("build network: %v", err)
	}
	return network
}

func names(locs []domain.Location) []string {
	out := make([]string, 0, len(locs))
	for _, l := range locs {
		out = append(out, l.Name)
	}
	return out
}

func TestRouteResolverShortestPath(t *testing.T) {
	r, err := NewRouteResolver(testNetwork(t), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := r.Route(context.Background(), "A", "D")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A-B-C-D costs 55, the direct A-D connection 50.
	if want := []string{"D"}; !reflect.DeepEqual(names(got.Locations), want) {
		t.Fatalf("locations = %v, want %v", names(got.Locations), want)
	}
	if got.TotalWeight() != 50 {
		t.Fatalf("total = %d, want 50", got.TotalWeight())
	}

	got, err = r.Route(context.Background(), "B", "D")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"C", "D"}; !reflect.DeepEqual(names(got.Locations), want) {
		t.Fatalf("locations = %v, want %v", names(got.Locations), want)
	}
	if want := []uint32{10, 15}; !reflect.DeepEqual(got.HopWeights, want) {
		t.Fatalf("hop weights = %v, want %v", got.HopWeights, want)
	}
}

func TestRouteResolverSelfRoute(t *testing.T) {
	r, _ := NewRouteResolver(testNetwork(t), nil, nil)

	got, err := r.Route(context.Background(), "B", "B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Locations) != 0 || len(got.HopWeights) != 0 {
		t.Fatalf("self route = %+v, want empty", got)
	}
}

func TestRouteResolverNoPath(t *testing.T) {
	r, _ := NewRouteResolver(testNetwork(t), nil, nil)

	got, err := r.Route(context.Background(), "A", "Z")
	var npe *domain.NoPathError
	if !errors.As(err, &npe) {
		t.Fatalf("err = %v, want NoPathError", err)
	}
	if npe.From != "A" || npe.To != "Z" {
		t.Fatalf("NoPathError = %+v, want A -> Z", npe)
	}
	if len(got.Locations) != 0 || len(got.HopWeights) != 0 {
		t.Fatalf("expected empty result on failure, got %+v", got)
	}
}

func TestRouteResolverUnknownLocation(t *testing.T) {
	r, _ := NewRouteResolver(testNetwork(t), nil, nil)

	_, err := r.Route(context.Background(), "A", "nowhere")
	if !errors.Is(err, domain.ErrUnknownLocation) {
		t.Fatalf("err = %v, want ErrUnknownLocation", err)
	}
}

func TestRouteResolverSymmetricAndIdempotent(t *testing.T) {
	r, _ := NewRouteResolver(testNetwork(t), nil, nil)
	ctx := context.Background()

	pairs := [][2]string{{"A", "C"}, {"B", "D"}, {"D", "A"}, {"C", "A"}}
	for _, p := range pairs {
		there, err := r.Route(ctx, p[0], p[1])
		if err != nil {
			t.Fatalf("route %s->%s: %v", p[0], p[1], err)
		}
		back, err := r.Route(ctx, p[1], p[0])
		if err != nil {
			t.Fatalf("route %s->%s: %v", p[1], p[0], err)
		}
		if there.TotalWeight() != back.TotalWeight() {
			t.Errorf("%s<->%s: %d vs %d", p[0], p[1], there.TotalWeight(), back.TotalWeight())
		}

		again, _ := r.Route(ctx, p[0], p[1])
		if !reflect.DeepEqual(there, again) {
			t.Errorf("%s->%s not idempotent: %+v vs %+v", p[0], p[1], there, again)
		}
	}
}

func TestRouteResolverUsesCache(t *testing.T) {
	network := testNetwork(t)
	c := cache.NewMemoryRouteCache()
	r, _ := NewRouteResolver(network, c, nil)
	ctx := context.Background()

	first, err := r.Route(ctx, "A", "C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("cache entries = %d, want 1", c.Len())
	}

	// Mutating the caller's copy must not affect what the cache serves.
	first.Locations[0] = domain.Location{Name: "mutated"}

	second, err := r.Route(ctx, "A", "C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"B", "C"}; !reflect.DeepEqual(names(second.Locations), want) {
		t.Fatalf("cached locations = %v, want %v", names(second.Locations), want)
	}
}
