package services

import (
	"context"
	"errors"
	"fmt"
	"freight-route-service/internal/domain"
	"freight-route-service/internal/graph"
	"freight-route-service/internal/platform/obs"
	"freight-route-service/internal/ports"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("freight-route-service/internal/services")

// RouteResolver answers name-based shortest-path queries on one network.
//
// The adjacency matrix is materialized once at construction; the network is
// read-only for the resolver's lifetime, so every query sees the same matrix.
// The resolver is safe for concurrent use.
type RouteResolver struct {
	network *domain.Network
	matrix  graph.AdjacencyMatrix
	cache   ports.RouteCache
	metrics *obs.PlannerMetrics
}

// NewRouteResolver builds a resolver; cache and metrics may be nil.
func NewRouteResolver(network *domain.Network, cache ports.RouteCache, metrics *obs.PlannerMetrics) (*RouteResolver, error) {
	if network == nil {
		return nil, errors.New("new route resolver: network is nil")
	}

	return &RouteResolver{
		network: network,
		matrix:  network.BuildAdjacencyMatrix(),
		cache:   cache,
		metrics: metrics,
	}, nil
}

func (r *RouteResolver) Network() *domain.Network { return r.network }

// Route returns the minimum-cost route from source to dest.
//
// The returned Locations exclude the source; callers that need it must
// prepend it. A self-route returns empty Locations and HopWeights.
// Unreachable destinations fail with *domain.NoPathError, unknown names with
// *domain.UnknownLocationError.
func (r *RouteResolver) Route(ctx context.Context, source, dest string) (_ domain.PathResult, err error) {
	ctx, span := tracer.Start(ctx, "resolver.Route", trace.WithAttributes(
		attribute.String("route.from", source),
		attribute.String("route.to", dest),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	src, err := r.network.ResolveIndex(source)
	if err != nil {
		return domain.PathResult{}, fmt.Errorf("route: resolve source: %w", err)
	}
	dst, err := r.network.ResolveIndex(dest)
	if err != nil {
		return domain.PathResult{}, fmt.Errorf("route: resolve destination: %w", err)
	}

	key := ports.RouteKey{Network: r.network.Fingerprint(), From: source, To: dest}

	// Check the route cache before running the search.
	if r.cache != nil {
		cached, ok, err := r.cache.Get(ctx, key)
		if err != nil {
			log.Printf("route cache read failed key=%s: %v", key, err)
		} else if ok {
			r.metrics.ObserveRoute(obs.RouteCacheHit)
			span.SetAttributes(attribute.Bool("route.cache_hit", true))
			return cached, nil
		}
	}

	dist, prev, err := graph.ShortestPaths(r.matrix, src)
	if err != nil {
		return domain.PathResult{}, fmt.Errorf("route: %w", err)
	}

	path, ok := graph.PathTo(dist, prev, dst)
	if !ok {
		r.metrics.ObserveRoute(obs.RouteNoPath)
		return domain.PathResult{}, &domain.NoPathError{From: source, To: dest}
	}

	result := domain.PathResult{
		Locations:  make([]domain.Location, 0, len(path)-1),
		HopWeights: r.matrix.HopWeights(path),
	}
	for _, i := range path[1:] {
		result.Locations = append(result.Locations, r.network.LocationAt(i))
	}
	r.metrics.ObserveRoute(obs.RouteComputed)

	if r.cache != nil {
		if err := r.cache.Put(ctx, key, result.Clone()); err != nil {
			log.Printf("route cache write failed key=%s: %v", key, err)
		}
	}

	return result, nil
}
