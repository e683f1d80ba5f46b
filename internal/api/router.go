package api

import (
	"freight-route-service/internal/api/handlers"
	"freight-route-service/internal/platform/obs"
	"freight-route-service/internal/ports"
	"freight-route-service/internal/services"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// cache and metrics may be nil.
func NewRouter(
	repo ports.ScenarioRepository,
	cache ports.RouteCache,
	metrics *obs.PlannerMetrics,
	plannerCfg services.PlannerConfig,
) http.Handler {
	r := chi.NewRouter()
	r.Use(loggingMiddleware)

	networkHandler := &handlers.NetworkHandler{Repo: repo}
	routeHandler := &handlers.RouteHandler{Repo: repo, Cache: cache, Metrics: metrics}
	planHandler := &handlers.PlanHandler{
		Repo:    repo,
		Cache:   cache,
		Metrics: metrics,
		Config:  plannerCfg,
	}

	r.Get("/health", handlers.Health)
	r.Get("/network", networkHandler.Get)
	r.Get("/routes", routeHandler.Get)
	r.Post("/plans", planHandler.Plan)
	r.Get("/plans/text", planHandler.PlanText)

	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	return r
}
