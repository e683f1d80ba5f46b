package handlers

import (
	"freight-route-service/internal/api/dto"
	"freight-route-service/internal/platform/obs"
	"freight-route-service/internal/ports"
	"freight-route-service/internal/services"
	"net/http"
	"strings"
)

// RouteHandler answers single shortest-path queries on the stored network.
type RouteHandler struct {
	Repo    ports.ScenarioRepository
	Cache   ports.RouteCache
	Metrics *obs.PlannerMetrics
}

func (h *RouteHandler) Get(w http.ResponseWriter, r *http.Request) {
	from := strings.TrimSpace(r.URL.Query().Get("from"))
	to := strings.TrimSpace(r.URL.Query().Get("to"))
	if from == "" || to == "" {
		writeError(w, r, http.StatusBadRequest, "from and to query parameters are required")
		return
	}

	s, err := h.Repo.LoadScenario(r.Context())
	if err != nil {
		writeServiceError(w, r, "load scenario", err)
		return
	}

	resolver, err := services.NewRouteResolver(s.Network, h.Cache, h.Metrics)
	if err != nil {
		writeServiceError(w, r, "new route resolver", err)
		return
	}

	route, err := resolver.Route(r.Context(), from, to)
	if err != nil {
		writeServiceError(w, r, "resolve route", err)
		return
	}

	res := dto.RouteResponse{
		From:        from,
		To:          to,
		Locations:   make([]string, 0, len(route.Locations)),
		HopWeights:  append([]uint32{}, route.HopWeights...),
		TotalWeight: route.TotalWeight(),
	}
	for _, l := range route.Locations {
		res.Locations = append(res.Locations, l.Name)
	}

	writeJSON(w, r, http.StatusOK, res)
}
