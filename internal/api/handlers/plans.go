package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"freight-route-service/internal/adapters/presenter"
	"freight-route-service/internal/api/dto"
	"freight-route-service/internal/domain"
	"freight-route-service/internal/platform/obs"
	"freight-route-service/internal/ports"
	"freight-route-service/internal/services"
	"io"
	"log"
	"net/http"
	"strings"
)

type PlanHandler struct {
	Repo    ports.ScenarioRepository
	Cache   ports.RouteCache
	Metrics *obs.PlannerMetrics
	Config  services.PlannerConfig
}

// Plan assigns a vehicle to every cargo item and returns the timelines.
// The body is optional; an inline scenario replaces the stored one.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req dto.PlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	res, err := h.run(r.Context(), req.FailurePolicy, req.Scenario)
	if err != nil {
		writeServiceError(w, r, "plan deliveries", err)
		return
	}

	out := dto.ListPlanResponse{
		RunID:   res.RunID,
		Plans:   make([]dto.PlanResponse, 0, len(res.Plans)),
		Skipped: make([]dto.SkippedCargoResponse, 0, len(res.Skipped)),
	}
	for _, p := range res.Plans {
		events := make([]dto.MovementEventResponse, 0, len(p.Events))
		for _, e := range p.Events {
			events = append(events, dto.MovementEventResponse{
				CumulativeWeight: e.CumulativeWeight,
				Vehicle:          e.Vehicle,
				From:             e.From,
				CarriedAtFrom:    e.CarriedAtFrom,
				To:               e.To,
				CarriedAtTo:      e.CarriedAtTo,
			})
		}

		out.Plans = append(out.Plans, dto.PlanResponse{
			Cargo:       p.Cargo.Name,
			Vehicle:     p.Vehicle.Name,
			TotalWeight: p.TotalWeight,
			Events:      events,
		})
	}
	for _, s := range res.Skipped {
		out.Skipped = append(out.Skipped, dto.SkippedCargoResponse{
			Cargo: s.Cargo.Name,
			Error: s.Err.Error(),
		})
	}

	writeJSON(w, r, http.StatusOK, out)
}

// PlanText plans the stored scenario and writes the plain-text timeline.
func (h *PlanHandler) PlanText(w http.ResponseWriter, r *http.Request) {
	res, err := h.run(r.Context(), r.URL.Query().Get("failure_policy"), nil)
	if err != nil {
		writeServiceError(w, r, "plan deliveries", err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := presenter.WritePlans(w, res.Plans); err != nil {
		log.Printf("write plans failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func (h *PlanHandler) run(
	ctx context.Context,
	policy string,
	inline *dto.ScenarioRequest,
) (*services.PlanResult, error) {
	cfg := h.Config
	if strings.TrimSpace(policy) != "" {
		p, err := services.ParseFailurePolicy(policy)
		if err != nil {
			return nil, badRequest(err.Error())
		}
		cfg.FailurePolicy = p
	}

	var (
		scenario *domain.Scenario
		err      error
	)
	if inline != nil {
		scenario, err = scenarioFromRequest(inline)
		if err != nil {
			return nil, badRequest("invalid scenario: " + err.Error())
		}
	} else {
		scenario, err = h.Repo.LoadScenario(ctx)
		if err != nil {
			return nil, err
		}
	}

	resolver, err := services.NewRouteResolver(scenario.Network, h.Cache, h.Metrics)
	if err != nil {
		return nil, err
	}
	planner, err := services.NewPlanner(resolver, cfg, h.Metrics)
	if err != nil {
		return nil, err
	}

	return planner.PlanDeliveries(ctx, scenario.Vehicles, scenario.Cargo)
}

func scenarioFromRequest(req *dto.ScenarioRequest) (*domain.Scenario, error) {
	locations := make([]domain.Location, 0, len(req.Locations))
	for _, l := range req.Locations {
		locations = append(locations, domain.Location{Name: strings.TrimSpace(l.Name)})
	}

	connections := make([]domain.Connection, 0, len(req.Connections))
	for _, c := range req.Connections {
		connections = append(connections, domain.Connection{
			Name:   c.Name,
			Weight: c.Weight,
			From:   strings.TrimSpace(c.From),
			To:     strings.TrimSpace(c.To),
		})
	}

	vehicles := make([]domain.Vehicle, 0, len(req.Vehicles))
	for _, v := range req.Vehicles {
		vehicles = append(vehicles, domain.Vehicle{
			Name:     v.Name,
			Capacity: v.Capacity,
			Start:    strings.TrimSpace(v.Start),
		})
	}

	cargo := make([]domain.CargoItem, 0, len(req.Cargo))
	for _, c := range req.Cargo {
		cargo = append(cargo, domain.CargoItem{
			Name:        c.Name,
			Weight:      c.Weight,
			Origin:      strings.TrimSpace(c.Origin),
			Destination: strings.TrimSpace(c.Destination),
		})
	}

	return domain.NewScenario(locations, connections, vehicles, cargo)
}
