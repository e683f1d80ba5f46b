package handlers

import (
	"fmt"
	"freight-route-service/internal/api/dto"
	"freight-route-service/internal/ports"
	"net/http"
)

// NetworkHandler exposes the stored transport network.
type NetworkHandler struct {
	Repo ports.ScenarioRepository
}

func (h *NetworkHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.Repo.LoadScenario(r.Context())
	if err != nil {
		writeServiceError(w, r, "load network", err)
		return
	}

	res := dto.NetworkResponse{
		Fingerprint: fmt.Sprintf("%016x", s.Network.Fingerprint()),
		Locations:   make([]string, 0, s.Network.Len()),
		Connections: make([]dto.ConnectionResponse, 0),
	}
	for _, l := range s.Network.Locations() {
		res.Locations = append(res.Locations, l.Name)
	}
	for _, c := range s.Network.Connections() {
		res.Connections = append(res.Connections, dto.ConnectionResponse{
			Name:   c.Name,
			Weight: c.Weight,
			From:   c.From,
			To:     c.To,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
