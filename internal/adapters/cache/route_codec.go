package cache

import (
	"encoding/json"
	"fmt"
	"freight-route-service/internal/domain"
)

// storedRoute is the persisted form of a PathResult.
type storedRoute struct {
	Locations  []string `json:"locations"`
	HopWeights []uint32 `json:"hop_weights"`
}

func encodeRoute(r domain.PathResult) ([]byte, error) {
	s := storedRoute{
		Locations:  make([]string, 0, len(r.Locations)),
		HopWeights: append([]uint32{}, r.HopWeights...),
	}
	for _, l := range r.Locations {
		s.Locations = append(s.Locations, l.Name)
	}

	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode route: %w", err)
	}
	return b, nil
}

func decodeRoute(b []byte) (domain.PathResult, error) {
	var s storedRoute
	if err := json.Unmarshal(b, &s); err != nil {
		return domain.PathResult{}, fmt.Errorf("decode route: %w", err)
	}
	if len(s.Locations) != len(s.HopWeights) {
		return domain.PathResult{}, fmt.Errorf(
			"decode route: %d locations but %d hop weights",
			len(s.Locations), len(s.HopWeights),
		)
	}

	out := domain.PathResult{
		Locations:  make([]domain.Location, 0, len(s.Locations)),
		HopWeights: append([]uint32{}, s.HopWeights...),
	}
	for _, n := range s.Locations {
		out.Locations = append(out.Locations, domain.Location{Name: n})
	}
	return out, nil
}
