package dto

type RouteResponse struct {
	From        string   `json:"from"`
	To          string   `json:"to"`
	Locations   []string `json:"locations"`
	HopWeights  []uint32 `json:"hop_weights"`
	TotalWeight uint64   `json:"total_weight"`
}
