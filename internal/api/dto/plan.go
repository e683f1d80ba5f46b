package dto

type PlanRequest struct {
	FailurePolicy string           `json:"failure_policy"`
	Scenario      *ScenarioRequest `json:"scenario"`
}

type MovementEventResponse struct {
	CumulativeWeight uint64 `json:"cumulative_weight"`
	Vehicle          string `json:"vehicle"`
	From             string `json:"from"`
	CarriedAtFrom    string `json:"carried_at_from"`
	To               string `json:"to"`
	CarriedAtTo      string `json:"carried_at_to"`
}

type PlanResponse struct {
	Cargo       string                  `json:"cargo"`
	Vehicle     string                  `json:"vehicle"`
	TotalWeight uint64                  `json:"total_weight"`
	Events      []MovementEventResponse `json:"events"`
}

type SkippedCargoResponse struct {
	Cargo string `json:"cargo"`
	Error string `json:"error"`
}

type ListPlanResponse struct {
	RunID   string                 `json:"run_id"`
	Plans   []PlanResponse         `json:"plans"`
	Skipped []SkippedCargoResponse `json:"skipped"`
}
