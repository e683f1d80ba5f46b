package dto

type LocationRequest struct {
	Name string `json:"name"`
}

type ConnectionRequest struct {
	Name   string `json:"name"`
	Weight uint32 `json:"weight"`
	From   string `json:"from"`
	To     string `json:"to"`
}

type VehicleRequest struct {
	Name     string `json:"name"`
	Capacity uint32 `json:"capacity"`
	Start    string `json:"start"`
}

type CargoRequest struct {
	Name        string `json:"name"`
	Weight      uint32 `json:"weight"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// ScenarioRequest is an inline scenario submitted with a plan request.
type ScenarioRequest struct {
	Locations   []LocationRequest   `json:"locations"`
	Connections []ConnectionRequest `json:"connections"`
	Vehicles    []VehicleRequest    `json:"vehicles"`
	Cargo       []CargoRequest      `json:"cargo"`
}

type ConnectionResponse struct {
	Name   string `json:"name"`
	Weight uint32 `json:"weight"`
	From   string `json:"from"`
	To     string `json:"to"`
}

type NetworkResponse struct {
	Fingerprint string               `json:"fingerprint"`
	Locations   []string             `json:"locations"`
	Connections []ConnectionResponse `json:"connections"`
}
