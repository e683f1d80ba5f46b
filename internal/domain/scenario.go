package domain

import (
	"fmt"
)

// Scenario bundles everything one planning run consumes.
// Cargo order is significant: plans are produced in the same order.
type Scenario struct {
	Network  *Network
	Vehicles []Vehicle
	Cargo    []CargoItem
}

// NewScenario builds the network and checks that every vehicle start and
// cargo endpoint names a known location. Any UnknownLocationError is fatal
// for the whole run, so it is reported here before planning starts.
func NewScenario(
	locations []Location,
	connections []Connection,
	vehicles []Vehicle,
	cargo []CargoItem,
) (*Scenario, error) {
	network, err := NewNetwork(locations, connections)
	if err != nil {
		return nil, fmt.Errorf("new scenario: %w", err)
	}

	for _, v := range vehicles {
		if _, err := network.ResolveIndex(v.Start); err != nil {
			return nil, fmt.Errorf("new scenario: vehicle %q start: %w", v.Name, err)
		}
	}

	for _, c := range cargo {
		if _, err := network.ResolveIndex(c.Origin); err != nil {
			return nil, fmt.Errorf("new scenario: cargo %q origin: %w", c.Name, err)
		}
		if _, err := network.ResolveIndex(c.Destination); err != nil {
			return nil, fmt.Errorf("new scenario: cargo %q destination: %w", c.Name, err)
		}
	}

	return &Scenario{
		Network:  network,
		Vehicles: append([]Vehicle(nil), vehicles...),
		Cargo:    append([]CargoItem(nil), cargo...),
	}, nil
}
