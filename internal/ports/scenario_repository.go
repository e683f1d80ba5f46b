package ports

import (
	"context"
	"freight-route-service/internal/domain"
)

// Port: a boundary for loading the static planning input from a data source.
type ScenarioRepository interface {
	// Load the network, fleet and cargo list. Cargo order is preserved.
	LoadScenario(ctx context.Context) (*domain.Scenario, error)
}
