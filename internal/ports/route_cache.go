package ports

import (
	"context"
	"fmt"
	"freight-route-service/internal/domain"
)

// Identifies one shortest-path query against a specific network.
type RouteKey struct {
	Network uint64
	From    string
	To      string
}

// String renders the key as "<network hex>:<len(from)>:<from>:<to>".
// The length prefix keeps the encoding unambiguous for names containing ':'.
func (k RouteKey) String() string {
	return fmt.Sprintf("%016x:%d:%s:%s", k.Network, len(k.From), k.From, k.To)
}

// Optional read-through cache for resolved routes.
// Implementations must return copies; callers may append to the result.
type RouteCache interface {
	// Return the cached route and whether it was present.
	Get(ctx context.Context, key RouteKey) (domain.PathResult, bool, error)
	// Store a resolved route.
	Put(ctx context.Context, key RouteKey, route domain.PathResult) error
}
