package cache

import (
	"context"
	"freight-route-service/internal/domain"
	"freight-route-service/internal/ports"
	"sync"
)

const defaultMemoryRouteCacheLimit = 4096

// In-process route cache. Safe for concurrent use.
// Holds at most limit entries; the oldest inserted entry is evicted first.
type MemoryRouteCache struct {
	mu     sync.RWMutex
	limit  int
	routes map[ports.RouteKey]domain.PathResult
	order  []ports.RouteKey
}

func NewMemoryRouteCache() *MemoryRouteCache {
	return NewMemoryRouteCacheWithLimit(defaultMemoryRouteCacheLimit)
}

// NewMemoryRouteCacheWithLimit bounds the cache to limit entries; limit <= 0 uses the default.
func NewMemoryRouteCacheWithLimit(limit int) *MemoryRouteCache {
	if limit <= 0 {
		limit = defaultMemoryRouteCacheLimit
	}
	return &MemoryRouteCache{
		limit:  limit,
		routes: make(map[ports.RouteKey]domain.PathResult),
	}
}

func (m *MemoryRouteCache) Get(_ context.Context, key ports.RouteKey) (domain.PathResult, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.routes[key]
	if !ok {
		return domain.PathResult{}, false, nil
	}
	return r.Clone(), true, nil
}

func (m *MemoryRouteCache) Put(_ context.Context, key ports.RouteKey, route domain.PathResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.routes[key]; !ok {
		for len(m.order) >= m.limit {
			delete(m.routes, m.order[0])
			m.order = m.order[1:]
		}
		m.order = append(m.order, key)
	}

	m.routes[key] = route.Clone()
	return nil
}

func (m *MemoryRouteCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.routes)
}
