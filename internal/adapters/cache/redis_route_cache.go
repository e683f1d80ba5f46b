package cache

import (
	"context"
	"errors"
	"fmt"
	"freight-route-service/internal/domain"
	"freight-route-service/internal/ports"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisKeyPrefix = "freight:route:"

// Redis backed cache for resolved routes.
// Entries expire after TTL; a zero TTL keeps them until evicted.
type RedisRouteCache struct {
	Client redis.UniversalClient
	Prefix string
	TTL    time.Duration
}

func NewRedisRouteCache(client redis.UniversalClient, ttl time.Duration) *RedisRouteCache {
	return &RedisRouteCache{Client: client, Prefix: defaultRedisKeyPrefix, TTL: ttl}
}

func (r *RedisRouteCache) key(k ports.RouteKey) string {
	return r.Prefix + k.String()
}

func (r *RedisRouteCache) Get(ctx context.Context, key ports.RouteKey) (domain.PathResult, bool, error) {
	if r.Client == nil {
		return domain.PathResult{}, false, errors.New("redis route cache: client is nil")
	}

	raw, err := r.Client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.PathResult{}, false, nil
	}
	if err != nil {
		return domain.PathResult{}, false, fmt.Errorf("get redis route cache key=%s: %w", key, err)
	}

	route, err := decodeRoute(raw)
	if err != nil {
		return domain.PathResult{}, false, fmt.Errorf("get redis route cache key=%s: %w", key, err)
	}
	return route, true, nil
}

func (r *RedisRouteCache) Put(ctx context.Context, key ports.RouteKey, route domain.PathResult) error {
	if r.Client == nil {
		return errors.New("redis route cache: client is nil")
	}

	raw, err := encodeRoute(route)
	if err != nil {
		return fmt.Errorf("put redis route cache: %w", err)
	}

	if err := r.Client.Set(ctx, r.key(key), raw, r.TTL).Err(); err != nil {
		return fmt.Errorf("put redis route cache key=%s: %w", key, err)
	}
	return nil
}
