// Package cache holds the Redis-backed favorite-count cache. All methods are
// nil-safe and degrade to cache misses when Redis is unreachable, so the API
// keeps serving counts straight from the store.
package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const countKeyPrefix = "restaurant:favorite_count:"

type FavoriteCountCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewFavoriteCountCache(rdb *redis.Client, ttl time.Duration) *FavoriteCountCache {
	return &FavoriteCountCache{
		rdb: rdb,
		ttl: ttl,
	}
}

func (c *FavoriteCountCache) key(restaurantId uuid.UUID) string {
	return countKeyPrefix + restaurantId.String()
}

func (c *FavoriteCountCache) Get(ctx context.Context, restaurantId uuid.UUID) (int64, bool) {
	if c == nil || c.rdb == nil {
		return 0, false
	}
	count, err := c.rdb.Get(ctx, c.key(restaurantId)).Int64()
	if err != nil {
		return 0, false
	}
	return count, true
}

func (c *FavoriteCountCache) Set(ctx context.Context, restaurantId uuid.UUID, count int64) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Set(ctx, c.key(restaurantId), count, c.ttl)
}

// Invalidate drops the cached count so the next detail read recomputes it.
func (c *FavoriteCountCache) Invalidate(ctx context.Context, restaurantId uuid.UUID) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, c.key(restaurantId)).Err()
}
