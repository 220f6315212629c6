// api/middleware/stores.go
package middleware

import (
	"context"
	"time"
)

// CacheStore is the key-value contract the cache-aside layer needs. db.Redis
// satisfies it in production; tests plug in an in-memory map.
type CacheStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// CounterStore backs the rate limiter's fixed-window counters.
type CounterStore interface {
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
	Decrement(ctx context.Context, key string) error
}
