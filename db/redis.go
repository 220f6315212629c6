// api/db/redis.go
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pulsecollective/pulse/api/config"
	logger "github.com/pulsecollective/pulse/api/logging"
)

// Redis wraps the shared key-value store used by the cache-aside layer and
// the rate limiter. It is constructed once in main and injected into the
// middleware rather than reached for as a package global.
type Redis struct {
	client *redis.Client
}

func NewRedis(ctx context.Context) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.GetString("redis.addr"),
		Password: config.GetString("redis.password"),
		DB:       config.GetInt("redis.db"),
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := client.Ping(pingCtx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Successfully connected to Redis")
	return &Redis{client: client}, nil
}

func (r *Redis) Close() {
	if r == nil || r.client == nil {
		return
	}
	if err := r.client.Close(); err != nil {
		logger.Error("Error closing Redis connection", zap.Error(err))
	}
}

// Get returns the raw value for key. The second return is false on a miss.
func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	} else if err != nil {
		return "", false, fmt.Errorf("failed to get key from cache: %w", err)
	}
	return val, true, nil
}

func (r *Redis) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache key: %w", err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete keys from cache: %w", err)
	}
	return nil
}

// DeleteByPattern enumerates keys matching a glob pattern with SCAN and
// deletes them. Used by write routes to purge stale listing caches.
func (r *Redis) DeleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	var deleted int
	for {
		keys, next, err := r.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return fmt.Errorf("failed to scan cache keys: %w", err)
		}
		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete cache keys: %w", err)
			}
			deleted += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	logger.Debug("Cache invalidated",
		zap.String("pattern", pattern),
		zap.Int("deleted", deleted))
	return nil
}

// Increment bumps a fixed-window counter, setting the window expiry when the
// counter is first created. Returns the count within the current window.
func (r *Redis) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}
	return incr.Val(), nil
}

// Decrement refunds one slot in the window; used when a limiter is configured
// to skip successful requests.
func (r *Redis) Decrement(ctx context.Context, key string) error {
	if err := r.client.Decr(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to decrement rate limit counter: %w", err)
	}
	return nil
}
