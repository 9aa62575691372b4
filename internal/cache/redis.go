package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/apperrors"
)

// RedisStore persists cache records in Redis, for deployments where multiple
// backend instances share one cache. Entries do not expire; the watermark in
// each record bounds their staleness instead.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a RedisStore connecting to the given address.
func NewRedisStore(addr, password string, db int) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// Get returns the stored payload for key, if present.
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: redis get: %v", apperrors.ErrCacheUnavailable, err)
	}
	return val, true, nil
}

// Set stores payload under key, overwriting any previous value.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("%w: redis set: %v", apperrors.ErrCacheUnavailable, err)
	}
	return nil
}

// Ping verifies connectivity to the Redis server.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
