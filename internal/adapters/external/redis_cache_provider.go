package external

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/go-redis/redis/v8"
	"weatherlookup.app/internal/config"
	"weatherlookup.app/pkg/errors"
)

// RedisCacheProvider implements CacheProvider on Redis. Expiry is delegated to
// Redis through SET with a TTL, which is atomic per key.
type RedisCacheProvider struct {
	client *redis.Client
}

// NewRedisCacheProvider creates a Redis-backed cache provider. The connection
// is not checked here; an unreachable server surfaces as CacheUnavailable on
// first use.
func NewRedisCacheProvider(config *config.RedisConfig) (*RedisCacheProvider, error) {
	if config == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  time.Duration(config.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.WriteTimeout) * time.Second,
	})

	return NewRedisCacheProviderWithClient(client), nil
}

// NewRedisCacheProviderWithClient wraps an existing client
func NewRedisCacheProviderWithClient(client *redis.Client) *RedisCacheProvider {
	return &RedisCacheProvider{client: client}
}

// Get retrieves a value from Redis cache
func (r *RedisCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return nil, errors.NewNotFoundError("cache miss")
		}
		return nil, errors.NewCacheUnavailableError("redis get operation failed", err)
	}

	return val, nil
}

// Set stores a value in Redis cache with TTL
func (r *RedisCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.NewCacheUnavailableError("redis set operation failed", err)
	}

	return nil
}

// Delete removes a value from Redis cache
func (r *RedisCacheProvider) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return errors.NewCacheUnavailableError("redis delete operation failed", err)
	}

	return nil
}

// Ping checks if Redis connection is alive
func (r *RedisCacheProvider) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewCacheUnavailableError("redis ping failed", err)
	}
	return nil
}

// Close closes the Redis client connection
func (r *RedisCacheProvider) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewCacheUnavailableError("failed to close Redis connection", err)
	}
	return nil
}

func (r *RedisCacheProvider) Name() string {
	return "redis"
}
