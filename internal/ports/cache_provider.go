package ports

import (
	"context"
	"time"
)

// CacheProvider defines the contract for byte-level cache backends.
// Get reports a missing or expired key as a NotFound AppError and an
// unreachable backend as a CacheUnavailable AppError.
type CacheProvider interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
	Name() string
}
