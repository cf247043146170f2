package external

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"weatherlookup.app/pkg/errors"
)

// MemoryCacheProvider is a process-local CacheProvider. Expired entries are
// evicted passively when read.
type MemoryCacheProvider struct {
	clock clockwork.Clock
	data  map[string]memoryCacheItem
	mutex sync.RWMutex
}

type memoryCacheItem struct {
	data      []byte
	expiresAt time.Time
}

func NewMemoryCacheProvider(clock clockwork.Clock) *MemoryCacheProvider {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &MemoryCacheProvider{
		clock: clock,
		data:  make(map[string]memoryCacheItem),
	}
}

func (c *MemoryCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.RLock()
	item, exists := c.data[key]
	c.mutex.RUnlock()

	if !exists {
		return nil, errors.NewNotFoundError("cache miss")
	}

	if !c.clock.Now().Before(item.expiresAt) {
		c.evict(key, item.expiresAt)
		return nil, errors.NewNotFoundError("cache miss")
	}

	return item.data, nil
}

func (c *MemoryCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = memoryCacheItem{
		data:      stored,
		expiresAt: c.clock.Now().Add(ttl),
	}

	return nil
}

func (c *MemoryCacheProvider) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

// Ping always succeeds; the map lives in this process.
func (c *MemoryCacheProvider) Ping(ctx context.Context) error {
	return nil
}

func (c *MemoryCacheProvider) Close() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data = make(map[string]memoryCacheItem)
	return nil
}

func (c *MemoryCacheProvider) Name() string {
	return "memory"
}

// Len returns the number of stored entries, expired ones included
func (c *MemoryCacheProvider) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// evict removes key only if it still holds the expired entry that was read;
// a concurrent Set in between wins.
func (c *MemoryCacheProvider) evict(key string, expiresAt time.Time) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if item, exists := c.data[key]; exists && item.expiresAt.Equal(expiresAt) {
		delete(c.data, key)
	}
}
