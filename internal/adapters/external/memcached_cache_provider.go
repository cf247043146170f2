package external

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	stderrors "errors"
	"strings"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"weatherlookup.app/internal/config"
	"weatherlookup.app/pkg/errors"
)

const (
	maxMemcachedKeyLength = 250
	// memcached reads relative expirations above 30 days as unix timestamps
	maxMemcachedRelativeExpiration = 30 * 24 * time.Hour
)

// MemcachedCacheProvider implements CacheProvider on one or more memcached
// servers. Expiry is enforced by memcached itself.
type MemcachedCacheProvider struct {
	client *memcache.Client
}

func NewMemcachedCacheProvider(cfg *config.MemcachedConfig) (*MemcachedCacheProvider, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("memcached config cannot be nil", nil)
	}

	servers := make([]string, 0, len(cfg.Addrs))
	for _, addr := range cfg.Addrs {
		if addr = strings.TrimSpace(addr); addr != "" {
			servers = append(servers, addr)
		}
	}
	if len(servers) == 0 {
		return nil, errors.NewConfigurationError("memcached needs at least one server address", nil)
	}

	client := memcache.New(servers...)
	if timeout := cfg.Timeout(); timeout > 0 {
		client.Timeout = timeout
	}

	return &MemcachedCacheProvider{client: client}, nil
}

func (m *MemcachedCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.NewCacheUnavailableError("memcached get cancelled", err)
	}

	item, err := m.client.Get(memcachedKey(key))
	if err != nil {
		if stderrors.Is(err, memcache.ErrCacheMiss) {
			return nil, errors.NewNotFoundError("cache miss")
		}
		return nil, errors.NewCacheUnavailableError("memcached get operation failed", err)
	}

	return item.Value, nil
}

func (m *MemcachedCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}
	if ttl > maxMemcachedRelativeExpiration {
		return errors.NewValidationError("cache TTL cannot exceed 30 days for memcached")
	}
	if err := ctx.Err(); err != nil {
		return errors.NewCacheUnavailableError("memcached set cancelled", err)
	}

	err := m.client.Set(&memcache.Item{
		Key:        memcachedKey(key),
		Value:      value,
		Expiration: memcachedExpiration(ttl),
	})
	if err != nil {
		return errors.NewCacheUnavailableError("memcached set operation failed", err)
	}

	return nil
}

func (m *MemcachedCacheProvider) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	err := m.client.Delete(memcachedKey(key))
	if err != nil && !stderrors.Is(err, memcache.ErrCacheMiss) {
		return errors.NewCacheUnavailableError("memcached delete operation failed", err)
	}

	return nil
}

func (m *MemcachedCacheProvider) Ping(ctx context.Context) error {
	if err := m.client.Ping(); err != nil {
		return errors.NewCacheUnavailableError("memcached ping failed", err)
	}
	return nil
}

func (m *MemcachedCacheProvider) Close() error {
	if err := m.client.Close(); err != nil {
		return errors.NewCacheUnavailableError("failed to close memcached connections", err)
	}
	return nil
}

func (m *MemcachedCacheProvider) Name() string {
	return "memcached"
}

// memcachedKey returns key unchanged when memcached accepts it. Keys that are
// too long or contain spaces or control characters are replaced by a stable
// digest.
func memcachedKey(key string) string {
	if len(key) <= maxMemcachedKeyLength && isLegalMemcachedKey(key) {
		return key
	}
	sum := sha256.Sum256([]byte(key))
	return "sha256:" + hex.EncodeToString(sum[:])
}

func isLegalMemcachedKey(key string) bool {
	for i := 0; i < len(key); i++ {
		if key[i] <= ' ' || key[i] == 0x7f {
			return false
		}
	}
	return true
}

// memcachedExpiration converts ttl to whole seconds, rounding up so a
// sub-second TTL does not become 0 (never expire).
func memcachedExpiration(ttl time.Duration) int32 {
	seconds := int32(ttl / time.Second)
	if ttl%time.Second != 0 {
		seconds++
	}
	return seconds
}
