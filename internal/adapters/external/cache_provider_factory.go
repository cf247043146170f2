package external

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"weatherlookup.app/internal/config"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

type CacheProviderFactory struct {
	clock clockwork.Clock
}

func NewCacheProviderFactory(clock clockwork.Clock) *CacheProviderFactory {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &CacheProviderFactory{clock: clock}
}

func (f *CacheProviderFactory) CreateCacheProvider(cfg *config.CacheConfig) (ports.CacheProvider, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("cache config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.CacheTypeMemory:
		return NewMemoryCacheProvider(f.clock), nil
	case config.CacheTypeRedis:
		return NewRedisCacheProvider(&cfg.Redis)
	case config.CacheTypeMemcached:
		return NewMemcachedCacheProvider(&cfg.Memcached)
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported cache type: %s", cfg.Type.String()), nil)
	}
}
