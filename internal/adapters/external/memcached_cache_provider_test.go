package external

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherlookup.app/internal/config"
	"weatherlookup.app/pkg/errors"
)

func TestNewMemcachedCacheProvider(t *testing.T) {
	t.Run("NilConfig", func(t *testing.T) {
		provider, err := NewMemcachedCacheProvider(nil)
		assert.Nil(t, provider)
		assert.True(t, errors.IsConfigurationError(err))
	})

	t.Run("NoServers", func(t *testing.T) {
		provider, err := NewMemcachedCacheProvider(&config.MemcachedConfig{Addrs: []string{" ", ""}, TimeoutMs: 100})
		assert.Nil(t, provider)
		assert.True(t, errors.IsConfigurationError(err))
	})

	t.Run("Valid", func(t *testing.T) {
		provider, err := NewMemcachedCacheProvider(&config.MemcachedConfig{Addrs: []string{"localhost:11211"}, TimeoutMs: 100})
		require.NoError(t, err)
		assert.Equal(t, "memcached", provider.Name())
	})
}

func TestMemcachedCacheProvider_UnreachableServer(t *testing.T) {
	provider, err := NewMemcachedCacheProvider(&config.MemcachedConfig{
		Addrs:     []string{"127.0.0.1:1"},
		TimeoutMs: 100,
	})
	require.NoError(t, err)
	ctx := context.Background()

	_, err = provider.Get(ctx, "weather:London")
	assert.True(t, errors.IsCacheUnavailableError(err))
	assert.False(t, errors.IsNotFoundError(err))

	err = provider.Set(ctx, "weather:London", []byte(`{}`), time.Minute)
	assert.True(t, errors.IsCacheUnavailableError(err))

	assert.True(t, errors.IsCacheUnavailableError(provider.Ping(ctx)))
}

func TestMemcachedCacheProvider_InvalidArguments(t *testing.T) {
	provider, err := NewMemcachedCacheProvider(&config.MemcachedConfig{Addrs: []string{"127.0.0.1:1"}, TimeoutMs: 100})
	require.NoError(t, err)
	ctx := context.Background()

	_, err = provider.Get(ctx, "")
	assert.True(t, errors.IsValidationError(err))
	assert.True(t, errors.IsValidationError(provider.Set(ctx, "k", nil, time.Minute)))
	assert.True(t, errors.IsValidationError(provider.Set(ctx, "k", []byte("v"), 0)))
	assert.True(t, errors.IsValidationError(provider.Set(ctx, "k", []byte("v"), 31*24*time.Hour)))
	assert.True(t, errors.IsValidationError(provider.Delete(ctx, "")))
}

func TestMemcachedCacheProvider_CancelledContext(t *testing.T) {
	provider, err := NewMemcachedCacheProvider(&config.MemcachedConfig{Addrs: []string{"127.0.0.1:1"}, TimeoutMs: 100})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = provider.Get(ctx, "weather:London")
	assert.True(t, errors.IsCacheUnavailableError(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemcachedKey(t *testing.T) {
	assert.Equal(t, "weather:London", memcachedKey("weather:London"))

	spaced := memcachedKey("weather:New York")
	assert.True(t, strings.HasPrefix(spaced, "sha256:"))
	assert.Equal(t, spaced, memcachedKey("weather:New York"), "digest is stable")
	assert.NotEqual(t, spaced, memcachedKey("weather:New Jersey"))

	long := memcachedKey("weather:" + strings.Repeat("a", 300))
	assert.True(t, strings.HasPrefix(long, "sha256:"))
	assert.LessOrEqual(t, len(long), maxMemcachedKeyLength)

	assert.True(t, strings.HasPrefix(memcachedKey("weather:Lon\x7fdon"), "sha256:"))
}

func TestMemcachedExpiration(t *testing.T) {
	tests := []struct {
		ttl      time.Duration
		expected int32
	}{
		{60 * time.Minute, 3600},
		{time.Second, 1},
		{1500 * time.Millisecond, 2},
		{time.Millisecond, 1},
	}

	for _, tt := range tests {
		t.Run(tt.ttl.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, memcachedExpiration(tt.ttl))
		})
	}
}
