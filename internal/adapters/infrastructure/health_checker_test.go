package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"weatherlookup.app/internal/mocks"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

type stubBreaker struct {
	state string
}

func (s stubBreaker) Name() string         { return "weatherapi" }
func (s stubBreaker) BreakerState() string { return s.state }

func TestCacheHealthChecker(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		cache := mocks.NewCacheProvider(t)
		cache.EXPECT().Name().Return("redis")
		cache.EXPECT().Ping(mock.Anything).Return(nil).Once()

		status := NewCacheHealthChecker(cache).Check(context.Background())

		assert.Equal(t, ports.HealthStatusHealthy, status.Status)
		assert.Equal(t, "redis", status.Details["backend"])
		assert.Equal(t, true, status.Details["connected"])
	})

	t.Run("UnreachableIsDegraded", func(t *testing.T) {
		cache := mocks.NewCacheProvider(t)
		cache.EXPECT().Name().Return("redis")
		cache.EXPECT().Ping(mock.Anything).Return(errors.NewCacheUnavailableError("redis ping failed", nil)).Once()

		status := NewCacheHealthChecker(cache).Check(context.Background())

		assert.Equal(t, ports.HealthStatusDegraded, status.Status)
		assert.Contains(t, status.Error, "redis ping failed")
	})

	t.Run("PingIsBounded", func(t *testing.T) {
		cache := mocks.NewCacheProvider(t)
		cache.EXPECT().Name().Return("memcached")
		cache.EXPECT().Ping(mock.Anything).Run(func(ctx context.Context) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(healthCheckTimeout), deadline, time.Second)
		}).Return(nil).Once()

		NewCacheHealthChecker(cache).Check(context.Background())
	})

	t.Run("NilProvider", func(t *testing.T) {
		status := NewCacheHealthChecker(nil).Check(context.Background())
		assert.Equal(t, ports.HealthStatusUnhealthy, status.Status)
	})
}

func TestProviderHealthChecker(t *testing.T) {
	tests := []struct {
		state    string
		expected string
	}{
		{"closed", ports.HealthStatusHealthy},
		{"half-open", ports.HealthStatusDegraded},
		{"open", ports.HealthStatusUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			status := NewProviderHealthChecker(stubBreaker{state: tt.state}).Check(context.Background())
			assert.Equal(t, tt.expected, status.Status)
			assert.Equal(t, tt.state, status.Details["circuit"])
		})
	}

	assert.Equal(t, ports.HealthStatusUnhealthy, NewProviderHealthChecker(nil).Check(context.Background()).Status)
}

func TestSystemHealthChecker_CheckAll(t *testing.T) {
	cache := mocks.NewCacheProvider(t)
	cache.EXPECT().Name().Return("memory")
	cache.EXPECT().Ping(mock.Anything).Return(nil)

	configProvider := mocks.NewConfigProvider(t)
	configProvider.EXPECT().GetWeatherConfig().Return(ports.WeatherConfig{CacheTTL: time.Hour})
	configProvider.EXPECT().GetCacheConfig().Return(ports.CacheConfig{Type: "memory"})

	checker := NewSystemHealthChecker(SystemHealthCheckerConfig{
		CacheChecker:    NewCacheHealthChecker(cache),
		ProviderChecker: NewProviderHealthChecker(stubBreaker{state: "closed"}),
		ConfigProvider:  configProvider,
	})

	results := checker.CheckAll(context.Background())

	assert.Len(t, results, 3)
	assert.Equal(t, ports.HealthStatusHealthy, results["cache"].Status)
	assert.Equal(t, ports.HealthStatusHealthy, results["weatherProvider"].Status)
	assert.Equal(t, "1h0m0s", results["config"].Details["cacheTTL"])
	assert.Equal(t, ports.HealthStatusHealthy, OverallStatus(results))
}

func TestOverallStatus(t *testing.T) {
	healthy := ports.HealthStatus{Status: ports.HealthStatusHealthy}
	degraded := ports.HealthStatus{Status: ports.HealthStatusDegraded}
	unhealthy := ports.HealthStatus{Status: ports.HealthStatusUnhealthy}

	assert.Equal(t, ports.HealthStatusHealthy, OverallStatus(map[string]ports.HealthStatus{}))
	assert.Equal(t, ports.HealthStatusDegraded, OverallStatus(map[string]ports.HealthStatus{"a": healthy, "b": degraded}))
	assert.Equal(t, ports.HealthStatusUnhealthy, OverallStatus(map[string]ports.HealthStatus{"a": degraded, "b": unhealthy}))
}
