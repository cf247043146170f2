package infrastructure

import (
	"context"
	"time"

	"weatherlookup.app/internal/ports"
)

const healthCheckTimeout = 2 * time.Second

// CacheHealthChecker pings the cache backend. An unreachable cache only
// degrades the service: lookups fall through to the provider.
type CacheHealthChecker struct {
	cache ports.CacheProvider
}

// NewCacheHealthChecker creates a new cache health checker
func NewCacheHealthChecker(cache ports.CacheProvider) *CacheHealthChecker {
	return &CacheHealthChecker{cache: cache}
}

// Check verifies cache backend connectivity
func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Details:   make(map[string]interface{}),
	}

	if c.cache == nil {
		status.Status = ports.HealthStatusUnhealthy
		status.Error = "cache provider is nil"
		return status
	}
	status.Details["backend"] = c.cache.Name()

	pingCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	if err := c.cache.Ping(pingCtx); err != nil {
		status.Status = ports.HealthStatusDegraded
		status.Error = err.Error()
		status.Details["connected"] = false
		return status
	}

	status.Status = ports.HealthStatusHealthy
	status.Details["connected"] = true
	return status
}
