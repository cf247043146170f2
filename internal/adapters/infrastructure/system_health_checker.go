package infrastructure

import (
	"context"

	"weatherlookup.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	cacheChecker    ports.HealthChecker
	providerChecker ports.HealthChecker
	configProvider  ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	CacheChecker    ports.HealthChecker
	ProviderChecker ports.HealthChecker
	ConfigProvider  ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		cacheChecker:    config.CacheChecker,
		providerChecker: config.ProviderChecker,
		configProvider:  config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)

	if s.cacheChecker != nil {
		results["cache"] = s.cacheChecker.Check(ctx)
	}

	if s.providerChecker != nil {
		results["weatherProvider"] = s.providerChecker.Check(ctx)
	}

	if s.configProvider != nil {
		weatherConfig := s.configProvider.GetWeatherConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    ports.HealthStatusHealthy,
			Details: map[string]interface{}{
				"cacheType":        s.configProvider.GetCacheConfig().Type,
				"cacheTTL":         weatherConfig.CacheTTL.String(),
				"coalesceRequests": weatherConfig.CoalesceRequests,
			},
		}
	}

	return results
}

// OverallStatus folds component results: any unhealthy component makes the
// system unhealthy, otherwise any degraded one makes it degraded
func OverallStatus(results map[string]ports.HealthStatus) string {
	overall := ports.HealthStatusHealthy
	for _, result := range results {
		switch result.Status {
		case ports.HealthStatusUnhealthy:
			return ports.HealthStatusUnhealthy
		case ports.HealthStatusDegraded:
			overall = ports.HealthStatusDegraded
		}
	}
	return overall
}
