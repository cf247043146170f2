package infrastructure

import (
	"context"

	"weatherlookup.app/internal/ports"
)

// BreakerStateReporter is implemented by fetchers guarded by a circuit breaker
type BreakerStateReporter interface {
	Name() string
	BreakerState() string
}

// ProviderHealthChecker reports the upstream provider's circuit state without
// calling the provider
type ProviderHealthChecker struct {
	provider BreakerStateReporter
}

// NewProviderHealthChecker creates a new provider health checker
func NewProviderHealthChecker(provider BreakerStateReporter) *ProviderHealthChecker {
	return &ProviderHealthChecker{provider: provider}
}

// Check maps closed to healthy, half-open to degraded and open to unhealthy
func (p *ProviderHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherProvider",
		Details:   make(map[string]interface{}),
	}

	if p.provider == nil {
		status.Status = ports.HealthStatusUnhealthy
		status.Error = "weather provider is not available"
		return status
	}

	state := p.provider.BreakerState()
	status.Details["provider"] = p.provider.Name()
	status.Details["circuit"] = state

	switch state {
	case "closed":
		status.Status = ports.HealthStatusHealthy
	case "half-open":
		status.Status = ports.HealthStatusDegraded
	default:
		status.Status = ports.HealthStatusUnhealthy
		status.Error = "weather provider circuit is " + state
	}

	return status
}
