package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherlookup.app/internal/adapters/infrastructure"
	"weatherlookup.app/internal/ports"
)

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// getHealth reports 503 only when a component is unhealthy; a degraded cache
// still serves lookups through the provider
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())
	overall := infrastructure.OverallStatus(results)

	statusCode := http.StatusOK
	if overall == ports.HealthStatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, HealthResponse{Status: overall, Components: results})
}
