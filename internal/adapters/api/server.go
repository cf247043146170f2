// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherlookup.app/internal/core/weather"
	"weatherlookup.app/internal/models"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

// HTTPServerAdapter routes HTTP requests to the weather lookup use case
type HTTPServerAdapter struct {
	router         *gin.Engine
	weatherUseCase WeatherUseCase
	healthChecker  ports.SystemHealthChecker
	logger         ports.Logger
}

// WeatherUseCase is the use case the HTTP adapter depends on
type WeatherUseCase interface {
	Lookup(ctx context.Context, request weather.LookupRequest) (*models.WeatherSnapshot, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	WeatherUseCase WeatherUseCase
	HealthChecker  ports.SystemHealthChecker
	MetricsHandler http.Handler
	Logger         ports.Logger
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if err := RegisterValidators(); err != nil {
		return nil, errors.NewConfigurationError("register request validators", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), RequestIDMiddleware(), RequestLoggerMiddleware(opts.Logger))

	server := &HTTPServerAdapter{
		router:         router,
		weatherUseCase: opts.WeatherUseCase,
		healthChecker:  opts.HealthChecker,
		logger:         opts.Logger,
	}

	server.setupRoutes(opts.MetricsHandler)
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.MetricsHandler == nil {
		return errors.NewValidationError("metrics handler is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

func (s *HTTPServerAdapter) setupRoutes(metricsHandler http.Handler) {
	api := s.router.Group("/api")
	{
		api.GET("/weather", s.getWeather)
	}

	// Path-parameter alias of /api/weather with the same snapshot body
	s.router.GET("/weatherAPI/v1/getWeather/:city", s.getWeatherByPath)

	s.router.GET("/health", s.getHealth)
	s.router.GET("/metrics", gin.WrapH(metricsHandler))
}

// GetRouter returns the router
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
