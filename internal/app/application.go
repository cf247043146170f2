package app

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherlookup.app/internal/adapters/api"
	"weatherlookup.app/internal/config"
	"weatherlookup.app/internal/core/weather"
	"weatherlookup.app/internal/ports"
)

type Application struct {
	config *config.Config
	logger *slog.Logger

	weatherUseCase *weather.UseCase

	httpServer *http.Server
	router     *gin.Engine

	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

// NewApplication wires the application from cfg. Every component logs
// through logger.
func NewApplication(cfg *config.Config, logger *slog.Logger) (*Application, error) {
	return NewApplicationWithOptions(cfg, logger, DependencyOptions{})
}

// NewApplicationWithOptions is NewApplication with overridable collaborators
func NewApplicationWithOptions(cfg *config.Config, logger *slog.Logger, opts DependencyOptions) (*Application, error) {
	if logger == nil {
		logger = slog.Default()
	}

	deps, err := NewDependencyContainer(cfg, logger, opts)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app := &Application{
		config: cfg,
		logger: logger,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		_ = deps.Close()
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		_ = deps.Close()
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Fetcher: a.ports.WeatherFetcher,
		Cache:   a.ports.SnapshotCache,
		Config:  a.ports.ConfigProvider,
		Logger:  a.ports.Logger,
		Metrics: a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase
	return nil
}

func (a *Application) initializeAdapters() error {
	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		WeatherUseCase: a.weatherUseCase,
		HealthChecker:  a.deps.HealthChecker(),
		MetricsHandler: promhttp.HandlerFor(a.deps.Registry(), promhttp.HandlerOpts{}),
		Logger:         a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  time.Duration(a.config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(a.config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return nil
}

// Start serves HTTP until Shutdown is called
func (a *Application) Start(ctx context.Context) error {
	a.logger.Info("Starting HTTP server",
		"port", a.config.Server.Port,
		"cache_type", a.config.Cache.Type.String(),
		"cache_ttl", a.config.Weather.CacheTTL().String())

	if err := a.httpServer.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

// Shutdown drains in-flight requests, then closes the cache backend
func (a *Application) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Close(); err != nil {
		a.logger.Warn("Error closing cache backend", "error", err)
	}

	a.logger.Info("Application shutdown complete")
	return nil
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}
