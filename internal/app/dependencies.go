package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"weatherlookup.app/internal/adapters/external"
	"weatherlookup.app/internal/adapters/infrastructure"
	"weatherlookup.app/internal/config"
	"weatherlookup.app/internal/ports"
)

const startupPingTimeout = 5 * time.Second

type DependencyContainer struct {
	config   *config.Config
	logger   *infrastructure.SlogLoggerAdapter
	registry *prometheus.Registry
	clock    clockwork.Clock

	cacheProvider ports.CacheProvider
	fetcher       *external.WeatherAPIFetcher
	health        *infrastructure.SystemHealthChecker
	ports         *ports.ApplicationPorts
}

// DependencyOptions overrides collaborators that tests need to control
type DependencyOptions struct {
	Clock      clockwork.Clock
	HTTPClient external.HTTPClient
}

func NewDependencyContainer(cfg *config.Config, logger *slog.Logger, opts DependencyOptions) (*DependencyContainer, error) {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}

	container := &DependencyContainer{
		config:   cfg,
		logger:   infrastructure.NewSlogLoggerAdapter(logger),
		registry: prometheus.NewRegistry(),
		clock:    opts.Clock,
	}

	if err := container.initializeCache(); err != nil {
		return nil, fmt.Errorf("initialize cache: %w", err)
	}

	if err := container.initializePorts(opts.HTTPClient); err != nil {
		_ = container.cacheProvider.Close()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeCache() error {
	factory := external.NewCacheProviderFactory(c.clock)
	provider, err := factory.CreateCacheProvider(&c.config.Cache)
	if err != nil {
		return fmt.Errorf("create cache provider: %w", err)
	}
	c.cacheProvider = provider

	// An unreachable cache only costs hit rate, so startup continues
	ctx, cancel := context.WithTimeout(context.Background(), startupPingTimeout)
	defer cancel()
	if err := provider.Ping(ctx); err != nil {
		c.logger.Warn("Cache backend unreachable, lookups will go to the provider",
			ports.F("type", provider.Name()),
			ports.F("error", err))
	}

	c.logger.Info("Cache provider initialized", ports.F("type", provider.Name()))
	return nil
}

func (c *DependencyContainer) initializePorts(client external.HTTPClient) error {
	weatherCfg := c.config.Weather

	fetcher, err := external.NewWeatherAPIFetcher(external.WeatherAPIFetcherParams{
		APIKey:             weatherCfg.APIKey,
		BaseURL:            weatherCfg.BaseURL,
		Timeout:            weatherCfg.Timeout(),
		BreakerMaxFailures: uint32(weatherCfg.BreakerMaxFailures),
		BreakerOpenTimeout: time.Duration(weatherCfg.BreakerOpenSeconds) * time.Second,
		Client:             client,
		Logger:             c.logger,
	})
	if err != nil {
		return fmt.Errorf("create weather fetcher: %w", err)
	}
	c.fetcher = fetcher

	var weatherFetcher ports.WeatherFetcher = fetcher
	if weatherCfg.EnableLogging {
		weatherFetcher = external.NewFetcherLoggingDecorator(fetcher, c.logger)
		c.logger.Info("Weather provider logging enabled")
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := infrastructure.NewPrometheusMetrics(c.registry, c.cacheProvider.Name())

	configProvider := infrastructure.NewConfigProviderAdapter(c.config)

	c.health = infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		CacheChecker:    infrastructure.NewCacheHealthChecker(c.cacheProvider),
		ProviderChecker: infrastructure.NewProviderHealthChecker(fetcher),
		ConfigProvider:  configProvider,
	})

	c.ports = &ports.ApplicationPorts{
		WeatherFetcher: weatherFetcher,
		SnapshotCache:  external.NewSnapshotCacheAdapter(c.cacheProvider),
		ConfigProvider: configProvider,
		Logger:         c.logger,
		Metrics:        metrics,
	}

	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Registry is the Prometheus registry served on /metrics
func (c *DependencyContainer) Registry() *prometheus.Registry {
	return c.registry
}

func (c *DependencyContainer) HealthChecker() *infrastructure.SystemHealthChecker {
	return c.health
}

// Close releases the cache backend connection
func (c *DependencyContainer) Close() error {
	if c.cacheProvider == nil {
		return nil
	}
	return c.cacheProvider.Close()
}
