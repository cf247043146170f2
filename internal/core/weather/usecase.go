package weather

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"
	"weatherlookup.app/internal/models"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

// cacheWriteTimeout bounds the cache write that follows a fetch. The write is
// detached from the caller's cancellation so an abandoned lookup still either
// stores the whole entry or nothing.
const cacheWriteTimeout = 3 * time.Second

// Upstream outcomes reported to LookupMetrics.RecordUpstream
const (
	upstreamOutcomeSuccess       = "success"
	upstreamOutcomeClientError   = "client_error"
	upstreamOutcomeProviderError = "provider_error"
	upstreamOutcomeInvalid       = "invalid_payload"
	upstreamOutcomeCancelled     = "cancelled"
)

type UseCase struct {
	fetcher ports.WeatherFetcher
	cache   ports.SnapshotCache
	config  ports.ConfigProvider
	logger  ports.Logger
	metrics ports.LookupMetrics

	inflight singleflight.Group
}

type UseCaseDependencies struct {
	Fetcher ports.WeatherFetcher
	Cache   ports.SnapshotCache
	Config  ports.ConfigProvider
	Logger  ports.Logger
	Metrics ports.LookupMetrics
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Fetcher == nil {
		return nil, errors.NewValidationError("weather fetcher is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("snapshot cache is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &UseCase{
		fetcher: deps.Fetcher,
		cache:   deps.Cache,
		config:  deps.Config,
		logger:  deps.Logger,
		metrics: deps.Metrics,
	}, nil
}

// Lookup returns the current weather for the requested location. A cached
// snapshot is returned as is; otherwise the provider is queried, the response
// normalized and cached for the configured TTL. Cache failures degrade to a
// miss and never fail the lookup. Provider failures are returned wrapped, so
// errors.As still yields the typed AppError.
func (uc *UseCase) Lookup(ctx context.Context, request LookupRequest) (*models.WeatherSnapshot, error) {
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid lookup request: " + err.Error())
	}

	request.Normalize()
	location := request.Location
	start := time.Now()

	snapshot, ok, err := uc.cache.Get(ctx, location)
	switch {
	case err != nil:
		uc.metrics.RecordCacheError("get")
		uc.logger.Warn("Cache read failed, treating as miss",
			ports.F("location", location),
			ports.F("error", err))
	case ok:
		uc.metrics.RecordCacheHit()
		uc.metrics.ObserveLookup(ports.LookupSourceCache, time.Since(start))
		uc.logger.Debug("Weather served from cache", ports.F("location", location))
		return snapshot, nil
	}

	uc.metrics.RecordCacheMiss()
	uc.logger.Debug("Cache miss, fetching from provider", ports.F("location", location))

	snapshot, err = uc.fetchAndStore(ctx, location)
	if errors.IsCancelled(err) {
		uc.metrics.ObserveLookup(ports.LookupSourceCancelled, time.Since(start))
		uc.logger.Warn("Weather lookup cancelled by caller",
			ports.F("location", location),
			ports.F("error", err))
		return nil, fmt.Errorf("lookup weather for %s: %w", location, err)
	}
	if err != nil {
		uc.metrics.ObserveLookup(ports.LookupSourceError, time.Since(start))
		uc.logger.Error("Failed to look up weather",
			ports.F("location", location),
			ports.F("error", err))
		return nil, fmt.Errorf("lookup weather for %s: %w", location, err)
	}

	uc.metrics.ObserveLookup(ports.LookupSourceUpstream, time.Since(start))
	uc.logger.Debug("Weather served from provider",
		ports.F("location", location),
		ports.F("temp_c", snapshot.Current.TempC))
	return snapshot, nil
}

func (uc *UseCase) fetchAndStore(ctx context.Context, location string) (*models.WeatherSnapshot, error) {
	cfg := uc.config.GetWeatherConfig()
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	if !cfg.CoalesceRequests {
		return uc.fetchFresh(ctx, location, ttl)
	}

	// The shared fetch must not die with whichever caller happened to start it.
	result := uc.inflight.DoChan(location, func() (interface{}, error) {
		return uc.fetchFresh(context.WithoutCancel(ctx), location, ttl)
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("wait for coalesced lookup: %w", ctx.Err())
	case res := <-result:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			uc.logger.Debug("Coalesced concurrent lookup", ports.F("location", location))
		}
		return res.Val.(*models.WeatherSnapshot), nil
	}
}

func (uc *UseCase) fetchFresh(ctx context.Context, location string, ttl time.Duration) (*models.WeatherSnapshot, error) {
	response, err := uc.fetcher.Fetch(ctx, location)
	if err != nil {
		uc.metrics.RecordUpstream(upstreamOutcome(err))
		return nil, err
	}

	snapshot, err := Normalize(response)
	if err != nil {
		uc.metrics.RecordUpstream(upstreamOutcomeInvalid)
		return nil, err
	}
	uc.metrics.RecordUpstream(upstreamOutcomeSuccess)

	uc.store(ctx, location, snapshot, ttl)
	return snapshot, nil
}

func (uc *UseCase) store(ctx context.Context, location string, snapshot *models.WeatherSnapshot, ttl time.Duration) {
	putCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cacheWriteTimeout)
	defer cancel()

	if err := uc.cache.Put(putCtx, location, snapshot, ttl); err != nil {
		uc.metrics.RecordCacheError("put")
		uc.logger.Warn("Failed to cache weather snapshot",
			ports.F("location", location),
			ports.F("error", err))
		return
	}

	uc.logger.Debug("Weather snapshot cached",
		ports.F("location", location),
		ports.F("ttl", ttl.String()))
}

func upstreamOutcome(err error) string {
	switch {
	case errors.IsCancelled(err):
		return upstreamOutcomeCancelled
	case errors.IsClientRequestError(err):
		return upstreamOutcomeClientError
	case errors.IsNormalizationError(err):
		return upstreamOutcomeInvalid
	default:
		return upstreamOutcomeProviderError
	}
}
