package external

import (
	"context"
	"time"

	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

// FetcherLoggingDecorator decorates a weather fetcher with structured logging
type FetcherLoggingDecorator struct {
	fetcher ports.WeatherFetcher
	logger  ports.Logger
}

// NewFetcherLoggingDecorator creates a new logging decorator for a weather fetcher
func NewFetcherLoggingDecorator(fetcher ports.WeatherFetcher, logger ports.Logger) *FetcherLoggingDecorator {
	return &FetcherLoggingDecorator{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Fetch wraps the fetcher call with structured logging
func (d *FetcherLoggingDecorator) Fetch(ctx context.Context, location string) (*ports.ProviderResponse, error) {
	providerName := d.fetcher.Name()

	d.logger.Info("Weather API request started",
		ports.F("provider", providerName),
		ports.F("location", location),
		ports.F("event", "request"))

	startTime := time.Now()
	response, err := d.fetcher.Fetch(ctx, location)
	duration := time.Since(startTime)

	if err != nil {
		fields := []ports.Field{
			ports.F("provider", providerName),
			ports.F("location", location),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error_kind", errorKind(err)),
			ports.F("error", err.Error()),
		}
		if status := errors.StatusOf(err); status != 0 {
			fields = append(fields, ports.F("upstream_status", status))
		}

		// unknown locations and abandoned requests are not outages
		switch {
		case errors.IsClientRequestError(err):
			d.logger.Warn("Weather API request rejected", fields...)
		case errors.IsCancelled(err):
			d.logger.Warn("Weather API request cancelled", fields...)
		default:
			d.logger.Error("Weather API request failed", fields...)
		}
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", providerName),
		ports.F("location", location),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("bytes", len(response.Location)+len(response.Current)))

	return response, nil
}

// Name returns the name of the wrapped fetcher with logging indication
func (d *FetcherLoggingDecorator) Name() string {
	return "logged(" + d.fetcher.Name() + ")"
}

func errorKind(err error) string {
	return errors.TypeOf(err).String()
}
