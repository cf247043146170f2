// Package external provides adapters for the upstream weather provider and
// the cache backends.
package external

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

const (
	defaultFetchTimeout       = 10 * time.Second
	defaultBreakerMaxFailures = 5
	defaultBreakerOpenTimeout = 30 * time.Second
	maxResponseBytes          = 1 << 20
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WeatherAPIFetcher implements WeatherFetcher for WeatherAPI.com. Calls go
// through a circuit breaker that counts only provider-side failures.
type WeatherAPIFetcher struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	breaker *gobreaker.CircuitBreaker
	logger  ports.Logger
}

// WeatherAPIFetcherParams holds parameters for creating the WeatherAPI fetcher
type WeatherAPIFetcherParams struct {
	APIKey             string
	BaseURL            string
	Timeout            time.Duration
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration
	Client             HTTPClient
	Logger             ports.Logger
}

// upstreamErrorDocument is the provider's error body
type upstreamErrorDocument struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func NewWeatherAPIFetcher(params WeatherAPIFetcherParams) (*WeatherAPIFetcher, error) {
	if params.APIKey == "" {
		return nil, errors.NewConfigurationError("weather API key cannot be empty", nil)
	}
	if !strings.HasPrefix(params.BaseURL, "http://") && !strings.HasPrefix(params.BaseURL, "https://") {
		return nil, errors.NewConfigurationError("weather API base URL must start with http:// or https://", nil)
	}
	if params.Logger == nil {
		return nil, errors.NewConfigurationError("logger is required", nil)
	}

	if params.Timeout <= 0 {
		params.Timeout = defaultFetchTimeout
	}
	if params.BreakerMaxFailures == 0 {
		params.BreakerMaxFailures = defaultBreakerMaxFailures
	}
	if params.BreakerOpenTimeout <= 0 {
		params.BreakerOpenTimeout = defaultBreakerOpenTimeout
	}
	if params.Client == nil {
		params.Client = &http.Client{Timeout: params.Timeout}
	}

	f := &WeatherAPIFetcher{
		apiKey:  params.APIKey,
		baseURL: strings.TrimRight(params.BaseURL, "/"),
		client:  params.Client,
		logger:  params.Logger,
	}

	maxFailures := params.BreakerMaxFailures
	f.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "weatherapi",
		MaxRequests: 1,
		Timeout:     params.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: countsAsBreakerSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			f.logger.Warn("Weather provider circuit changed state",
				ports.F("provider", name),
				ports.F("from", from.String()),
				ports.F("to", to.String()))
		},
	})

	return f, nil
}

// Fetch requests current conditions for location
func (f *WeatherAPIFetcher) Fetch(ctx context.Context, location string) (*ports.ProviderResponse, error) {
	if strings.TrimSpace(location) == "" {
		return nil, errors.NewValidationError("location cannot be empty")
	}

	result, err := f.breaker.Execute(func() (interface{}, error) {
		return f.fetch(ctx, location)
	})
	if err != nil {
		if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, errors.NewProviderError(0, "weather provider circuit open", err)
		}
		return nil, err
	}

	return result.(*ports.ProviderResponse), nil
}

func (f *WeatherAPIFetcher) Name() string {
	return "weatherapi"
}

// BreakerState reports the circuit state: closed, half-open or open
func (f *WeatherAPIFetcher) BreakerState() string {
	return f.breaker.State().String()
}

func (f *WeatherAPIFetcher) fetch(ctx context.Context, location string) (*ports.ProviderResponse, error) {
	query := url.Values{}
	query.Set("key", f.apiKey)
	query.Set("q", location)
	endpoint := f.baseURL + "/current.json?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewProviderError(0, "failed to build weather provider request", redactURL(err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.NewProviderError(0, "weather provider request failed", redactURL(err))
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			f.logger.Warn("Failed to close weather provider response body", ports.F("error", closeErr))
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.NewProviderError(resp.StatusCode, "failed to read weather provider response", err)
	}

	switch {
	case resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError:
		return nil, errors.NewClientRequestError(resp.StatusCode, upstreamMessage(body, resp.StatusCode))
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, errors.NewProviderError(resp.StatusCode, upstreamMessage(body, resp.StatusCode), nil)
	case resp.StatusCode != http.StatusOK:
		return nil, errors.NewProviderError(resp.StatusCode,
			fmt.Sprintf("weather provider returned unexpected status %d", resp.StatusCode), nil)
	}

	var payload ports.ProviderResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.NewNormalizationError("weather provider returned a malformed document", err)
	}

	return &payload, nil
}

// upstreamMessage extracts the provider's error message, falling back to the
// HTTP status text
func upstreamMessage(body []byte, status int) string {
	var doc upstreamErrorDocument
	if err := json.Unmarshal(body, &doc); err == nil && doc.Error.Message != "" {
		return doc.Error.Message
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("weather provider returned status %d", status)
}

// countsAsBreakerSuccess keeps caller mistakes and caller cancellations from
// opening the circuit
func countsAsBreakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	if errors.IsCancelled(err) {
		return true
	}
	return !errors.IsProviderError(err)
}

// redactURL strips the query string, which carries the API key, from
// transport errors
func redactURL(err error) error {
	var urlErr *url.Error
	if !stderrors.As(err, &urlErr) {
		return err
	}
	redacted := *urlErr
	if u, parseErr := url.Parse(urlErr.URL); parseErr == nil {
		u.RawQuery = ""
		redacted.URL = u.String()
	} else {
		redacted.URL = ""
	}
	return &redacted
}
