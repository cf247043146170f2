package external

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherlookup.app/internal/fakeupstream"
	"weatherlookup.app/internal/mocks"
	"weatherlookup.app/pkg/errors"
)

const testAPIKey = "test-api-key"

func init() {
	gin.SetMode(gin.TestMode)
}

func quietLogger(t *testing.T) *mocks.Logger {
	logger := mocks.NewLogger(t)
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	return logger
}

func newTestFetcher(t *testing.T, baseURL string, maxFailures uint32) *WeatherAPIFetcher {
	t.Helper()

	fetcher, err := NewWeatherAPIFetcher(WeatherAPIFetcherParams{
		APIKey:             testAPIKey,
		BaseURL:            baseURL,
		Timeout:            2 * time.Second,
		BreakerMaxFailures: maxFailures,
		BreakerOpenTimeout: time.Minute,
		Logger:             quietLogger(t),
	})
	require.NoError(t, err)
	return fetcher
}

func startFakeUpstream(t *testing.T) (*fakeupstream.Server, *httptest.Server) {
	t.Helper()

	upstream := fakeupstream.NewServer(testAPIKey)
	server := httptest.NewServer(upstream.Handler())
	t.Cleanup(server.Close)
	return upstream, server
}

func TestNewWeatherAPIFetcher_Validation(t *testing.T) {
	logger := mocks.NewLogger(t)

	tests := []struct {
		name   string
		params WeatherAPIFetcherParams
		errMsg string
	}{
		{"MissingKey", WeatherAPIFetcherParams{BaseURL: "https://api.weatherapi.com/v1", Logger: logger}, "API key"},
		{"BadURL", WeatherAPIFetcherParams{APIKey: "k", BaseURL: "api.weatherapi.com", Logger: logger}, "base URL"},
		{"MissingLogger", WeatherAPIFetcherParams{APIKey: "k", BaseURL: "https://api.weatherapi.com/v1"}, "logger"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher, err := NewWeatherAPIFetcher(tt.params)
			assert.Nil(t, fetcher)
			assert.True(t, errors.IsConfigurationError(err))
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestWeatherAPIFetcher_Fetch_Success(t *testing.T) {
	upstream, server := startFakeUpstream(t)
	fetcher := newTestFetcher(t, server.URL+"/", 5)

	response, err := fetcher.Fetch(context.Background(), "London")

	require.NoError(t, err)
	var location struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(response.Location, &location))
	assert.Equal(t, "London", location.Name)
	assert.Contains(t, string(response.Current), `"condition"`)
	assert.Equal(t, 1, upstream.Requests("London"))
	assert.Equal(t, "weatherapi", fetcher.Name())
}

func TestWeatherAPIFetcher_Fetch_EncodesQuery(t *testing.T) {
	var gotQuery, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotKey = r.URL.Query().Get("key")
		assert.Equal(t, "/v1/current.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"location":{"name":"New York"},"current":{"condition":{"text":"Clear"}}}`))
	}))
	defer server.Close()

	fetcher := newTestFetcher(t, server.URL+"/v1", 5)
	_, err := fetcher.Fetch(context.Background(), "New York & Co")

	require.NoError(t, err)
	assert.Equal(t, "New York & Co", gotQuery)
	assert.Equal(t, testAPIKey, gotKey)
}

func TestWeatherAPIFetcher_Fetch_ClassifiesFailures(t *testing.T) {
	upstream, server := startFakeUpstream(t)
	upstream.SetStatus("Gotham", http.StatusNotFound)
	upstream.SetStatus("Paris", http.StatusInternalServerError)
	upstream.SetStatus("Kyiv", http.StatusBadGateway)

	tests := []struct {
		location string
		client   bool
		status   int
		message  string
	}{
		{"Atlantis", true, http.StatusBadRequest, "No matching location found."},
		{"Gotham", true, http.StatusNotFound, "No matching location found."},
		{"Paris", false, http.StatusInternalServerError, "Internal application error."},
		{"Kyiv", false, http.StatusBadGateway, "Internal application error."},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			fetcher := newTestFetcher(t, server.URL, 5)

			response, err := fetcher.Fetch(context.Background(), tt.location)

			assert.Nil(t, response)
			require.Error(t, err)
			assert.Equal(t, tt.client, errors.IsClientRequestError(err))
			assert.Equal(t, !tt.client, errors.IsProviderError(err))
			assert.Equal(t, tt.status, errors.StatusOf(err))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestWeatherAPIFetcher_Fetch_InvalidKeyIsClientError(t *testing.T) {
	_, server := startFakeUpstream(t)

	fetcher, err := NewWeatherAPIFetcher(WeatherAPIFetcherParams{
		APIKey:  "wrong-key",
		BaseURL: server.URL,
		Logger:  quietLogger(t),
	})
	require.NoError(t, err)

	_, err = fetcher.Fetch(context.Background(), "London")

	assert.True(t, errors.IsClientRequestError(err))
	assert.Equal(t, http.StatusForbidden, errors.StatusOf(err))
}

func TestWeatherAPIFetcher_Fetch_ErrorBodyWithoutMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	}))
	defer server.Close()

	_, err := newTestFetcher(t, server.URL, 5).Fetch(context.Background(), "London")

	assert.True(t, errors.IsProviderError(err))
	assert.Equal(t, http.StatusServiceUnavailable, errors.StatusOf(err))
	assert.Contains(t, err.Error(), "Service Unavailable")
}

func TestWeatherAPIFetcher_Fetch_MalformedDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	_, err := newTestFetcher(t, server.URL, 5).Fetch(context.Background(), "London")

	assert.True(t, errors.IsNormalizationError(err))
}

func TestWeatherAPIFetcher_Fetch_TransportFailureHidesKey(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	_, err := newTestFetcher(t, baseURL, 5).Fetch(context.Background(), "London")

	require.Error(t, err)
	assert.True(t, errors.IsProviderError(err))
	assert.Equal(t, 0, errors.StatusOf(err))
	assert.NotContains(t, err.Error(), testAPIKey)
}

func TestWeatherAPIFetcher_Fetch_EmptyLocation(t *testing.T) {
	fetcher := newTestFetcher(t, "http://127.0.0.1:1", 5)

	_, err := fetcher.Fetch(context.Background(), "  ")

	assert.True(t, errors.IsValidationError(err))
}

func TestWeatherAPIFetcher_CircuitOpensOnProviderFailures(t *testing.T) {
	upstream, server := startFakeUpstream(t)
	upstream.SetStatus("London", http.StatusInternalServerError)
	fetcher := newTestFetcher(t, server.URL, 2)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := fetcher.Fetch(ctx, "London")
		assert.Equal(t, http.StatusInternalServerError, errors.StatusOf(err))
	}
	assert.Equal(t, "open", fetcher.BreakerState())

	_, err := fetcher.Fetch(ctx, "London")

	assert.True(t, errors.IsProviderError(err))
	assert.Equal(t, 0, errors.StatusOf(err))
	assert.Contains(t, err.Error(), "weather provider circuit open")
	assert.Equal(t, 2, upstream.Requests("London"), "open circuit fails fast")
}

func TestWeatherAPIFetcher_CircuitIgnoresClientErrors(t *testing.T) {
	upstream, server := startFakeUpstream(t)
	fetcher := newTestFetcher(t, server.URL, 2)

	for i := 0; i < 5; i++ {
		_, err := fetcher.Fetch(context.Background(), "Atlantis")
		assert.True(t, errors.IsClientRequestError(err))
	}

	assert.Equal(t, "closed", fetcher.BreakerState())
	assert.Equal(t, 5, upstream.Requests("Atlantis"))
}

func TestWeatherAPIFetcher_CancelledRequest(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	fetcher := newTestFetcher(t, server.URL, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := fetcher.Fetch(ctx, "London")

	assert.True(t, errors.IsProviderError(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCountsAsBreakerSuccess(t *testing.T) {
	assert.True(t, countsAsBreakerSuccess(nil))
	assert.True(t, countsAsBreakerSuccess(errors.NewClientRequestError(400, "bad location")))
	assert.True(t, countsAsBreakerSuccess(errors.NewProviderError(0, "cancelled", context.Canceled)))
	assert.False(t, countsAsBreakerSuccess(errors.NewProviderError(500, "boom", nil)))
	assert.False(t, countsAsBreakerSuccess(errors.NewNormalizationError("garbage", nil)))
}
