package external

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherlookup.app/internal/mocks"
	"weatherlookup.app/internal/models"
	"weatherlookup.app/pkg/errors"
)

func testSnapshot() *models.WeatherSnapshot {
	return &models.WeatherSnapshot{
		Location: &models.Location{
			Name:    "London",
			Region:  "City of London, Greater London",
			Country: "United Kingdom",
			Lat:     51.52,
			Lon:     -0.11,
			TzID:    "Europe/London",
		},
		Current: &models.CurrentConditions{
			LastUpdated: "2024-06-10 08:00",
			TempC:       18.0,
			Humidity:    72,
			Condition:   &models.Condition{Text: "Cloudy", Code: 1006},
		},
	}
}

func TestSnapshotCacheAdapter_RoundTrip(t *testing.T) {
	cache := NewSnapshotCacheAdapter(NewMemoryCacheProvider(clockwork.NewFakeClock()))
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "London", testSnapshot(), time.Hour))

	snapshot, ok, err := cache.Get(ctx, "London")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, testSnapshot(), snapshot)
	assert.False(t, snapshot.IsEmpty())
}

func TestSnapshotCacheAdapter_UnseenLocationIsMiss(t *testing.T) {
	cache := NewSnapshotCacheAdapter(NewMemoryCacheProvider(clockwork.NewFakeClock()))

	snapshot, ok, err := cache.Get(context.Background(), "Paris")

	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, snapshot)
	assert.True(t, snapshot.IsEmpty())
}

func TestSnapshotCacheAdapter_ExpiredIsMiss(t *testing.T) {
	clock := clockwork.NewFakeClock()
	cache := NewSnapshotCacheAdapter(NewMemoryCacheProvider(clock))
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "London", testSnapshot(), 60*time.Minute))
	clock.Advance(61 * time.Minute)

	snapshot, ok, err := cache.Get(ctx, "London")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, snapshot)
}

func TestSnapshotCacheAdapter_KeysArePrefixed(t *testing.T) {
	mockRedis, provider := newTestRedisProvider(t)
	cache := NewSnapshotCacheAdapter(provider)

	require.NoError(t, cache.Put(context.Background(), "London", testSnapshot(), 60*time.Minute))

	assert.True(t, mockRedis.Exists("weather:London"))
	assert.Equal(t, 60*time.Minute, mockRedis.TTL("weather:London"))

	raw, err := mockRedis.Get("weather:London")
	require.NoError(t, err)
	var stored models.WeatherSnapshot
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, "Cloudy", stored.Current.Condition.Text)
}

func TestSnapshotCacheAdapter_PutRejectsIncompleteSnapshots(t *testing.T) {
	provider := mocks.NewCacheProvider(t)
	cache := NewSnapshotCacheAdapter(provider)
	ctx := context.Background()

	partial := &models.WeatherSnapshot{Location: &models.Location{Name: "London"}}

	assert.True(t, errors.IsValidationError(cache.Put(ctx, "London", nil, time.Hour)))
	assert.True(t, errors.IsValidationError(cache.Put(ctx, "London", &models.WeatherSnapshot{}, time.Hour)))
	assert.True(t, errors.IsValidationError(cache.Put(ctx, "London", partial, time.Hour)))
	assert.True(t, errors.IsValidationError(cache.Put(ctx, "London", testSnapshot(), 0)))
	provider.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSnapshotCacheAdapter_BackendFailures(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		err     error
		message string
	}{
		{
			name:    "unavailable",
			err:     errors.NewCacheUnavailableError("redis get operation failed", stderrors.New("connection refused")),
			message: "redis get operation failed",
		},
		{
			name:    "unexpected error",
			err:     stderrors.New("boom"),
			message: "cache read failed",
		},
		{
			name:    "corrupt document",
			data:    []byte("{not json"),
			message: "unreadable",
		},
		{
			name:    "partial document",
			data:    []byte(`{"location":{"name":"London"},"current":null}`),
			message: "incomplete",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := mocks.NewCacheProvider(t)
			provider.EXPECT().Get(mock.Anything, "weather:London").Return(tt.data, tt.err).Once()

			snapshot, ok, err := NewSnapshotCacheAdapter(provider).Get(context.Background(), "London")

			assert.Nil(t, snapshot)
			assert.False(t, ok)
			assert.True(t, errors.IsCacheUnavailableError(err))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestSnapshotCacheAdapter_PutPropagatesBackendError(t *testing.T) {
	provider := mocks.NewCacheProvider(t)
	backendErr := errors.NewCacheUnavailableError("redis set operation failed", nil)
	provider.EXPECT().Set(mock.Anything, "weather:London", mock.Anything, time.Hour).Return(backendErr).Once()

	err := NewSnapshotCacheAdapter(provider).Put(context.Background(), "London", testSnapshot(), time.Hour)

	assert.ErrorIs(t, err, backendErr)
}
