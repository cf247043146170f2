package external

import (
	"context"
	"encoding/json"
	"time"

	"weatherlookup.app/internal/models"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

// SnapshotKeyPrefix namespaces weather entries inside a shared cache backend
const SnapshotKeyPrefix = "weather:"

// SnapshotCacheAdapter stores WeatherSnapshots as JSON documents on a
// byte-level CacheProvider
type SnapshotCacheAdapter struct {
	cacheProvider ports.CacheProvider
}

func NewSnapshotCacheAdapter(cacheProvider ports.CacheProvider) *SnapshotCacheAdapter {
	return &SnapshotCacheAdapter{
		cacheProvider: cacheProvider,
	}
}

// Get returns the cached snapshot for location. A missing or expired entry
// is (nil, false, nil); err is set only when the backend failed.
func (s *SnapshotCacheAdapter) Get(ctx context.Context, location string) (*models.WeatherSnapshot, bool, error) {
	data, err := s.cacheProvider.Get(ctx, SnapshotKey(location))
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, false, nil
		}
		if errors.IsCacheUnavailableError(err) {
			return nil, false, err
		}
		return nil, false, errors.NewCacheUnavailableError("cache read failed", err)
	}

	var snapshot models.WeatherSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, false, errors.NewCacheUnavailableError("cached snapshot is unreadable", err)
	}
	if !snapshot.IsComplete() {
		return nil, false, errors.NewCacheUnavailableError("cached snapshot is incomplete", nil)
	}

	return &snapshot, true, nil
}

// Put stores snapshot under location for ttl, replacing any previous entry
func (s *SnapshotCacheAdapter) Put(ctx context.Context, location string, snapshot *models.WeatherSnapshot, ttl time.Duration) error {
	if !snapshot.IsComplete() {
		return errors.NewValidationError("only complete snapshots can be cached")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return errors.NewValidationError("failed to serialize weather snapshot: " + err.Error())
	}

	return s.cacheProvider.Set(ctx, SnapshotKey(location), data, ttl)
}

// SnapshotKey returns the backend key for a normalized location
func SnapshotKey(location string) string {
	return SnapshotKeyPrefix + location
}
