package ports

import (
	"context"
	"encoding/json"
	"time"

	"weatherlookup.app/internal/models"
)

// ProviderResponse is the upstream current-conditions document split into its
// top-level sections. The use case decodes the sections into a snapshot.
type ProviderResponse struct {
	Location json.RawMessage `json:"location"`
	Current  json.RawMessage `json:"current"`
}

// WeatherFetcher defines the contract for the upstream weather provider.
// Failures are ClientRequest (4xx) or Provider (5xx, transport) AppErrors.
type WeatherFetcher interface {
	Fetch(ctx context.Context, location string) (*ProviderResponse, error)
	Name() string
}

// SnapshotCache defines the TTL-bounded store of weather snapshots keyed by location.
// Get returns ok=false for both absent and expired entries.
type SnapshotCache interface {
	Get(ctx context.Context, location string) (*models.WeatherSnapshot, bool, error)
	Put(ctx context.Context, location string, snapshot *models.WeatherSnapshot, ttl time.Duration) error
}
