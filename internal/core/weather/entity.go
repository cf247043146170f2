package weather

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"weatherlookup.app/pkg/validation"
)

// DefaultCacheTTL is how long a fetched snapshot stays servable from the cache
const DefaultCacheTTL = 60 * time.Minute

// LookupRequest represents a request for the current weather at a location
type LookupRequest struct {
	Location string
}

// IsValid validates the lookup request
func (r *LookupRequest) IsValid() error {
	if !validation.IsNotEmpty(r.Location) {
		return fmt.Errorf("location cannot be empty")
	}
	if utf8.RuneCountInString(strings.TrimSpace(r.Location)) > validation.MaxLocationLength {
		return fmt.Errorf("location cannot exceed %d characters", validation.MaxLocationLength)
	}
	if !validation.IsValidLocation(r.Location) {
		return fmt.Errorf("location contains invalid characters")
	}
	return nil
}

// Normalize normalizes the location so equal queries share one cache entry
func (r *LookupRequest) Normalize() {
	r.Location = validation.NormalizeLocation(r.Location)
}
