package ports

import "time"

// WeatherConfig represents weather lookup configuration
type WeatherConfig struct {
	CacheTTL         time.Duration
	CoalesceRequests bool
}

// CacheConfig represents cache backend configuration
type CacheConfig struct {
	Type string
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetWeatherConfig() WeatherConfig
	GetCacheConfig() CacheConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Lookup sources reported to LookupMetrics.ObserveLookup
const (
	LookupSourceCache     = "cache"
	LookupSourceUpstream  = "upstream"
	LookupSourceError     = "error"
	LookupSourceCancelled = "cancelled"
)

// LookupMetrics defines the contract for cache-aside instrumentation
type LookupMetrics interface {
	RecordCacheHit()
	RecordCacheMiss()
	RecordCacheError(operation string)
	RecordUpstream(outcome string)
	ObserveLookup(source string, duration time.Duration)
}
