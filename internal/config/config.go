package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"weatherlookup.app/pkg/errors"
)

const (
	maxRedisDB         = 15
	maxCacheTTLMinutes = 1440
	maxPortNumber      = 65535
)

// Config represents the application configuration structure
type Config struct {
	Server  ServerConfig  `split_words:"true"`
	Weather WeatherConfig `split_words:"true"`
	Cache   CacheConfig   `split_words:"true"`
	Log     LogConfig     `split_words:"true"`
}

type ServerConfig struct {
	Port         int `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout  int `envconfig:"SERVER_READ_TIMEOUT" default:"30"`
	WriteTimeout int `envconfig:"SERVER_WRITE_TIMEOUT" default:"30"`
}

type WeatherConfig struct {
	APIKey             string `envconfig:"WEATHER_API_KEY" required:"true"`
	BaseURL            string `envconfig:"WEATHER_API_BASE_URL" default:"https://api.weatherapi.com/v1"`
	TimeoutSeconds     int    `envconfig:"WEATHER_API_TIMEOUT" default:"10"`
	CacheTTLMinutes    int    `envconfig:"WEATHER_CACHE_TTL_MINUTES" default:"60"`
	CoalesceRequests   bool   `envconfig:"WEATHER_COALESCE_REQUESTS" default:"false"`
	EnableLogging      bool   `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	BreakerMaxFailures int    `envconfig:"WEATHER_BREAKER_MAX_FAILURES" default:"5"`
	BreakerOpenSeconds int    `envconfig:"WEATHER_BREAKER_OPEN_SECONDS" default:"30"`
}

// CacheTTL returns the snapshot lifetime as a duration
func (w WeatherConfig) CacheTTL() time.Duration {
	return time.Duration(w.CacheTTLMinutes) * time.Minute
}

// Timeout returns the upstream HTTP client timeout
func (w WeatherConfig) Timeout() time.Duration {
	return time.Duration(w.TimeoutSeconds) * time.Second
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
	CacheTypeMemcached
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	case CacheTypeMemcached:
		return "memcached"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis || c == CacheTypeMemcached
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	case "memcached":
		return CacheTypeMemcached
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type      CacheType       `envconfig:"CACHE_TYPE" default:"redis"`
	Redis     RedisConfig     `split_words:"true"`
	Memcached MemcachedConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type MemcachedConfig struct {
	Addrs     []string `envconfig:"MEMCACHED_ADDRS" default:"localhost:11211"`
	TimeoutMs int      `envconfig:"MEMCACHED_TIMEOUT_MS" default:"500"`
}

type LogConfig struct {
	Level    string `envconfig:"LOG_LEVEL" default:"info"`
	Format   string `envconfig:"LOG_FORMAT" default:"json"`
	FilePath string `envconfig:"LOG_FILE_PATH" default:""`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	if s.ReadTimeout < 1 {
		return errors.NewConfigurationError("SERVER_READ_TIMEOUT must be at least 1 second", nil)
	}
	if s.WriteTimeout < 1 {
		return errors.NewConfigurationError("SERVER_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if w.APIKey == "" {
		return errors.NewConfigurationError("WEATHER_API_KEY must be configured", nil)
	}
	if w.BaseURL == "" {
		return errors.NewConfigurationError("WEATHER_API_BASE_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(w.BaseURL, "http://") && !strings.HasPrefix(w.BaseURL, "https://") {
		return errors.NewConfigurationError("WEATHER_API_BASE_URL must start with http:// or https://", nil)
	}
	if w.TimeoutSeconds < 1 {
		return errors.NewConfigurationError("WEATHER_API_TIMEOUT must be at least 1 second", nil)
	}
	if w.CacheTTLMinutes < 1 || w.CacheTTLMinutes > maxCacheTTLMinutes {
		return errors.NewConfigurationError("WEATHER_CACHE_TTL_MINUTES must be between 1 and 1440 minutes", nil)
	}
	if w.BreakerMaxFailures < 1 {
		return errors.NewConfigurationError("WEATHER_BREAKER_MAX_FAILURES must be at least 1", nil)
	}
	if w.BreakerOpenSeconds < 1 {
		return errors.NewConfigurationError("WEATHER_BREAKER_OPEN_SECONDS must be at least 1 second", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis, memcached", nil)
	}

	switch c.Type {
	case CacheTypeRedis:
		return c.Redis.Validate()
	case CacheTypeMemcached:
		return c.Memcached.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (m *MemcachedConfig) Validate() error {
	if len(m.Addrs) == 0 {
		return errors.NewConfigurationError("MEMCACHED_ADDRS cannot be empty when using memcached cache", nil)
	}
	for _, addr := range m.Addrs {
		if strings.TrimSpace(addr) == "" {
			return errors.NewConfigurationError("MEMCACHED_ADDRS contains an empty address", nil)
		}
	}
	if m.TimeoutMs < 1 {
		return errors.NewConfigurationError("MEMCACHED_TIMEOUT_MS must be at least 1 millisecond", nil)
	}
	return nil
}

// Timeout returns the memcached client timeout
func (m MemcachedConfig) Timeout() time.Duration {
	return time.Duration(m.TimeoutMs) * time.Millisecond
}

func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.NewConfigurationError(fmt.Sprintf("LOG_LEVEL %q must be one of: debug, info, warn, error", l.Level), nil)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return errors.NewConfigurationError(fmt.Sprintf("LOG_FORMAT %q must be one of: json, text", l.Format), nil)
	}
	return nil
}
