package infrastructure

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics implements the LookupMetrics port. Collectors are
// registered on the given registerer, so tests can use a private registry.
type PrometheusMetrics struct {
	cacheType string

	hits     *prometheus.CounterVec
	misses   *prometheus.CounterVec
	errors   *prometheus.CounterVec
	upstream *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	hitRatio *prometheus.GaugeVec

	mu        sync.Mutex
	hitCount  int64
	missCount int64
}

func NewPrometheusMetrics(reg prometheus.Registerer, cacheType string) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		cacheType: cacheType,
		hits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_cache_hits_total",
				Help: "The total number of weather lookups served from the cache",
			},
			[]string{"cache_type"},
		),
		misses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_cache_misses_total",
				Help: "The total number of weather lookups that missed the cache",
			},
			[]string{"cache_type"},
		),
		errors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_cache_errors_total",
				Help: "Cache operations that failed and were degraded",
			},
			[]string{"cache_type", "operation"},
		),
		upstream: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_upstream_requests_total",
				Help: "Upstream weather provider calls by outcome",
			},
			[]string{"outcome"},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weather_lookup_duration_seconds",
				Help:    "Weather lookup duration in seconds by result source",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"source"},
		),
		hitRatio: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "weather_cache_hit_ratio",
				Help: "Cache hit ratio (hits/total lookups)",
			},
			[]string{"cache_type"},
		),
	}
}

func (m *PrometheusMetrics) RecordCacheHit() {
	m.hits.WithLabelValues(m.cacheType).Inc()
	m.updateRatio(true)
}

func (m *PrometheusMetrics) RecordCacheMiss() {
	m.misses.WithLabelValues(m.cacheType).Inc()
	m.updateRatio(false)
}

func (m *PrometheusMetrics) RecordCacheError(operation string) {
	m.errors.WithLabelValues(m.cacheType, operation).Inc()
}

func (m *PrometheusMetrics) RecordUpstream(outcome string) {
	m.upstream.WithLabelValues(outcome).Inc()
}

func (m *PrometheusMetrics) ObserveLookup(source string, duration time.Duration) {
	m.latency.WithLabelValues(source).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) updateRatio(hit bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if hit {
		m.hitCount++
	} else {
		m.missCount++
	}
	total := m.hitCount + m.missCount
	m.hitRatio.WithLabelValues(m.cacheType).Set(float64(m.hitCount) / float64(total))
}
