package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "holiday_cache_operations_total",
			Help: "Holiday cache operations",
		},
		[]string{"op"}, // hit|miss|expired|set|deleted|swept|cleared
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "holiday_cache_size",
			Help: "Number of entries currently in holiday cache",
		},
	)
)

var (
	ExternalAPIRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "holiday_external_api_requests_total",
			Help: "Requests to the external holiday API by result",
		},
		[]string{"result"}, // ok|client_error|server_error|rate_limited|network|timeout|decode
	)
	ExternalAPIRetries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "holiday_external_api_retries_total",
			Help: "Retried requests to the external holiday API",
		},
	)
	ExternalAPIDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "holiday_external_api_request_duration_seconds",
			Help:    "Duration of a single request to the external holiday API",
			Buckets: prometheus.DefBuckets,
		},
	)
)

var (
	ProviderFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "holiday_provider_fallbacks_total",
			Help: "Fallbacks from a failed data source to the next one",
		},
		[]string{"from"},
	)
	WarmUpRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "holiday_cache_warmup_runs_total",
			Help: "Scheduled cache warm-up runs by result",
		},
		[]string{"result"}, // ok|error
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики в default registry. Повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			CacheOps, CacheSize,
			ExternalAPIRequests, ExternalAPIRetries, ExternalAPIDuration,
			ProviderFallbacks, WarmUpRuns,
		)
	})
}
