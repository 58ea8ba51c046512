package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPrefix = "pontopro_"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	registerOnce sync.Once

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	demoFallbacks *prometheus.CounterVec

	edgeCalls   *prometheus.CounterVec
	edgeLatency *prometheus.HistogramVec

	exportTotal   *prometheus.CounterVec
	exportLatency *prometheus.HistogramVec

	cacheLookups *prometheus.CounterVec
)

// Init registers the collectors with the default registry.
func Init() {
	registerOnce.Do(func() {
		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total HTTP requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		)
		httpLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		)

		demoFallbacks = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "demo_fallback_total",
				Help: "Listings served with demonstration data by listing and reason",
			},
			[]string{"listing", "reason"},
		)

		edgeCalls = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "edge_function_calls_total",
				Help: "Edge function invocations by function and result",
			},
			[]string{"function", "result"},
		)
		edgeLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "edge_function_latency_seconds",
				Help:    "Edge function latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"function"},
		)

		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "report_export_total",
				Help: "Report exports by report, format and result",
			},
			[]string{"report", "format", "result"},
		)
		exportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "report_export_latency_seconds",
				Help:    "Report export latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"report", "format"},
		)

		cacheLookups = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "cache_lookups_total",
				Help: "Cache lookups by cache and outcome",
			},
			[]string{"cache", "outcome"},
		)

		prometheus.MustRegister(
			httpRequests,
			httpLatency,
			demoFallbacks,
			edgeCalls,
			edgeLatency,
			exportTotal,
			exportLatency,
			cacheLookups,
		)
	})
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveHTTP records one served request.
func ObserveHTTP(route, method string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	if httpRequests != nil {
		httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	}
	if httpLatency != nil {
		httpLatency.WithLabelValues(route, method).Observe(duration.Seconds())
	}
}

// IncDemoFallback counts a listing that substituted demonstration rows.
func IncDemoFallback(listing, reason string) {
	if reason == "" {
		reason = "unknown"
	}
	if demoFallbacks != nil {
		demoFallbacks.WithLabelValues(listing, reason).Inc()
	}
}

// ObserveEdgeCall records an edge function invocation.
func ObserveEdgeCall(function string, err error, duration time.Duration) {
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	if edgeCalls != nil {
		edgeCalls.WithLabelValues(function, result).Inc()
	}
	if edgeLatency != nil {
		edgeLatency.WithLabelValues(function).Observe(duration.Seconds())
	}
}

// ObserveExport records report generation latency and result.
func ObserveExport(report, format string, err error, duration time.Duration) {
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	if exportTotal != nil {
		exportTotal.WithLabelValues(report, format, result).Inc()
	}
	if exportLatency != nil {
		exportLatency.WithLabelValues(report, format).Observe(duration.Seconds())
	}
}

// IncCacheLookup counts a cache hit or miss.
func IncCacheLookup(cache string, hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	if cacheLookups != nil {
		cacheLookups.WithLabelValues(cache, outcome).Inc()
	}
}
