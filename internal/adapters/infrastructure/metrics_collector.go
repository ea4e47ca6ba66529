package infrastructure

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics implements the MetricsCollector port
type PrometheusMetrics struct {
	providerCalls   *prometheus.CounterVec
	providerLatency *prometheus.HistogramVec
	geocodingCalls  *prometheus.CounterVec
	refreshes       *prometheus.CounterVec
	lastRefresh     prometheus.Gauge
	storeOperations *prometheus.CounterVec
	now             func() time.Time
}

// NewPrometheusMetrics registers the collectors on reg. A nil registerer
// uses the default registry.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		providerCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meteorenard_provider_requests_total",
				Help: "The total number of weather provider requests",
			},
			[]string{"provider", "success"},
		),
		providerLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "meteorenard_provider_request_duration_seconds",
				Help:    "Weather provider request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
		geocodingCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meteorenard_geocoding_requests_total",
				Help: "The total number of city search and reverse geocoding requests",
			},
			[]string{"operation", "success"},
		),
		refreshes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meteorenard_dashboard_refreshes_total",
				Help: "The total number of dashboard refreshes",
			},
			[]string{"success"},
		),
		lastRefresh: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "meteorenard_dashboard_last_success_timestamp_seconds",
				Help: "Unix time of the last successful dashboard refresh",
			},
		),
		storeOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meteorenard_store_operations_total",
				Help: "The total number of preference store operations",
			},
			[]string{"operation", "success"},
		),
		now: time.Now,
	}
}

func (m *PrometheusMetrics) RecordProviderCall(_ context.Context, provider string, success bool, duration time.Duration) {
	m.providerCalls.WithLabelValues(provider, strconv.FormatBool(success)).Inc()
	m.providerLatency.WithLabelValues(provider).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordGeocodingCall(_ context.Context, operation string, success bool) {
	m.geocodingCalls.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
}

func (m *PrometheusMetrics) RecordRefresh(_ context.Context, success bool) {
	m.refreshes.WithLabelValues(strconv.FormatBool(success)).Inc()
	if success {
		m.lastRefresh.Set(float64(m.now().Unix()))
	}
}

func (m *PrometheusMetrics) RecordStoreOperation(_ context.Context, operation string, success bool) {
	m.storeOperations.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
}
