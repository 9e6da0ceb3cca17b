package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"ard/internal/structures"
)

const (
	RunResultSuccess = "success"
	RunResultFailure = "failure"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits(key string)
	IncCacheMisses(key string)
	IncCacheRejected(key string)
	SetCacheEntryBytes(key string, size int)
	IncRunsTotal(result string)
	ObserveRunDuration(duration time.Duration)
	ObserveStepDuration(step string, duration time.Duration)
	SetLastSuccess(t time.Time)
	SetReportTotals(total, days, zeroDays int)
}

type MetricsProvider struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheHits       *prometheus.CounterVec
	cacheMisses     *prometheus.CounterVec
	cacheRejected   *prometheus.CounterVec
	cacheEntryBytes *prometheus.GaugeVec
	runsTotal       *prometheus.CounterVec
	runDuration     prometheus.Histogram
	stepDuration    *prometheus.HistogramVec
	lastSuccess     prometheus.Gauge
	postsTotal      prometheus.Gauge
	reportDays      prometheus.Gauge
	zeroDays        prometheus.Gauge
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits(key string) {
	m.cacheHits.WithLabelValues(key).Inc()
}

func (m *MetricsProvider) IncCacheMisses(key string) {
	m.cacheMisses.WithLabelValues(key).Inc()
}

func (m *MetricsProvider) IncCacheRejected(key string) {
	m.cacheRejected.WithLabelValues(key).Inc()
}

func (m *MetricsProvider) SetCacheEntryBytes(key string, size int) {
	m.cacheEntryBytes.WithLabelValues(key).Set(float64(size))
}

func (m *MetricsProvider) IncRunsTotal(result string) {
	m.runsTotal.WithLabelValues(result).Inc()
}

func (m *MetricsProvider) ObserveRunDuration(duration time.Duration) {
	m.runDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) ObserveStepDuration(step string, duration time.Duration) {
	m.stepDuration.WithLabelValues(step).Observe(duration.Seconds())
}

func (m *MetricsProvider) SetLastSuccess(t time.Time) {
	m.lastSuccess.Set(float64(t.Unix()))
}

func (m *MetricsProvider) SetReportTotals(total, days, zeroDays int) {
	m.postsTotal.Set(float64(total))
	m.reportDays.Set(float64(days))
	m.zeroDays.Set(float64(zeroDays))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ard_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ard_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ard_cache_hits_total",
			Help: "Total number of report cache hits",
		}, []string{"key"}),

		cacheMisses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ard_cache_misses_total",
			Help: "Total number of report cache misses",
		}, []string{"key"}),

		cacheRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ard_cache_rejected_total",
			Help: "Cache writes refused because the entry was too large",
		}, []string{"key"}),

		cacheEntryBytes: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "ard_cache_entry_bytes",
			Help: "Size of the last cached entry in bytes",
		}, []string{"key"}),

		runsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ard_job_runs_total",
			Help: "Total number of report job runs by result",
		}, []string{"result"}),

		runDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ard_job_duration_seconds",
			Help:    "Duration of a full report job run in seconds",
			Buckets: []float64{1, 2.5, 5, 10, 30, 60, 120, 300},
		}),

		stepDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ard_job_step_duration_seconds",
			Help:    "Duration of a single report job step in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"step"}),

		lastSuccess: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "ard_job_last_success_timestamp_seconds",
			Help: "Unix time of the last successful run",
		}),

		postsTotal: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "ard_report_posts_total",
			Help: "Posts counted in the last published report",
		}),

		reportDays: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "ard_report_days",
			Help: "Number of days covered by the last published report",
		}),

		zeroDays: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "ard_report_days_without_posts",
			Help: "Days without posts in the last published report",
		}),
	}
}

// noopMetrics is used when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits(_ string)                            {}
func (n *noopMetrics) IncCacheMisses(_ string)                          {}
func (n *noopMetrics) IncCacheRejected(_ string)                        {}
func (n *noopMetrics) SetCacheEntryBytes(_ string, _ int)               {}
func (n *noopMetrics) IncRunsTotal(_ string)                            {}
func (n *noopMetrics) ObserveRunDuration(_ time.Duration)               {}
func (n *noopMetrics) ObserveStepDuration(_ string, _ time.Duration)    {}
func (n *noopMetrics) SetLastSuccess(_ time.Time)                       {}
func (n *noopMetrics) SetReportTotals(_, _, _ int)                      {}
