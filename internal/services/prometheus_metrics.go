package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	analyticsQueries     *prometheus.CounterVec
	analyticsDuration    *prometheus.HistogramVec
	transactionWrites    *prometheus.CounterVec
	transactionsAnalyzed prometheus.Counter
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		analyticsQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_queries_total",
				Help: "Total number of analytics computations",
			},
			[]string{"operation"},
		),
		analyticsDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "analytics_query_duration_milliseconds",
				Help:    "Analytics computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
			},
			[]string{"operation"},
		),
		transactionWrites: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_writes_total",
				Help: "Total number of transaction write operations",
			},
			[]string{"operation"},
		),
		transactionsAnalyzed: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "transactions_analyzed_total",
				Help: "Total number of transactions scanned by analytics computations",
			},
		),
	}
}

func (m *PrometheusMetrics) RecordAnalyticsQuery(operation string, duration time.Duration) {
	m.analyticsQueries.WithLabelValues(operation).Inc()
	m.analyticsDuration.WithLabelValues(operation).Observe(float64(duration.Microseconds()) / 1000.0)
}

func (m *PrometheusMetrics) RecordTransactionWrite(operation string) {
	m.transactionWrites.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordTransactionsAnalyzed(count int) {
	m.transactionsAnalyzed.Add(float64(count))
}

// noopMetrics is the recorder used in tests and anywhere metrics are not
// wired.
type noopMetrics struct{}

// NewNoopMetrics returns a MetricsRecorderInterface that discards everything.
func NewNoopMetrics() MetricsRecorderInterface {
	return noopMetrics{}
}

func (noopMetrics) RecordAnalyticsQuery(string, time.Duration) {}
func (noopMetrics) RecordTransactionWrite(string)             {}
func (noopMetrics) RecordTransactionsAnalyzed(int)            {}
