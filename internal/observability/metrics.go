package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Analytics sources recorded on AnalyticsRequests.
const (
	SourceMock     = "mock"
	SourceRemote   = "remote"
	SourceFallback = "fallback"
)

// Metrics holds the Prometheus collectors for the AgroView backend.
type Metrics struct {
	AnalyticsRequests *prometheus.CounterVec   // labels: endpoint={stats,weather}, source={mock,remote,fallback}
	AnalyticsDuration *prometheus.HistogramVec // labels: endpoint
	Calculations      *prometheus.CounterVec   // labels: culture
	RecordsAppended   prometheus.Counter
	AppendErrors      prometheus.Counter
	MockMode          prometheus.Gauge
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.AnalyticsRequests,
		m.AnalyticsDuration,
		m.Calculations,
		m.RecordsAppended,
		m.AppendErrors,
		m.MockMode,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, so tests can
// build as many as they need.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		AnalyticsRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agroview",
			Name:      "analytics_requests_total",
			Help:      "Analytics panel requests by endpoint and the source that answered.",
		}, []string{"endpoint", "source"}),
		AnalyticsDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "agroview",
			Name:      "analytics_request_duration_seconds",
			Help:      "Remote analytics request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"endpoint"}),
		Calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agroview",
			Name:      "calculations_total",
			Help:      "Successful insumo calculations by culture.",
		}, []string{"culture"}),
		RecordsAppended: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "agroview",
			Name:      "records_appended_total",
			Help:      "Calculation records written to the store.",
		}),
		AppendErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "agroview",
			Name:      "record_append_errors_total",
			Help:      "Failed calculation record writes.",
		}),
		MockMode: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "agroview",
			Name:      "analytics_mock_mode",
			Help:      "1 when analytics are served by the mock generator.",
		}),
	}
}
