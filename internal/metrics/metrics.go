// Package metrics defines the Prometheus collectors for the report API and
// the scrape handler that exposes them.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Report query outcomes.
const (
	ResultRows  = "rows"
	ResultEmpty = "empty"
	ResultError = "error"
)

// Metrics holds all Prometheus collectors for the API.
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
	ReportQueriesTotal   *prometheus.CounterVec
	ReportRowsReturned   *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// NewRegistry creates a registry carrying the Go and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// New creates and registers all report metrics on reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by method, route, and status.",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "route"},
		),
		HTTPRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed.",
			},
		),
		ReportQueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_queries_total",
				Help: "Report aggregations executed, by report and result (rows, empty, error).",
			},
			[]string{"report", "result"},
		),
		ReportRowsReturned: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "report_rows_returned",
				Help:    "Number of rows returned per report query.",
				Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
			},
			[]string{"report"},
		),
		gatherer: reg,
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
		m.ReportQueriesTotal,
		m.ReportRowsReturned,
	)

	return m
}

// ObserveReport records the outcome of one report query.
func (m *Metrics) ObserveReport(report string, rows int, err error) {
	switch {
	case err != nil:
		m.ReportQueriesTotal.WithLabelValues(report, ResultError).Inc()
		return
	case rows == 0:
		m.ReportQueriesTotal.WithLabelValues(report, ResultEmpty).Inc()
	default:
		m.ReportQueriesTotal.WithLabelValues(report, ResultRows).Inc()
	}
	m.ReportRowsReturned.WithLabelValues(report).Observe(float64(rows))
}

// Handler returns the Prometheus scrape HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
