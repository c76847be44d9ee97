// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	Registry            *prometheus.Registry
	Calculations        *prometheus.CounterVec
	CalculationDuration prometheus.Histogram
	CacheLookups        *prometheus.CounterVec
	HTTPRequests        *prometheus.CounterVec
}

// New creates the collectors on a fresh registry, so several instances can
// live in one process (tests).
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "emi_calculations_total",
			Help: "EMI calculations by outcome.",
		}, []string{"outcome"}),
		CalculationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "emi_calculation_duration_seconds",
			Help:    "Time spent computing an EMI schedule.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "emi_cache_lookups_total",
			Help: "Result cache lookups by result.",
		}, []string{"result"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by path and status code.",
		}, []string{"path", "code"}),
	}

	m.Registry.MustRegister(
		m.Calculations,
		m.CalculationDuration,
		m.CacheLookups,
		m.HTTPRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveCalculation(outcome string, d time.Duration) {
	m.Calculations.WithLabelValues(outcome).Inc()
	m.CalculationDuration.Observe(d.Seconds())
}

func (m *Metrics) ObserveCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveRequest(path string, code int) {
	m.HTTPRequests.WithLabelValues(path, strconv.Itoa(code)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
