package http

import (
	"net/http"

	"emi-calculator/metrics"
)

const (
	RouteCalculate = "/calculate_emi"
	RouteYearly    = "/calculate_emi/yearly"
	RouteCSV       = "/calculate_emi/csv"
	RouteHealth    = "/healthz"
	RouteMetrics   = "/metrics"

	routeOther = "other"
)

var knownRoutes = map[string]bool{
	RouteCalculate: true,
	RouteYearly:    true,
	RouteCSV:       true,
	RouteHealth:    true,
	RouteMetrics:   true,
}

// routeLabel maps a request path onto the fixed route set so metric
// cardinality does not follow client input.
func routeLabel(path string) string {
	if knownRoutes[path] {
		return path
	}
	return routeOther
}

// NewRouter wires the calculator endpoints behind the rate limiter and the
// operational endpoints without it.
func NewRouter(emiHandler *EmiHandler, limiter *RateLimiter, m *metrics.Metrics) http.Handler {
	mux := http.NewServeMux()

	limited := func(h http.HandlerFunc) http.Handler {
		return RateLimitMiddleware(limiter, h)
	}
	mux.Handle(RouteCalculate, limited(emiHandler.CalculateEMI))
	mux.Handle(RouteYearly, limited(emiHandler.YearlySummary))
	mux.Handle(RouteCSV, limited(emiHandler.DownloadSchedule))

	mux.HandleFunc(RouteHealth, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	if m != nil {
		mux.Handle(RouteMetrics, m.Handler())
	}

	return LoggingMiddleware(m, mux)
}
