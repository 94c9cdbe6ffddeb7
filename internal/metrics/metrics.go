package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "librarian_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "librarian_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})

	FacadeCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "librarian_facade_calls_total",
		Help: "Calls to the catalog facade by operation and outcome",
	}, []string{"op", "outcome"})

	SearchResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "librarian_search_results",
		Help:    "Number of books returned per search",
		Buckets: []float64{0, 1, 2, 5, 10, 25, 50},
	})

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "librarian_active_sessions",
		Help: "Sessions currently held in memory",
	})
)
