package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the HTTP handlers, by route template
	RequestLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quoteopt_http_request_duration_seconds",
		Help:    "Latency of HTTP handlers",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// Total number of HTTP requests served
	Requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quoteopt_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	HistoryWriteFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "quoteopt_history_write_failures_total",
		Help: "Selections that were served but could not be recorded",
	})
)

func Init() {
	prometheus.MustRegister(
		RequestLatency,
		Requests,
		HistoryWriteFailures,
	)
}
