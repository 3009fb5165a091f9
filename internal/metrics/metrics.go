// Package metrics defines the Prometheus collectors for the server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled HTTP requests by method, route
	// pattern, and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "evenly_http_requests_total",
		Help: "Total number of HTTP requests handled.",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration tracks request latency by method and route
	// pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "evenly_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// RecomputeDuration tracks how long a full derived-view recomputation
	// takes. The views are rebuilt from scratch on every overview read.
	RecomputeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "evenly_ledger_recompute_duration_seconds",
		Help:    "Duration of a full balance and debt recomputation.",
		Buckets: prometheus.DefBuckets,
	})
)
