package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	PostViews = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "blog_post_views_total",
			Help: "Total number of recorded post detail views.",
		},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPRequestDuration, PostViews)
}
