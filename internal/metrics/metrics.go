package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPRequestsTotal counts served requests by route template, method and status.
var HTTPRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "values_api_http_requests_total",
		Help: "Total number of HTTP requests served",
	},
	[]string{"path", "method", "status"},
)

// HTTPRequestDuration records handler latency by route template and method.
var HTTPRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "values_api_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"path", "method"},
)

// AuthorizationDenied counts requests rejected by the authorizer.
var AuthorizationDenied = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "values_api_authorization_denied_total",
		Help: "Total number of requests denied by the authorizer",
	},
	[]string{"reason"},
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal, HTTPRequestDuration, AuthorizationDenied)
}
