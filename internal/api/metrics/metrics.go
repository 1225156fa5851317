// Package metrics defines all custom Prometheus metrics for the hotel
// gateway. It is the single source of truth for metric names, labels, and
// help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hotel_gateway"

// GuardDecisionsTotal counts access-guard outcomes.
// Labels:
//   - outcome: "allow" or "redirect"
//   - class: the route class of the requested path (public, staff, guest, ...)
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of access guard decisions, by outcome and route class.",
	},
	[]string{"outcome", "class"},
)

// SessionsClearedTotal counts forced session teardowns (expired, forged or
// corrupt sessions detected by the guard).
var SessionsClearedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_cleared_total",
		Help:      "Total number of sessions forcibly cleared by the access guard.",
	},
)

// ProxyRequestsTotal counts forwarded proxy calls.
// Labels:
//   - method: the HTTP verb forwarded
//   - status_class: "2xx", "4xx", "5xx", ... of the relayed upstream status
var ProxyRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "proxy_requests_total",
		Help:      "Total number of requests forwarded to the backend, by method and relayed status class.",
	},
	[]string{"method", "status_class"},
)

// ProxyUpstreamErrorsTotal counts proxy calls that never reached the
// backend (connection refused, timeout).
var ProxyUpstreamErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "proxy_upstream_errors_total",
		Help:      "Total number of proxy requests that failed before an upstream response arrived.",
	},
)

// ProxyForwardDuration measures end-to-end forwarding time per method.
var ProxyForwardDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "proxy_forward_duration_seconds",
		Help:      "Duration of one proxied request, from receipt to relayed response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// LoginAttemptsTotal counts login outcomes.
// Labels:
//   - segment: "personal" or "huesped"
//   - result: "ok", "failed" or "throttled"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by segment and result.",
	},
	[]string{"segment", "result"},
)
