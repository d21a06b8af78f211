// Package observability exposes Prometheus metrics for the parts of the
// system the request-level middleware cannot see.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type. The session
	// loader and rate limiter fail open on Redis errors, so this counter is
	// the only place those failures stay visible.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "warbler_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// SessionsIssued counts sessions created at signup and login.
	SessionsIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "warbler_sessions_issued_total",
		Help: "Total number of sessions issued",
	})
)
