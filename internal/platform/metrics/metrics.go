// Package metrics defines the prometheus collectors exposed on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mill_ledger"

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests served by the gateway.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Latency of HTTP requests served by the gateway.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	backendCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "erp_backend_calls_total",
		Help:      "Calls made to the ERP backend, by operation and outcome.",
	}, []string{"operation", "outcome"})

	reconciliations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ledger_reconciliations_total",
		Help:      "Ledger closing balances compared against the backend balance.",
	}, []string{"result"})
)

// Backend call outcomes.
const (
	OutcomeOK              = "ok"
	OutcomeUnauthenticated = "unauthenticated"
	OutcomeNetwork         = "network_error"
	OutcomeServer          = "server_error"
)

// ObserveHTTP records one served request.
func ObserveHTTP(method, route, status string, seconds float64) {
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpDuration.WithLabelValues(method, route).Observe(seconds)
}

// ObserveBackendCall records one ERP backend call.
func ObserveBackendCall(operation, outcome string) {
	backendCalls.WithLabelValues(operation, outcome).Inc()
}

// ObserveReconciliation records whether a computed ledger matched the backend balance.
func ObserveReconciliation(inSync bool) {
	result := "drift"
	if inSync {
		result = "in_sync"
	}
	reconciliations.WithLabelValues(result).Inc()
}

// Handler serves the default registry in the prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
