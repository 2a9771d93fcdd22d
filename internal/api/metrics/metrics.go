// Package metrics defines the Prometheus metrics of the authentication server.
// Metrics register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "financeauth"

// AuthRequestsTotal counts login and registration requests.
// Labels:
//   - endpoint: "login" or "register"
//   - result: "success", "rejected" (service refused), or "bad_request" (unparseable or incomplete body)
var AuthRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_requests_total",
		Help:      "Total number of login and registration requests, by endpoint and result.",
	},
	[]string{"endpoint", "result"},
)
