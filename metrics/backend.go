package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type BackendStatus string

const BackendStatusOk BackendStatus = "ok"
const BackendStatusError BackendStatus = "error"
const BackendStatusRetry BackendStatus = "retry"
const BackendStatusUnsuccessful BackendStatus = "unsuccessful"

var BackendRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "sahaay_backend_requests",
	Help: "The total number of requests made to the messaging backend",
}, []string{"backend", "status"})

func RecordBackendRequest(backend string, status BackendStatus) {
	BackendRequests.With(prometheus.Labels{
		"backend": backend,
		"status":  string(status),
	}).Inc()
}
