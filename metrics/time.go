package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RequestTime = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "sahaay_request_time_seconds",
	Help: "The time spent in each request",
}, []string{"method", "action"})

var QueueWaitTime = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "sahaay_queue_wait_time_seconds",
	Help: "The time a forwarded message spent waiting for a reply",
}, []string{"outcome"})

var BackendRequestTime = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "sahaay_backend_request_time_seconds",
	Help:    "The time spent in each backend request, including retries",
	Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
}, []string{"backend"})

func StartRequestTimer(method string, action string) *prometheus.Timer {
	return prometheus.NewTimer(RequestTime.With(prometheus.Labels{
		"method": method,
		"action": action,
	}))
}

// QueueTimer - Call ObserveDuration once the outcome is known.
type QueueTimer struct {
	timer   *prometheus.Timer
	outcome string
}

func StartQueueTimer() *QueueTimer {
	t := &QueueTimer{outcome: "unset"}
	t.timer = prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		QueueWaitTime.With(prometheus.Labels{"outcome": t.outcome}).Observe(v)
	}))
	return t
}

func (t *QueueTimer) ObserveDuration(outcome string) {
	t.outcome = outcome
	t.timer.ObserveDuration()
}

func StartBackendTimer(backend string) *prometheus.Timer {
	return prometheus.NewTimer(BackendRequestTime.With(prometheus.Labels{
		"backend": backend,
	}))
}
