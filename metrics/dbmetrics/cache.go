package dbmetrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ReplyCacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "sahaay_reply_cache_requests",
	Help: "The total number of backend reply cache lookups",
}, []string{"isHit"})

func RecordReplyCacheRequest(isHit bool) {
	ReplyCacheRequests.With(prometheus.Labels{
		"isHit": strconv.FormatBool(isHit),
	}).Inc()
}
