package metrics

import (
	"github.com/neha-maurya01/SahaayAI/filter/classification"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var GuardrailChecks = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "sahaay_guardrail_checks",
	Help: "The total number of messages validated, by resulting category",
}, []string{"category", "surface"})

// RecordGuardrailCheck - surface is where the message came from, eg "web" or "validate".
func RecordGuardrailCheck(category classification.Classification, surface string) {
	GuardrailChecks.With(prometheus.Labels{
		"category": category.String(),
		"surface":  surface,
	}).Inc()
}
