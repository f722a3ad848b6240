package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var Observer = &Metrics{
	mutex:      new(sync.RWMutex),
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(Observer.prometheus.Evaluations)
	prometheus.MustRegister(Observer.prometheus.Duration)
}

type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
}

// IncrementEvaluations counts one evaluation run for the given mode.
func (m *Metrics) IncrementEvaluations(labels ...string) {
	m.prometheus.Evaluations.WithLabelValues(labels...).Inc()
}

// ObserveDuration tracks the evaluation duration in seconds for the given mode.
func (m *Metrics) ObserveDuration(seconds float64, labels ...string) {
	m.prometheus.Duration.WithLabelValues(labels...).Observe(seconds)
}
