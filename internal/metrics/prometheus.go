package metrics

import "github.com/prometheus/client_golang/prometheus"

type Prometheus struct {
	Evaluations *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "silhouette",
				Name:      "evaluations",
			}, []string{"mode"}),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "silhouette",
				Name:      "evaluation_duration_seconds",
				Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
			}, []string{"mode"}),
	}
}
