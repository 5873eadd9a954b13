package metrics

import "github.com/prometheus/client_golang/prometheus"

type Prometheus struct {
	Steps *prometheus.CounterVec
	Loss  *prometheus.GaugeVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "net",
				Name:      "train_steps",
			}, []string{"session"}),
		Loss: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "net",
				Name:      "train_loss",
			}, []string{"session"}),
	}
}
