package metrics

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var Observer = &Metrics{
	mutex:      new(sync.RWMutex),
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(Observer.prometheus.Steps)
	prometheus.MustRegister(Observer.prometheus.Loss)
}

type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
}

// Increment counts another training step for the given session.
func (m *Metrics) Increment(labels ...string) {
	m.prometheus.Steps.WithLabelValues(labels...).Inc()
}

// Observe tracks the latest loss value for the given session.
func (m *Metrics) Observe(v float64, labels ...string) {
	m.prometheus.Loss.WithLabelValues(labels...).Set(v)
}

// Serve exposes the metrics endpoint on the given port.
func Serve(port int) error {
	http.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(fmt.Sprintf(":%d", port), nil)
}
