package telemetry

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMetrics backs Metrics with dynamically-registered Prometheus
// collectors, keyed by metric name. Tag values become a single
// variable-length "tags" label rather than separate label dimensions,
// since Metrics' interface doesn't name label keys up front.
type PrometheusMetrics struct {
	registerer prometheus.Registerer

	mu        sync.Mutex
	counters  map[string]*prometheus.CounterVec
	gauges    map[string]*prometheus.GaugeVec
	durations map[string]*prometheus.HistogramVec
}

// NewPrometheusMetrics returns a Metrics backed by the default Prometheus
// registerer.
func NewPrometheusMetrics() *PrometheusMetrics {
	return NewPrometheusMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsWithRegisterer returns a Metrics backed by reg,
// useful for tests that want an isolated registry.
func NewPrometheusMetricsWithRegisterer(reg prometheus.Registerer) *PrometheusMetrics {
	return &PrometheusMetrics{
		registerer: reg,
		counters:   make(map[string]*prometheus.CounterVec),
		gauges:     make(map[string]*prometheus.GaugeVec),
		durations:  make(map[string]*prometheus.HistogramVec),
	}
}

func (m *PrometheusMetrics) IncCounter(name string, value float64, tags ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.counters[name]
	if !ok {
		c = prometheus.NewCounterVec(prometheus.CounterOpts{Name: name, Help: name}, []string{"tags"})
		m.registerer.MustRegister(c)
		m.counters[name] = c
	}
	c.WithLabelValues(joinTags(tags)).Add(value)
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.gauges[name]
	if !ok {
		g = prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: name, Help: name}, []string{"tags"})
		m.registerer.MustRegister(g)
		m.gauges[name] = g
	}
	g.WithLabelValues(joinTags(tags)).Set(value)
}

func (m *PrometheusMetrics) RecordTimer(name string, duration time.Duration, tags ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.durations[name]
	if !ok {
		h = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    name,
			Help:    name,
			Buckets: prometheus.DefBuckets,
		}, []string{"tags"})
		m.registerer.MustRegister(h)
		m.durations[name] = h
	}
	h.WithLabelValues(joinTags(tags)).Observe(duration.Seconds())
}

func joinTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	out := tags[0]
	for _, t := range tags[1:] {
		out += "," + t
	}
	return out
}
