package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Amndeep7/heterogeneous-groups/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	runDuration  *prometheus.HistogramVec
	runResults   *prometheus.CounterVec
	entityCount  prometheus.Gauge
	groupCount   prometheus.Gauge
	evalDuration prometheus.Histogram
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "hetgroups" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "hetgroups"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.runDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "grouping",
			Name:      "run_duration_seconds",
			Help:      "Observed grouping run durations in seconds by strategy.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"strategy"})

		p.runResults = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "grouping",
			Name:      "runs_total",
			Help:      "Total grouping runs by strategy and result.",
		}, []string{"strategy", "result"})

		p.entityCount = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "grouping",
			Name:      "entities_current",
			Help:      "Entity count of the most recent grouping run.",
		})

		p.groupCount = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "grouping",
			Name:      "groups_current",
			Help:      "Group count of the most recent grouping run.",
		})

		p.evalDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "quality",
			Name:      "evaluation_duration_seconds",
			Help:      "Observed quality evaluation durations in seconds.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		})

		p.reg.MustRegister(p.runDuration, p.runResults, p.entityCount, p.groupCount, p.evalDuration)
	})
}

// RecordGroupingDuration records the time taken by one grouping run.
func (p *PrometheusCollector) RecordGroupingDuration(strategy string, duration float64) {
	p.ensureRegistered()
	p.runDuration.WithLabelValues(strategy).Observe(duration)
}

// RecordGroupingResult records a grouping run outcome.
func (p *PrometheusCollector) RecordGroupingResult(strategy string, success bool) {
	p.ensureRegistered()
	result := "success"
	if !success {
		result = "failure"
	}
	p.runResults.WithLabelValues(strategy, result).Inc()
}

// RecordEntityCount sets the entity count gauge.
func (p *PrometheusCollector) RecordEntityCount(count int) {
	p.ensureRegistered()
	p.entityCount.Set(float64(count))
}

// RecordGroupCount sets the group count gauge.
func (p *PrometheusCollector) RecordGroupCount(count int) {
	p.ensureRegistered()
	p.groupCount.Set(float64(count))
}

// RecordEvaluationDuration records the time taken by a quality evaluation.
func (p *PrometheusCollector) RecordEvaluationDuration(duration float64) {
	p.ensureRegistered()
	p.evalDuration.Observe(duration)
}
