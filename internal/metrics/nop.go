// Package metrics provides MetricsCollector implementations for the library:
// a no-op collector and a Prometheus-backed collector.
package metrics

import "github.com/Amndeep7/heterogeneous-groups/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external metrics
// collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	collector := metrics.NewNop()
//	grouper, err := hetgroups.New(&cfg, schema, hetgroups.WithMetrics(collector))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordGroupingDuration discards the grouping duration metric.
func (n *NopMetrics) RecordGroupingDuration(_ /* strategy */ string, _ /* duration */ float64) {
	// No-op
}

// RecordGroupingResult discards the grouping result metric.
func (n *NopMetrics) RecordGroupingResult(_ /* strategy */ string, _ /* success */ bool) {
	// No-op
}

// RecordEntityCount discards the entity count metric.
func (n *NopMetrics) RecordEntityCount(_ /* count */ int) {
	// No-op
}

// RecordGroupCount discards the group count metric.
func (n *NopMetrics) RecordGroupCount(_ /* count */ int) {
	// No-op
}

// RecordEvaluationDuration discards the evaluation duration metric.
func (n *NopMetrics) RecordEvaluationDuration(_ /* duration */ float64) {
	// No-op
}
