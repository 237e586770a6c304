package hetgroups

// Option configures a Grouper with optional dependencies.
type Option func(*grouperOptions)

// grouperOptions holds optional Grouper configuration.
type grouperOptions struct {
	logger  Logger
	metrics MetricsCollector
}

// WithLogger sets a custom logger.
//
// By default a Grouper logs nothing. Any structured logger satisfying the
// Logger interface works; internal/logging provides a slog adapter.
//
// Parameters:
//   - logger: Logger implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	grouper, err := hetgroups.New(&cfg, schema, hetgroups.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(o *grouperOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// By default metrics are discarded. internal/metrics provides a
// Prometheus-backed collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "hetgroups")
//	grouper, err := hetgroups.New(&cfg, schema, hetgroups.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *grouperOptions) {
		o.metrics = metrics
	}
}
