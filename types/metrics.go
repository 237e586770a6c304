package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// The library calls these from the grouping pipeline; implementations must be
// safe for concurrent use when runs execute concurrently on distinct inputs.
type MetricsCollector interface {
	// RecordGroupingDuration records the time taken by one grouping run.
	//
	// Parameters:
	//   - strategy: Strategy name ("snake", "greedy_balance")
	//   - duration: Time taken in seconds
	RecordGroupingDuration(strategy string, duration float64)

	// RecordGroupingResult records a grouping run outcome (success or failure).
	//
	// Parameters:
	//   - strategy: Strategy name
	//   - success: true if the run produced a partition, false otherwise
	RecordGroupingResult(strategy string, success bool)

	// RecordEntityCount sets the entity count of the most recent run (gauge).
	RecordEntityCount(count int)

	// RecordGroupCount sets the group count of the most recent run (gauge).
	RecordGroupCount(count int)

	// RecordEvaluationDuration records the time taken by a quality evaluation.
	//
	// Parameters:
	//   - duration: Time taken in seconds
	RecordEvaluationDuration(duration float64)
}
