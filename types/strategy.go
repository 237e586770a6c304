package types

// GroupingStrategy partitions scored entities into a fixed number of groups.
//
// Strategies implement different partitioning algorithms:
//   - Snake: Serpentine distribution over the composite-score ranking
//   - GreedyBalance: Greedy variance/frequency balancing assignment
//
// The strategy set is a closed enumeration selected through the configuration;
// there is no open registry.
//
// Strategy implementations must:
//   - Be deterministic (identical input yields bit-for-bit identical output)
//   - Produce a proper partition (every entity in exactly one group)
//   - Keep group sizes within 1 of each other
//   - Be stateless (no side effects, safe for concurrent use on distinct inputs)
type GroupingStrategy interface {
	// Group partitions the scored entities into groupCount groups.
	//
	// Parameters:
	//   - scored: Scored entities for one run; never mutated
	//   - groupCount: Number of groups to produce
	//
	// Returns:
	//   - Partition: Ordered groups of entity IDs
	//   - error: *ConfigurationError when groupCount is non-positive or
	//     exceeds the entity count
	Group(scored []ScoredEntity, groupCount int) (Partition, error)

	// Name returns the strategy's configuration name.
	Name() string
}
