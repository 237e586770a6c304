// Package strategy provides the built-in grouping strategy implementations.
//
// Grouping strategies determine how scored entities are partitioned into
// groups that are internally heterogeneous. The package includes two
// strategies:
//
//   - Snake: Serpentine distribution over the composite-score ranking
//     (recommended when numeric spread dominates the notion of diversity)
//   - GreedyBalance: Greedy incremental assignment balancing both numeric
//     variance and categorical label distribution across groups
//
// # Strategy Selection Guide
//
// Snake:
//   - Sorts entities by composite score and deals them out in alternating
//     direction, so adjacent-ranked entities land in different groups
//   - Maximizes per-group score range with O(n log n) cost
//   - Categorical attributes are not explicitly balanced beyond the effect
//     of score weighting
//
// GreedyBalance:
//   - Assigns each entity to the group whose hypothetical post-insertion
//     cost is lowest, combining numeric variance deficit against the global
//     target with categorical label imbalance against the global distribution
//   - Keeps group sizes within 1 of each other
//   - O(n·k) cost
//
// Both strategies are deterministic: identical input and configuration yield
// bit-for-bit identical partitions. Ties in the composite-score ordering are
// broken by original input position; ties in the greedy cost are broken by
// smaller group size, then lower group index.
//
// The strategy set is closed: selection happens through the root package's
// configuration, not an open registry.
package strategy
