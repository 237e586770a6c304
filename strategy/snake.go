package strategy

import (
	"github.com/Amndeep7/heterogeneous-groups/types"
)

// Snake implements serpentine (boustrophedon) distribution over the
// composite-score ranking.
type Snake struct{}

var _ types.GroupingStrategy = (*Snake)(nil)

// NewSnake creates a new snake-distribution strategy.
//
// The strategy sorts entities by composite score and deals them into groups
// in alternating direction, so adjacent-ranked entities land in different
// groups. This spreads the score distribution evenly across groups and
// maximizes each group's score range.
//
// Categorical attributes are not explicitly balanced by this strategy beyond
// the effect of score weighting; use GreedyBalance when label distribution
// matters.
//
// Returns:
//   - *Snake: Initialized snake-distribution strategy
//
// Example:
//
//	strat := strategy.NewSnake()
//	partition, err := strat.Group(scored, 4)
func NewSnake() *Snake {
	return &Snake{}
}

// Name returns the strategy's configuration name.
func (s *Snake) Name() string {
	return "snake"
}

// Group partitions the scored entities using serpentine distribution.
//
// The algorithm:
//  1. Sort entities by composite score descending, ties by input position
//  2. Walk the sorted sequence assigning entity i to group i%k on forward
//     passes and group k-1-i%k on backward passes, flipping direction every
//     k entities
//
// Given identical input, the output is bit-for-bit identical across runs.
//
// Parameters:
//   - scored: Scored entities for one run; never mutated
//   - groupCount: Number of groups to produce
//
// Returns:
//   - types.Partition: Ordered groups of entity IDs
//   - error: *types.ConfigurationError for an unusable group count
func (s *Snake) Group(scored []types.ScoredEntity, groupCount int) (types.Partition, error) {
	if err := validateGroupCount(groupCount, len(scored)); err != nil {
		return types.Partition{}, err
	}

	groups := make([]types.Group, groupCount)
	for i, se := range rankEntities(scored) {
		pass := i / groupCount
		pos := i % groupCount
		if pass%2 == 1 {
			pos = groupCount - 1 - pos
		}
		groups[pos].Members = append(groups[pos].Members, se.ID)
	}

	return types.Partition{Groups: groups}, nil
}
