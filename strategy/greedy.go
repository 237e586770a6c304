package strategy

import (
	"maps"
	"math"
	"slices"

	"github.com/Amndeep7/heterogeneous-groups/types"
)

// costEpsilon is the tolerance under which two hypothetical costs are
// considered tied, so the documented size/index tie-breaks apply instead of
// float noise.
const costEpsilon = 1e-9

// GreedyBalance implements greedy variance/frequency balancing assignment.
type GreedyBalance struct {
	weights map[string]float64
}

var _ types.GroupingStrategy = (*GreedyBalance)(nil)

// GreedyBalanceOption configures a GreedyBalance strategy.
type GreedyBalanceOption func(*GreedyBalance)

// NewGreedyBalance creates a new greedy balancing strategy.
//
// The strategy assigns entities one at a time, in descending composite-score
// order, to the group whose hypothetical post-insertion cost is lowest. The
// cost combines the change in the group's numeric variance deficit relative
// to the global target variance with the change in its categorical label
// imbalance relative to the global label distribution, so both numeric
// spread and rare labels end up balanced across groups.
//
// Parameters:
//   - opts: Optional configuration (WithAttributeWeights)
//
// Returns:
//   - *GreedyBalance: Initialized greedy balancing strategy
//
// Example:
//
//	strat := strategy.NewGreedyBalance(
//	    strategy.WithAttributeWeights(map[string]float64{"gpa": 2.0}),
//	)
//	partition, err := strat.Group(scored, 4)
func NewGreedyBalance(opts ...GreedyBalanceOption) *GreedyBalance {
	gb := &GreedyBalance{}

	for _, opt := range opts {
		opt(gb)
	}

	return gb
}

// WithAttributeWeights sets per-attribute weights for the cost computation.
//
// Attributes without an entry weigh 1.0. The mapping is copied; later changes
// to the argument do not affect the strategy.
//
// Parameters:
//   - weights: Mapping from attribute key to non-negative weight
//
// Returns:
//   - GreedyBalanceOption: Configuration option
func WithAttributeWeights(weights map[string]float64) GreedyBalanceOption {
	return func(gb *GreedyBalance) {
		gb.weights = maps.Clone(weights)
	}
}

// Name returns the strategy's configuration name.
func (gb *GreedyBalance) Name() string {
	return "greedy_balance"
}

// Group partitions the scored entities using greedy incremental assignment.
//
// The algorithm:
//  1. Initialize groupCount empty groups
//  2. Process entities in descending composite-score order, ties by input
//     position
//  3. For each entity, compute for every candidate group the hypothetical
//     post-insertion cost and assign to the lowest; ties broken by lowest
//     current group size, then by group index
//  4. Skip groups that are full (at the ceiling size) or whose use would
//     leave too few entities to fill every group to the floor size, so group
//     sizes differ by at most 1 and no group is starved empty
//
// Given identical input and weights, the output is bit-for-bit identical
// across runs.
//
// Parameters:
//   - scored: Scored entities for one run; never mutated
//   - groupCount: Number of groups to produce
//
// Returns:
//   - types.Partition: Ordered groups of entity IDs
//   - error: *types.ConfigurationError for an unusable group count
func (gb *GreedyBalance) Group(scored []types.ScoredEntity, groupCount int) (types.Partition, error) {
	n := len(scored)
	if err := validateGroupCount(groupCount, n); err != nil {
		return types.Partition{}, err
	}

	numKeys, catKeys := attributeKeys(scored)
	targets := targetVariances(scored, numKeys)
	globalFreqs, labels := globalDistributions(scored, catKeys)

	floorSize := n / groupCount
	ceilSize := (n + groupCount - 1) / groupCount

	states := make([]groupState, groupCount)
	for i := range states {
		states[i] = newGroupState(numKeys, catKeys)
	}

	for idx, se := range rankEntities(scored) {
		remaining := n - idx - 1

		best := -1
		bestCost := 0.0
		for gi := range states {
			if states[gi].size >= ceilSize {
				continue
			}
			if !fillable(states, gi, floorSize, remaining) {
				continue
			}

			cost := gb.insertionCost(&states[gi], se, numKeys, catKeys, targets, globalFreqs, labels)
			switch {
			case best == -1,
				cost < bestCost-costEpsilon,
				math.Abs(cost-bestCost) <= costEpsilon && states[gi].size < states[best].size:
				best = gi
				bestCost = cost
			}
		}

		states[best].insert(se)
	}

	groups := make([]types.Group, groupCount)
	for i := range states {
		groups[i] = types.Group{Members: states[i].members}
	}

	return types.Partition{Groups: groups}, nil
}

// fillable reports whether assigning the next entity to group gi still leaves
// enough remaining entities to bring every group up to the floor size.
func fillable(states []groupState, gi, floorSize, remaining int) bool {
	need := 0
	for hj := range states {
		size := states[hj].size
		if hj == gi {
			size++
		}
		if size < floorSize {
			need += floorSize - size
		}
	}

	return remaining >= need
}

// insertionCost computes the hypothetical cost of adding se to g: the
// weighted change in numeric variance deficit plus the weighted change in
// categorical label imbalance. Negative costs mean the insertion moves the
// group toward the global targets.
func (gb *GreedyBalance) insertionCost(
	g *groupState,
	se types.ScoredEntity,
	numKeys, catKeys []string,
	targets map[string]float64,
	globalFreqs map[string]map[string]float64,
	labels map[string][]string,
) float64 {
	cost := 0.0

	for _, key := range numKeys {
		z := se.ZScores[key]
		before := math.Max(0, targets[key]-variance(g.sum[key], g.sumSq[key], g.size))
		after := math.Max(0, targets[key]-variance(g.sum[key]+z, g.sumSq[key]+z*z, g.size+1))
		cost += gb.weight(key) * (after - before)
	}

	for _, key := range catKeys {
		before := imbalance(g, key, nil, labels[key], globalFreqs[key])
		added := se.Labels[key]
		after := imbalance(g, key, &added, labels[key], globalFreqs[key])
		cost += gb.weight(key) * (after - before)
	}

	return cost
}

// imbalance sums, over the attribute's observed labels, the absolute
// deviation of the group's label proportion from the global frequency. When
// added is non-nil the deviation is computed as if that label had been
// inserted into the group.
func imbalance(g *groupState, key string, added *string, labels []string, freqs map[string]float64) float64 {
	size := g.size
	if added != nil {
		size++
	}

	total := 0.0
	for _, label := range labels {
		count := g.labelCounts[key][label]
		if added != nil && label == *added {
			count++
		}
		prop := 0.0
		if size > 0 {
			prop = float64(count) / float64(size)
		}
		total += math.Abs(prop - freqs[label])
	}

	return total
}

func (gb *GreedyBalance) weight(key string) float64 {
	if w, ok := gb.weights[key]; ok {
		return w
	}

	return 1.0
}

type groupState struct {
	size    int
	members []string

	// per numeric attribute: running sum and sum of squares of z-scores
	sum   map[string]float64
	sumSq map[string]float64

	// per categorical attribute: label counts
	labelCounts map[string]map[string]int
}

func newGroupState(numKeys, catKeys []string) groupState {
	st := groupState{
		sum:         make(map[string]float64, len(numKeys)),
		sumSq:       make(map[string]float64, len(numKeys)),
		labelCounts: make(map[string]map[string]int, len(catKeys)),
	}
	for _, key := range catKeys {
		st.labelCounts[key] = make(map[string]int)
	}

	return st
}

func (g *groupState) insert(se types.ScoredEntity) {
	g.size++
	g.members = append(g.members, se.ID)
	for key, z := range se.ZScores {
		g.sum[key] += z
		g.sumSq[key] += z * z
	}
	for key, label := range se.Labels {
		g.labelCounts[key][label]++
	}
}

// variance computes the population variance from running sums, 0 for empty or
// single-member groups.
func variance(sum, sumSq float64, size int) float64 {
	if size == 0 {
		return 0
	}

	mean := sum / float64(size)
	v := sumSq/float64(size) - mean*mean
	if v < 0 { // float noise
		return 0
	}

	return v
}

// attributeKeys collects the numeric and categorical attribute keys observed
// on the scored entities, sorted for deterministic iteration.
func attributeKeys(scored []types.ScoredEntity) ([]string, []string) {
	numSet := make(map[string]struct{})
	catSet := make(map[string]struct{})
	for _, se := range scored {
		for key := range se.ZScores {
			numSet[key] = struct{}{}
		}
		for key := range se.Labels {
			catSet[key] = struct{}{}
		}
	}

	numKeys := slices.Sorted(maps.Keys(numSet))
	catKeys := slices.Sorted(maps.Keys(catSet))

	return numKeys, catKeys
}

// targetVariances computes the population variance of the z-scores per
// numeric attribute. With proper z-scoring this is 1, or 0 for a
// zero-variance attribute; computing it instead of assuming it keeps the
// strategy correct for externally produced scored entities.
func targetVariances(scored []types.ScoredEntity, numKeys []string) map[string]float64 {
	targets := make(map[string]float64, len(numKeys))
	for _, key := range numKeys {
		sum, sumSq := 0.0, 0.0
		for _, se := range scored {
			z := se.ZScores[key]
			sum += z
			sumSq += z * z
		}
		targets[key] = variance(sum, sumSq, len(scored))
	}

	return targets
}

// globalDistributions computes, per categorical attribute, the global label
// frequencies and the sorted list of observed labels.
func globalDistributions(scored []types.ScoredEntity, catKeys []string) (map[string]map[string]float64, map[string][]string) {
	freqs := make(map[string]map[string]float64, len(catKeys))
	labels := make(map[string][]string, len(catKeys))

	for _, key := range catKeys {
		counts := make(map[string]float64)
		for _, se := range scored {
			counts[se.Labels[key]]++
		}
		for label := range counts {
			counts[label] /= float64(len(scored))
		}
		freqs[key] = counts
		labels[key] = slices.Sorted(maps.Keys(counts))
	}

	return freqs, labels
}
