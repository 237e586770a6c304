package strategy

import (
	"fmt"
	"slices"

	"github.com/Amndeep7/heterogeneous-groups/types"
)

// validateGroupCount enforces the shared strategy preconditions: the group
// count must be positive and must not exceed the entity count. The engine
// checks the same rules before scoring; the strategies re-check so they are
// safe to call directly.
func validateGroupCount(groupCount, entityCount int) error {
	if groupCount < 1 {
		return &types.ConfigurationError{
			Field:  "GroupCount",
			Reason: fmt.Sprintf("must be positive, got %d", groupCount),
		}
	}
	if groupCount > entityCount {
		return &types.ConfigurationError{
			Field:  "GroupCount",
			Reason: fmt.Sprintf("%d exceeds entity count %d", groupCount, entityCount),
		}
	}

	return nil
}

// rankEntities returns a copy of the scored entities sorted by composite
// score descending, ties broken by original input position ascending. The
// stable secondary key guarantees a deterministic ordering for identical
// inputs.
func rankEntities(scored []types.ScoredEntity) []types.ScoredEntity {
	ranked := slices.Clone(scored)
	slices.SortStableFunc(ranked, func(a, b types.ScoredEntity) int {
		switch {
		case a.Composite > b.Composite:
			return -1
		case a.Composite < b.Composite:
			return 1
		case a.Ordinal < b.Ordinal:
			return -1
		case a.Ordinal > b.Ordinal:
			return 1
		default:
			return 0
		}
	})

	return ranked
}
