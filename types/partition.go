package types

import (
	"fmt"
	"slices"
)

// Group is an ordered sequence of entity identifiers.
type Group struct {
	// Members lists entity IDs in assignment order.
	Members []string `json:"members"`
}

// Size returns the number of members in the group.
func (g Group) Size() int {
	return len(g.Members)
}

// Contains reports whether the group holds the given entity ID.
func (g Group) Contains(id string) bool {
	return slices.Contains(g.Members, id)
}

// Partition is an ordered sequence of disjoint groups whose union is exactly
// the input entity set.
//
// A partition is produced by a single strategy invocation and is immutable
// thereafter.
type Partition struct {
	// Groups lists the groups in index order. The count is fixed by the
	// requested group count.
	Groups []Group `json:"groups"`
}

// GroupCount returns the number of groups in the partition.
func (p Partition) GroupCount() int {
	return len(p.Groups)
}

// MemberCount returns the total number of entities across all groups.
func (p Partition) MemberCount() int {
	n := 0
	for _, g := range p.Groups {
		n += len(g.Members)
	}

	return n
}

// GroupOf returns the index of the group containing the given entity ID, or
// -1 when the partition does not contain it.
func (p Partition) GroupOf(id string) int {
	for i, g := range p.Groups {
		if g.Contains(id) {
			return i
		}
	}

	return -1
}

// Complete verifies the partition invariant against the given entity IDs:
// every ID appears in exactly one group and no group holds an unknown ID.
//
// Returns:
//   - error: Description of the first violation found, nil when the partition
//     is a proper partition of ids
func (p Partition) Complete(ids []string) error {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	seen := make(map[string]struct{}, len(ids))
	for i, g := range p.Groups {
		for _, id := range g.Members {
			if _, ok := want[id]; !ok {
				return fmt.Errorf("group %d contains unknown entity %q", i, id)
			}
			if _, dup := seen[id]; dup {
				return fmt.Errorf("entity %q assigned more than once", id)
			}
			seen[id] = struct{}{}
		}
	}
	if len(seen) != len(want) {
		for _, id := range ids {
			if _, ok := seen[id]; !ok {
				return fmt.Errorf("entity %q not assigned to any group", id)
			}
		}
	}

	return nil
}
