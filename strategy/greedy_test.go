package strategy

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Amndeep7/heterogeneous-groups/types"
)

func labeledEntity(id string, ordinal int, label string) types.ScoredEntity {
	return types.ScoredEntity{
		ID:      id,
		Ordinal: ordinal,
		Labels:  map[string]string{"team": label},
	}
}

func TestGreedyBalance_Group(t *testing.T) {
	t.Run("splits an even label distribution evenly", func(t *testing.T) {
		scored := []types.ScoredEntity{
			labeledEntity("a", 0, "l"),
			labeledEntity("b", 1, "l"),
			labeledEntity("c", 2, "r"),
			labeledEntity("d", 3, "r"),
		}

		partition, err := NewGreedyBalance().Group(scored, 2)
		require.NoError(t, err)

		// every group ends with one of each label
		byID := map[string]string{}
		for _, se := range scored {
			byID[se.ID] = se.Labels["team"]
		}
		for gi, g := range partition.Groups {
			counts := map[string]int{}
			for _, id := range g.Members {
				counts[byID[id]]++
			}
			require.Equal(t, 1, counts["l"], "group %d", gi)
			require.Equal(t, 1, counts["r"], "group %d", gi)
		}
	})

	t.Run("label counts differ by at most one per group", func(t *testing.T) {
		// 6 of one label, 3 of another, across 3 groups
		var scored []types.ScoredEntity
		for i := 0; i < 6; i++ {
			scored = append(scored, labeledEntity(fmt.Sprintf("l%d", i), i, "common"))
		}
		for i := 0; i < 3; i++ {
			scored = append(scored, labeledEntity(fmt.Sprintf("r%d", i), 6+i, "rare"))
		}

		partition, err := NewGreedyBalance().Group(scored, 3)
		require.NoError(t, err)

		byID := map[string]string{}
		for _, se := range scored {
			byID[se.ID] = se.Labels["team"]
		}
		for gi, g := range partition.Groups {
			counts := map[string]int{}
			for _, id := range g.Members {
				counts[byID[id]]++
			}
			require.Equal(t, 2, counts["common"], "group %d", gi)
			require.Equal(t, 1, counts["rare"], "group %d", gi)
		}
	})

	t.Run("balances numeric dispersion against the target variance", func(t *testing.T) {
		scored := []types.ScoredEntity{
			{ID: "a", Ordinal: 0, ZScores: map[string]float64{"gpa": 2}, Composite: 2},
			{ID: "b", Ordinal: 1, ZScores: map[string]float64{"gpa": 1}, Composite: 1},
			{ID: "c", Ordinal: 2, ZScores: map[string]float64{"gpa": -1}, Composite: -1},
			{ID: "d", Ordinal: 3, ZScores: map[string]float64{"gpa": -2}, Composite: -2},
		}

		partition, err := NewGreedyBalance().Group(scored, 2)
		require.NoError(t, err)

		// a pairs with the entity that reduces its deficit first
		require.Equal(t, []string{"a", "b"}, partition.Groups[0].Members)
		require.Equal(t, []string{"c", "d"}, partition.Groups[1].Members)
	})

	t.Run("group sizes differ by at most one", func(t *testing.T) {
		var scored []types.ScoredEntity
		for i := 0; i < 7; i++ {
			scored = append(scored, types.ScoredEntity{
				ID:        fmt.Sprintf("e%d", i),
				Ordinal:   i,
				ZScores:   map[string]float64{"x": float64(i%3) - 1},
				Composite: float64(i%3) - 1,
			})
		}

		partition, err := NewGreedyBalance().Group(scored, 3)
		require.NoError(t, err)
		require.NoError(t, partition.Complete([]string{"e0", "e1", "e2", "e3", "e4", "e5", "e6"}))

		for _, g := range partition.Groups {
			require.GreaterOrEqual(t, g.Size(), 2)
			require.LessOrEqual(t, g.Size(), 3)
		}
	})

	t.Run("no group is starved empty", func(t *testing.T) {
		var scored []types.ScoredEntity
		for i := 0; i < 5; i++ {
			scored = append(scored, labeledEntity(fmt.Sprintf("e%d", i), i, "same"))
		}

		partition, err := NewGreedyBalance().Group(scored, 4)
		require.NoError(t, err)
		for gi, g := range partition.Groups {
			require.NotZero(t, g.Size(), "group %d", gi)
		}
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		scored := []types.ScoredEntity{
			{ID: "a", Ordinal: 0, ZScores: map[string]float64{"x": 1}, Labels: map[string]string{"c": "p"}, Composite: 1},
			{ID: "b", Ordinal: 1, ZScores: map[string]float64{"x": -1}, Labels: map[string]string{"c": "q"}, Composite: -1},
			{ID: "c", Ordinal: 2, ZScores: map[string]float64{"x": 0.5}, Labels: map[string]string{"c": "p"}, Composite: 0.5},
			{ID: "d", Ordinal: 3, ZScores: map[string]float64{"x": -0.5}, Labels: map[string]string{"c": "q"}, Composite: -0.5},
		}

		strat := NewGreedyBalance()
		first, err := strat.Group(scored, 2)
		require.NoError(t, err)
		second, err := strat.Group(scored, 2)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("attribute weights steer the cost", func(t *testing.T) {
		scored := []types.ScoredEntity{
			{ID: "a", Ordinal: 0, ZScores: map[string]float64{"gpa": 2}, Composite: 2},
			{ID: "b", Ordinal: 1, ZScores: map[string]float64{"gpa": 1}, Composite: 1},
			{ID: "c", Ordinal: 2, ZScores: map[string]float64{"gpa": -1}, Composite: -1},
			{ID: "d", Ordinal: 3, ZScores: map[string]float64{"gpa": -2}, Composite: -2},
		}

		// zeroing the only attribute makes every cost tie, so assignment
		// falls back to size then index and deals round robin
		strat := NewGreedyBalance(WithAttributeWeights(map[string]float64{"gpa": 0}))
		partition, err := strat.Group(scored, 2)
		require.NoError(t, err)
		require.Equal(t, []string{"a", "c"}, partition.Groups[0].Members)
		require.Equal(t, []string{"b", "d"}, partition.Groups[1].Members)
	})

	t.Run("rejects a non-positive group count", func(t *testing.T) {
		_, err := NewGreedyBalance().Group([]types.ScoredEntity{{ID: "a"}}, -1)
		require.ErrorIs(t, err, types.ErrInvalidConfig)
	})

	t.Run("rejects a group count exceeding the entity count", func(t *testing.T) {
		_, err := NewGreedyBalance().Group([]types.ScoredEntity{{ID: "a"}}, 2)
		require.ErrorIs(t, err, types.ErrInvalidConfig)
	})
}

func TestGreedyBalance_Name(t *testing.T) {
	require.Equal(t, "greedy_balance", NewGreedyBalance().Name())
}

func TestWithAttributeWeights_Copies(t *testing.T) {
	weights := map[string]float64{"x": 2}
	strat := NewGreedyBalance(WithAttributeWeights(weights))
	weights["x"] = 99

	require.InDelta(t, 2.0, strat.weight("x"), 1e-12)
	require.InDelta(t, 1.0, strat.weight("unset"), 1e-12)
}

func TestValidateGroupCount(t *testing.T) {
	require.NoError(t, validateGroupCount(1, 1))
	require.NoError(t, validateGroupCount(3, 10))
	require.ErrorIs(t, validateGroupCount(0, 10), types.ErrInvalidConfig)
	require.ErrorIs(t, validateGroupCount(11, 10), types.ErrInvalidConfig)
}

func TestRankEntities(t *testing.T) {
	scored := []types.ScoredEntity{
		{ID: "mid", Ordinal: 0, Composite: 1},
		{ID: "top", Ordinal: 1, Composite: 2},
		{ID: "tieA", Ordinal: 2, Composite: 0},
		{ID: "tieB", Ordinal: 3, Composite: 0},
	}

	ranked := rankEntities(scored)

	require.Equal(t, "top", ranked[0].ID)
	require.Equal(t, "mid", ranked[1].ID)
	require.Equal(t, "tieA", ranked[2].ID)
	require.Equal(t, "tieB", ranked[3].ID)

	// input untouched
	require.Equal(t, "mid", scored[0].ID)
}
