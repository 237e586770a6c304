package quality

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Amndeep7/heterogeneous-groups/types"
)

func evalSchema() types.Schema {
	return types.Schema{Attributes: []types.Attribute{
		{Key: "gpa", Kind: types.KindNumeric},
		{Key: "team", Kind: types.KindCategorical, Labels: []string{"red", "blue"}},
	}}
}

func evalScored() []types.ScoredEntity {
	return []types.ScoredEntity{
		{ID: "a", Ordinal: 0, ZScores: map[string]float64{"gpa": 1}, Labels: map[string]string{"team": "red"}},
		{ID: "b", Ordinal: 1, ZScores: map[string]float64{"gpa": -1}, Labels: map[string]string{"team": "blue"}},
		{ID: "c", Ordinal: 2, ZScores: map[string]float64{"gpa": 1}, Labels: map[string]string{"team": "red"}},
		{ID: "d", Ordinal: 3, ZScores: map[string]float64{"gpa": 1}, Labels: map[string]string{"team": "red"}},
	}
}

func TestEvaluate(t *testing.T) {
	schema := evalSchema()
	scored := evalScored()

	// group 0 is diverse, group 1 is uniform
	partition := types.Partition{Groups: []types.Group{
		{Members: []string{"a", "b"}},
		{Members: []string{"c", "d"}},
	}}

	t.Run("numeric variance and categorical entropy per group", func(t *testing.T) {
		report, err := Evaluate(partition, scored, schema, types.ReductionMean)
		require.NoError(t, err)

		gpa := report.Attributes["gpa"]
		require.Equal(t, types.KindNumeric, gpa.Kind)
		require.InDelta(t, 1.0, gpa.PerGroup[0], 1e-12) // z-scores {1, -1}
		require.InDelta(t, 0.0, gpa.PerGroup[1], 1e-12) // z-scores {1, 1}

		team := report.Attributes["team"]
		require.Equal(t, types.KindCategorical, team.Kind)
		require.InDelta(t, 1.0, team.PerGroup[0], 1e-12) // one bit for a 50/50 split
		require.InDelta(t, 0.0, team.PerGroup[1], 1e-12) // single label
	})

	t.Run("mean reduction", func(t *testing.T) {
		report, err := Evaluate(partition, scored, schema, types.ReductionMean)
		require.NoError(t, err)

		require.Equal(t, types.ReductionMean, report.Reduction)
		require.InDelta(t, 0.5, report.Attributes["gpa"].Reduced, 1e-12)
		require.InDelta(t, 0.5, report.Attributes["team"].Reduced, 1e-12)
		require.InDelta(t, 0.5, report.Aggregate, 1e-12)
	})

	t.Run("max reduction", func(t *testing.T) {
		report, err := Evaluate(partition, scored, schema, types.ReductionMax)
		require.NoError(t, err)

		require.InDelta(t, 1.0, report.Attributes["gpa"].Reduced, 1e-12)
		require.InDelta(t, 1.0, report.Attributes["team"].Reduced, 1e-12)
		require.InDelta(t, 1.0, report.Aggregate, 1e-12)
	})

	t.Run("rejects an unknown reduction", func(t *testing.T) {
		_, err := Evaluate(partition, scored, schema, types.Reduction("median"))
		require.ErrorIs(t, err, types.ErrInvalidConfig)

		var cfgErr *types.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		require.Equal(t, "Reduction", cfgErr.Field)
	})

	t.Run("rejects a partition member missing from the scored set", func(t *testing.T) {
		bad := types.Partition{Groups: []types.Group{{Members: []string{"a", "ghost"}}}}

		_, err := Evaluate(bad, scored, schema, types.ReductionMean)
		require.ErrorIs(t, err, types.ErrSchemaViolation)

		var sve *types.SchemaViolationError
		require.ErrorAs(t, err, &sve)
		require.Equal(t, "ghost", sve.EntityID)
	})

	t.Run("empty groups score zero", func(t *testing.T) {
		p := types.Partition{Groups: []types.Group{
			{Members: []string{"a", "b", "c", "d"}},
			{},
		}}

		report, err := Evaluate(p, scored, schema, types.ReductionMean)
		require.NoError(t, err)
		require.Zero(t, report.Attributes["gpa"].PerGroup[1])
		require.Zero(t, report.Attributes["team"].PerGroup[1])
	})

	t.Run("single-member groups score zero", func(t *testing.T) {
		p := types.Partition{Groups: []types.Group{
			{Members: []string{"a"}},
			{Members: []string{"b", "c", "d"}},
		}}

		report, err := Evaluate(p, scored, schema, types.ReductionMean)
		require.NoError(t, err)
		require.Zero(t, report.Attributes["gpa"].PerGroup[0])
		require.Zero(t, report.Attributes["team"].PerGroup[0])
	})
}

func TestPairwiseDiversity(t *testing.T) {
	schema := types.Schema{Attributes: []types.Attribute{
		{Key: "n1", Kind: types.KindNumeric, Bounds: &types.ValuePair{Lower: 0, Upper: 10}},
		{Key: "n2", Kind: types.KindNumeric},
		{Key: "c1", Kind: types.KindCategorical, Labels: []string{"left", "right"}},
		{
			Key: "c2", Kind: types.KindCategorical, Labels: []string{"ye", "yee"},
			Connections: []types.Connection{{ValueA: "ye", ValueB: "yee", Similarity: 0.5}},
		},
		{Key: "c3", Kind: types.KindCategorical, Labels: []string{"re", "ree"}},
	}}
	entities := []types.Entity{
		{
			ID:          "a",
			Numeric:     map[string]float64{"n1": 1, "n2": 2},
			Categorical: map[string]string{"c1": "left", "c2": "ye", "c3": "re"},
		},
		{
			ID:          "b",
			Numeric:     map[string]float64{"n1": 3, "n2": 4},
			Categorical: map[string]string{"c1": "right", "c2": "yee", "c3": "ree"},
		},
		{
			ID:          "c",
			Numeric:     map[string]float64{"n1": 1, "n2": 2},
			Categorical: map[string]string{"c1": "left", "c2": "yee", "c3": "re"},
		},
	}
	weights := map[string]float64{"c3": 0.25}

	t.Run("mean pairwise dissimilarity per group", func(t *testing.T) {
		partition := types.Partition{Groups: []types.Group{
			{Members: []string{"a", "b"}},
			{Members: []string{"c"}},
		}}

		perGroup, overall, err := PairwiseDiversity(partition, entities, schema, weights)
		require.NoError(t, err)

		require.InDelta(t, 0.59, perGroup[0], 1e-9)
		require.Zero(t, perGroup[1]) // fewer than two members
		require.InDelta(t, 0.295, overall, 1e-9)
	})

	t.Run("averages all pairs of a larger group", func(t *testing.T) {
		partition := types.Partition{Groups: []types.Group{
			{Members: []string{"a", "b", "c"}},
		}}

		perGroup, overall, err := PairwiseDiversity(partition, entities, schema, weights)
		require.NoError(t, err)

		// (0.59 + 0.1 + 0.49) / 3
		require.InDelta(t, 1.18/3, perGroup[0], 1e-9)
		require.InDelta(t, 1.18/3, overall, 1e-9)
	})

	t.Run("rejects an unknown partition member", func(t *testing.T) {
		partition := types.Partition{Groups: []types.Group{{Members: []string{"ghost"}}}}

		_, _, err := PairwiseDiversity(partition, entities, schema, nil)
		require.ErrorIs(t, err, types.ErrSchemaViolation)
	})

	t.Run("rejects an unusable weight mapping", func(t *testing.T) {
		partition := types.Partition{Groups: []types.Group{{Members: []string{"a"}}}}

		_, _, err := PairwiseDiversity(partition, entities, schema, map[string]float64{"n1": -1})
		require.ErrorIs(t, err, types.ErrInvalidConfig)
	})
}
