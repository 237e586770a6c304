package score

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Amndeep7/heterogeneous-groups/types"
)

func mixedSchema() types.Schema {
	return types.Schema{Attributes: []types.Attribute{
		{Key: "n1", Kind: types.KindNumeric, Bounds: &types.ValuePair{Lower: 0, Upper: 10}},
		{Key: "n2", Kind: types.KindNumeric},
		{Key: "c1", Kind: types.KindCategorical, Labels: []string{"left", "right"}},
		{
			Key: "c2", Kind: types.KindCategorical, Labels: []string{"ye", "yee"},
			Connections: []types.Connection{{ValueA: "ye", ValueB: "yee", Similarity: 0.5}},
		},
		{Key: "c3", Kind: types.KindCategorical, Labels: []string{"re", "ree"}},
	}}
}

func mixedEntities() []types.Entity {
	return []types.Entity{
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
}

func TestScaledGrid(t *testing.T) {
	t.Run("scales against declared bounds and the observed range", func(t *testing.T) {
		grid := ScaledGrid(mixedEntities(), mixedSchema())

		// n1 scales against its declared [0, 10] bounds
		require.InDelta(t, 0.1, grid["a"]["n1"], 1e-12)
		require.InDelta(t, 0.3, grid["b"]["n1"], 1e-12)
		require.InDelta(t, 0.1, grid["c"]["n1"], 1e-12)

		// n2 scales against the observed [2, 4] range
		require.InDelta(t, 0.0, grid["a"]["n2"], 1e-12)
		require.InDelta(t, 1.0, grid["b"]["n2"], 1e-12)
		require.InDelta(t, 0.0, grid["c"]["n2"], 1e-12)
	})

	t.Run("empty range scales to zero", func(t *testing.T) {
		schema := types.Schema{Attributes: []types.Attribute{
			{Key: "flat", Kind: types.KindNumeric},
		}}
		entities := []types.Entity{
			{ID: "a", Numeric: map[string]float64{"flat": 5}},
			{ID: "b", Numeric: map[string]float64{"flat": 5}},
		}

		grid := ScaledGrid(entities, schema)
		require.Zero(t, grid["a"]["flat"])
		require.Zero(t, grid["b"]["flat"])
	})
}

func TestDissimilarityMatrix(t *testing.T) {
	weights := map[string]float64{"c3": 0.25}

	matrix, err := DissimilarityMatrix(mixedEntities(), mixedSchema(), weights)
	require.NoError(t, err)

	t.Run("matches the expected pairwise values", func(t *testing.T) {
		require.InDelta(t, 0.59, matrix["a"]["b"], 1e-9)
		require.InDelta(t, 0.49, matrix["b"]["c"], 1e-9)
		require.InDelta(t, 0.1, matrix["a"]["c"], 1e-9)
	})

	t.Run("is symmetric with a zero diagonal", func(t *testing.T) {
		for _, i := range []string{"a", "b", "c"} {
			require.Zero(t, matrix[i][i])
			for _, j := range []string{"a", "b", "c"} {
				require.InDelta(t, matrix[j][i], matrix[i][j], 1e-12)
			}
		}
	})

	t.Run("rejects an unusable weight mapping", func(t *testing.T) {
		_, err := DissimilarityMatrix(mixedEntities(), mixedSchema(), map[string]float64{"c3": -1})
		require.ErrorIs(t, err, types.ErrInvalidConfig)
	})
}
