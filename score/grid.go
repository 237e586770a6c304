package score

import (
	"math"

	"github.com/Amndeep7/heterogeneous-groups/types"
)

// ScaledGrid maps each entity ID to its numeric attribute values scaled into
// [0, 1] by min-max normalization.
//
// When an attribute declares measurement bounds, those anchor the scaling;
// otherwise the observed minimum and maximum of the population do. An
// attribute whose range is empty (max == min) scales to 0 for every entity,
// mirroring the zero-variance rule of z-scoring.
//
// Entities are assumed to have passed Schema.ValidateEntities.
func ScaledGrid(entities []types.Entity, schema types.Schema) map[string]map[string]float64 {
	numeric := schema.Numeric()

	grid := make(map[string]map[string]float64, len(entities))
	for _, e := range entities {
		grid[e.ID] = make(map[string]float64, len(numeric))
	}

	for _, a := range numeric {
		lower, upper := attributeRange(a, entities)
		span := upper - lower
		for _, e := range entities {
			if span == 0 {
				grid[e.ID][a.Key] = 0
				continue
			}
			grid[e.ID][a.Key] = (e.Numeric[a.Key] - lower) / span
		}
	}

	return grid
}

// DissimilarityMatrix computes the symmetric pairwise dissimilarity between
// all entities, as the weighted mean over attributes of:
//   - numeric: the absolute difference of the min-max scaled values
//   - categorical: 1 - similarity (0 for equal labels, the declared
//     connection similarity when one exists, 1 otherwise)
//
// Entries are in [0, max weight] with 0 on the diagonal. Weights follow the
// same defaulting rules as Score.
//
// Parameters:
//   - entities: Validated input population; never mutated
//   - schema: Attribute declarations for the run
//   - weights: Attribute weight overrides, may be nil
//
// Returns:
//   - map[string]map[string]float64: Dissimilarity keyed by both entity IDs
//   - error: *types.ConfigurationError for an unusable weight mapping
func DissimilarityMatrix(entities []types.Entity, schema types.Schema, weights map[string]float64) (map[string]map[string]float64, error) {
	if err := validateWeights(weights, schema); err != nil {
		return nil, err
	}

	grid := ScaledGrid(entities, schema)
	categorical := schema.Categorical()
	numeric := schema.Numeric()
	attrCount := float64(len(numeric) + len(categorical))

	matrix := make(map[string]map[string]float64, len(entities))
	for _, e := range entities {
		matrix[e.ID] = make(map[string]float64, len(entities))
	}

	for i, ei := range entities {
		matrix[ei.ID][ei.ID] = 0
		for _, ej := range entities[i+1:] {
			d := 0.0
			for _, a := range numeric {
				d += Weight(weights, a.Key) * math.Abs(grid[ei.ID][a.Key]-grid[ej.ID][a.Key])
			}
			for _, a := range categorical {
				sim := a.Similarity(ei.Categorical[a.Key], ej.Categorical[a.Key])
				d += Weight(weights, a.Key) * (1 - sim)
			}
			if attrCount > 0 {
				d /= attrCount
			}

			matrix[ei.ID][ej.ID] = d
			matrix[ej.ID][ei.ID] = d
		}
	}

	return matrix, nil
}

func attributeRange(a types.Attribute, entities []types.Entity) (float64, float64) {
	if a.Bounds != nil {
		return a.Bounds.Lower, a.Bounds.Upper
	}

	lower, upper := math.Inf(1), math.Inf(-1)
	for _, e := range entities {
		v := e.Numeric[a.Key]
		lower = math.Min(lower, v)
		upper = math.Max(upper, v)
	}
	if lower > upper { // no entities
		return 0, 0
	}

	return lower, upper
}
