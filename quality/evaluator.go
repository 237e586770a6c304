package quality

import (
	"fmt"
	"math"

	"github.com/Amndeep7/heterogeneous-groups/score"
	"github.com/Amndeep7/heterogeneous-groups/types"
)

// Evaluate computes a QualityReport over a candidate partition.
//
// Per group and attribute it computes the within-group dispersion: population
// variance of the z-scores for numeric attributes, Shannon entropy (base 2)
// of the label distribution for categorical attributes. Per-group values are
// reduced via the requested reduction and the aggregate is the mean of the
// reduced values across attributes. Higher values mean more internal
// diversity.
//
// Parameters:
//   - partition: Candidate partition; never mutated
//   - scored: The scored entities the partition was built from
//   - schema: Attribute declarations for the run
//   - reduction: ReductionMean or ReductionMax
//
// Returns:
//   - types.QualityReport: Per-attribute and aggregate diversity measures
//   - error: *types.ConfigurationError for an unknown reduction,
//     *types.SchemaViolationError when the partition references an entity
//     missing from the scored set
func Evaluate(partition types.Partition, scored []types.ScoredEntity, schema types.Schema, reduction types.Reduction) (types.QualityReport, error) {
	if reduction != types.ReductionMean && reduction != types.ReductionMax {
		return types.QualityReport{}, &types.ConfigurationError{
			Field:  "Reduction",
			Reason: fmt.Sprintf("unknown reduction %q", reduction),
		}
	}

	byID := make(map[string]types.ScoredEntity, len(scored))
	for _, se := range scored {
		byID[se.ID] = se
	}
	for _, g := range partition.Groups {
		for _, id := range g.Members {
			if _, ok := byID[id]; !ok {
				return types.QualityReport{}, &types.SchemaViolationError{
					EntityID: id,
					Reason:   "partition references entity missing from the scored set",
				}
			}
		}
	}

	report := types.QualityReport{
		Attributes: make(map[string]types.AttributeQuality, len(schema.Attributes)),
		Reduction:  reduction,
	}

	for _, a := range schema.Attributes {
		perGroup := make([]float64, len(partition.Groups))
		for gi, g := range partition.Groups {
			switch a.Kind {
			case types.KindNumeric:
				perGroup[gi] = groupVariance(g, byID, a.Key)
			case types.KindCategorical:
				perGroup[gi] = groupEntropy(g, byID, a.Key)
			}
		}

		report.Attributes[a.Key] = types.AttributeQuality{
			Kind:     a.Kind,
			PerGroup: perGroup,
			Reduced:  reduce(perGroup, reduction),
		}
	}

	if len(schema.Attributes) > 0 {
		total := 0.0
		for _, aq := range report.Attributes {
			total += aq.Reduced
		}
		report.Aggregate = total / float64(len(schema.Attributes))
	}

	return report, nil
}

// PairwiseDiversity computes the mean pairwise dissimilarity within each
// group, using the weighted dissimilarity matrix over min-max scaled numeric
// values and categorical label similarities. Groups with fewer than two
// members score 0.
//
// This is the difference-matrix view of diversity: it accounts for declared
// label similarities, which variance and entropy do not.
//
// Parameters:
//   - partition: Candidate partition; never mutated
//   - entities: The raw entities the partition was built from
//   - schema: Attribute declarations for the run
//   - weights: Attribute weight overrides, may be nil
//
// Returns:
//   - []float64: Mean pairwise dissimilarity per group, in group index order
//   - float64: Mean of the per-group values
//   - error: *types.ConfigurationError for an unusable weight mapping,
//     *types.SchemaViolationError when the partition references an unknown entity
func PairwiseDiversity(partition types.Partition, entities []types.Entity, schema types.Schema, weights map[string]float64) ([]float64, float64, error) {
	matrix, err := score.DissimilarityMatrix(entities, schema, weights)
	if err != nil {
		return nil, 0, err
	}

	perGroup := make([]float64, len(partition.Groups))
	for gi, g := range partition.Groups {
		for _, id := range g.Members {
			if _, ok := matrix[id]; !ok {
				return nil, 0, &types.SchemaViolationError{
					EntityID: id,
					Reason:   "partition references entity missing from the input set",
				}
			}
		}

		if len(g.Members) < 2 {
			continue
		}

		total := 0.0
		pairs := 0
		for i, a := range g.Members {
			for _, b := range g.Members[i+1:] {
				total += matrix[a][b]
				pairs++
			}
		}
		perGroup[gi] = total / float64(pairs)
	}

	overall := 0.0
	if len(perGroup) > 0 {
		for _, v := range perGroup {
			overall += v
		}
		overall /= float64(len(perGroup))
	}

	return perGroup, overall, nil
}

func groupVariance(g types.Group, byID map[string]types.ScoredEntity, key string) float64 {
	if g.Size() == 0 {
		return 0
	}

	sum, sumSq := 0.0, 0.0
	for _, id := range g.Members {
		z := byID[id].ZScores[key]
		sum += z
		sumSq += z * z
	}

	mean := sum / float64(g.Size())
	v := sumSq/float64(g.Size()) - mean*mean
	if v < 0 { // float noise
		return 0
	}

	return v
}

func groupEntropy(g types.Group, byID map[string]types.ScoredEntity, key string) float64 {
	if g.Size() == 0 {
		return 0
	}

	counts := make(map[string]int)
	for _, id := range g.Members {
		counts[byID[id].Labels[key]]++
	}

	entropy := 0.0
	for _, count := range counts {
		p := float64(count) / float64(g.Size())
		entropy -= p * math.Log2(p)
	}

	return entropy
}

func reduce(values []float64, reduction types.Reduction) float64 {
	if len(values) == 0 {
		return 0
	}

	switch reduction {
	case types.ReductionMax:
		best := math.Inf(-1)
		for _, v := range values {
			best = math.Max(best, v)
		}

		return best
	default: // ReductionMean, checked by the caller
		total := 0.0
		for _, v := range values {
			total += v
		}

		return total / float64(len(values))
	}
}
