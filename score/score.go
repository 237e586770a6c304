package score

import (
	"fmt"
	"math"

	"github.com/Amndeep7/heterogeneous-groups/types"
)

// Score computes a ScoredEntity for every entity in the input population.
//
// For each numeric attribute the population mean and standard deviation are
// computed across all entities and each value is normalized to a z-score.
// When the standard deviation is 0 (every entity shares the same value) the
// attribute contributes a z-score of exactly 0 to every entity instead of
// dividing by zero; this is a defined edge case, not an error.
//
// For each categorical attribute the frequency of each observed label is
// computed and each scored entity carries the frequency of its own label.
//
// The composite score is the weighted sum of the numeric z-scores. Weights
// default to 1.0 per attribute; entries in weights override the default.
// Weights must be non-negative and reference declared attributes.
//
// Entities are assumed to have passed Schema.ValidateEntities.
//
// Parameters:
//   - entities: Validated input population; never mutated
//   - schema: Attribute declarations for the run
//   - weights: Attribute weight overrides, may be nil
//
// Returns:
//   - []types.ScoredEntity: One scored entity per input, in input order
//   - error: *types.ConfigurationError for an unusable weight mapping
func Score(entities []types.Entity, schema types.Schema, weights map[string]float64) ([]types.ScoredEntity, error) {
	if err := validateWeights(weights, schema); err != nil {
		return nil, err
	}

	numeric := schema.Numeric()
	categorical := schema.Categorical()

	stats := make(map[string]meanStd, len(numeric))
	for _, a := range numeric {
		values := make([]float64, len(entities))
		for i, e := range entities {
			values[i] = e.Numeric[a.Key]
		}
		stats[a.Key] = computeMeanStd(values)
	}

	freqs := make(map[string]map[string]float64, len(categorical))
	for _, a := range categorical {
		counts := make(map[string]float64, len(a.Labels))
		for _, e := range entities {
			counts[e.Categorical[a.Key]]++
		}
		for label := range counts {
			counts[label] /= float64(len(entities))
		}
		freqs[a.Key] = counts
	}

	scored := make([]types.ScoredEntity, len(entities))
	for i, e := range entities {
		se := types.ScoredEntity{
			ID:         e.ID,
			Ordinal:    i,
			ZScores:    make(map[string]float64, len(numeric)),
			Labels:     make(map[string]string, len(categorical)),
			LabelFreqs: make(map[string]float64, len(categorical)),
		}

		for _, a := range numeric {
			z := stats[a.Key].zscore(e.Numeric[a.Key])
			se.ZScores[a.Key] = z
			se.Composite += Weight(weights, a.Key) * z
		}
		for _, a := range categorical {
			label := e.Categorical[a.Key]
			se.Labels[a.Key] = label
			se.LabelFreqs[a.Key] = freqs[a.Key][label]
		}

		scored[i] = se
	}

	return scored, nil
}

// Weight returns the effective weight of an attribute: the entry in weights
// when present, 1.0 otherwise.
func Weight(weights map[string]float64, key string) float64 {
	if w, ok := weights[key]; ok {
		return w
	}

	return 1.0
}

func validateWeights(weights map[string]float64, schema types.Schema) error {
	for key, w := range weights {
		if _, ok := schema.Attribute(key); !ok {
			return &types.ConfigurationError{
				Field:  "AttributeWeights",
				Reason: fmt.Sprintf("weight for undeclared attribute %q", key),
			}
		}
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return &types.ConfigurationError{
				Field:  "AttributeWeights",
				Reason: fmt.Sprintf("weight for attribute %q must be a non-negative finite number, got %v", key, w),
			}
		}
	}

	return nil
}

type meanStd struct {
	mean float64
	std  float64
}

func (m meanStd) zscore(v float64) float64 {
	if m.std == 0 {
		return 0
	}

	return (v - m.mean) / m.std
}

// computeMeanStd returns the population mean and standard deviation.
func computeMeanStd(values []float64) meanStd {
	if len(values) == 0 {
		return meanStd{}
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	sq := 0.0
	for _, v := range values {
		d := v - mean
		sq += d * d
	}

	return meanStd{mean: mean, std: math.Sqrt(sq / float64(len(values)))}
}
