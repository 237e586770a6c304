package hetgroups

import (
	"fmt"
	"math"

	"github.com/Amndeep7/heterogeneous-groups/types"
)

// StrategyKind names a grouping strategy.
//
// The strategy set is a closed enumeration: the two kinds below are the only
// recognized values. Custom algorithms are deliberately not pluggable.
type StrategyKind string

// Recognized strategies.
const (
	// StrategySnake is the serpentine distribution over the composite-score
	// ranking, derived from published U-learning group-composition work.
	StrategySnake StrategyKind = "snake"

	// StrategyGreedyBalance is the greedy variance/frequency balancing
	// assignment.
	StrategyGreedyBalance StrategyKind = "greedy_balance"
)

// Config is the configuration for a grouping run.
type Config struct {
	// GroupCount is the number of groups to produce. Must be positive and
	// must not exceed the entity count of a run; an infeasible count is a
	// configuration error, never silently clamped.
	GroupCount int `yaml:"groupCount" json:"groupCount"`

	// Strategy selects the partitioning algorithm. Defaults to StrategySnake.
	Strategy StrategyKind `yaml:"strategy" json:"strategy"`

	// AttributeWeights maps attribute keys to non-negative weights used in
	// composite scoring and in the greedy cost computation. Attributes
	// without an entry weigh 1.0.
	AttributeWeights map[string]float64 `yaml:"attributeWeights" json:"attributeWeights,omitempty"`

	// Reduction selects how the quality evaluator reduces per-group values.
	// Defaults to ReductionMean.
	Reduction types.Reduction `yaml:"reduction" json:"reduction"`
}

// DefaultConfig returns a Config with default values.
//
// GroupCount has no meaningful default and stays 0; callers must set it.
//
// Returns:
//   - Config: Configuration with default strategy and reduction
func DefaultConfig() Config {
	return Config{
		Strategy:  StrategySnake,
		Reduction: types.ReductionMean,
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Strategy == "" {
		cfg.Strategy = defaults.Strategy
	}
	if cfg.Reduction == "" {
		cfg.Reduction = defaults.Reduction
	}
	// Note: a zero GroupCount is invalid rather than defaultable; Validate
	// reports it.
}

// Validate checks configuration constraints against the run's schema.
//
// Validation Rules:
//   - GroupCount > 0 (the per-run GroupCount <= entity count check happens
//     when entities are supplied)
//   - Strategy is one of the recognized strategy kinds
//   - Reduction is one of the recognized reductions
//   - Attribute weights are non-negative, finite, and reference declared
//     attributes
//
// Returns:
//   - error: *ConfigurationError describing the first rule broken, nil if valid
func (cfg *Config) Validate(schema types.Schema) error {
	if cfg.GroupCount < 1 {
		return &types.ConfigurationError{
			Field:  "GroupCount",
			Reason: fmt.Sprintf("must be positive, got %d", cfg.GroupCount),
		}
	}

	switch cfg.Strategy {
	case StrategySnake, StrategyGreedyBalance:
	default:
		return &types.ConfigurationError{
			Field:  "Strategy",
			Reason: fmt.Sprintf("unknown strategy %q", cfg.Strategy),
		}
	}

	switch cfg.Reduction {
	case types.ReductionMean, types.ReductionMax:
	default:
		return &types.ConfigurationError{
			Field:  "Reduction",
			Reason: fmt.Sprintf("unknown reduction %q", cfg.Reduction),
		}
	}

	for key, w := range cfg.AttributeWeights {
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
