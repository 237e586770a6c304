package hetgroups

import (
	"fmt"
	"time"

	"github.com/Amndeep7/heterogeneous-groups/internal/logging"
	"github.com/Amndeep7/heterogeneous-groups/internal/metrics"
	"github.com/Amndeep7/heterogeneous-groups/quality"
	"github.com/Amndeep7/heterogeneous-groups/score"
	"github.com/Amndeep7/heterogeneous-groups/strategy"
	"github.com/Amndeep7/heterogeneous-groups/types"
)

// Grouper runs the grouping pipeline: validate → score → partition, with an
// optional quality evaluation.
//
// A Grouper holds no state across runs; each call to Group is an independent
// pure computation over its own input, safe to execute concurrently for
// distinct inputs without coordination.
type Grouper struct {
	cfg     Config
	schema  types.Schema
	strat   types.GroupingStrategy
	logger  types.Logger
	metrics types.MetricsCollector
}

// New creates a Grouper for the given configuration and schema.
//
// Missing configuration values are filled with defaults, then the schema and
// the configuration are validated. The strategy is resolved from the closed
// enumeration in the configuration.
//
// Parameters:
//   - cfg: Run configuration (defaults applied in place)
//   - schema: Attribute declarations, immutable for the Grouper's lifetime
//   - opts: Optional dependencies (WithLogger, WithMetrics)
//
// Returns:
//   - *Grouper: Ready-to-use grouping engine
//   - error: *SchemaViolationError or *ConfigurationError for invalid input
//
// Example:
//
//	cfg := hetgroups.Config{GroupCount: 4, Strategy: hetgroups.StrategyGreedyBalance}
//	grouper, err := hetgroups.New(&cfg, schema)
func New(cfg *Config, schema types.Schema, opts ...Option) (*Grouper, error) {
	SetDefaults(cfg)

	if err := schema.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(schema); err != nil {
		return nil, err
	}

	strat, err := strategyFor(cfg)
	if err != nil {
		return nil, err
	}

	options := grouperOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	if options.logger == nil {
		options.logger = logging.NewNop()
	}
	if options.metrics == nil {
		options.metrics = metrics.NewNop()
	}

	return &Grouper{
		cfg:     *cfg,
		schema:  schema,
		strat:   strat,
		logger:  options.logger,
		metrics: options.metrics,
	}, nil
}

// strategyFor resolves the configured strategy kind. The mapping is a closed
// enumeration; Config.Validate has already rejected unknown kinds.
func strategyFor(cfg *Config) (types.GroupingStrategy, error) {
	switch cfg.Strategy {
	case StrategySnake:
		return strategy.NewSnake(), nil
	case StrategyGreedyBalance:
		return strategy.NewGreedyBalance(strategy.WithAttributeWeights(cfg.AttributeWeights)), nil
	default:
		return nil, &types.ConfigurationError{
			Field:  "Strategy",
			Reason: fmt.Sprintf("unknown strategy %q", cfg.Strategy),
		}
	}
}

// Group partitions the entities into the configured number of groups.
//
// The pipeline validates the entities against the schema, checks the group
// count against the entity count, normalizes and scores the population, and
// invokes the configured strategy. No partial result is returned on failure.
//
// Parameters:
//   - entities: Raw input population; never mutated
//
// Returns:
//   - types.Partition: Ordered groups of entity IDs
//   - error: *SchemaViolationError or *ConfigurationError for invalid input
func (g *Grouper) Group(entities []types.Entity) (types.Partition, error) {
	partition, _, err := g.run(entities)

	return partition, err
}

// GroupWithReport partitions the entities and evaluates the result.
//
// Parameters:
//   - entities: Raw input population; never mutated
//
// Returns:
//   - types.Partition: Ordered groups of entity IDs
//   - types.QualityReport: Per-attribute diversity of the partition, reduced
//     with the configured reduction
//   - error: *SchemaViolationError or *ConfigurationError for invalid input
func (g *Grouper) GroupWithReport(entities []types.Entity) (types.Partition, types.QualityReport, error) {
	partition, scored, err := g.run(entities)
	if err != nil {
		return types.Partition{}, types.QualityReport{}, err
	}

	start := time.Now()
	report, err := quality.Evaluate(partition, scored, g.schema, g.cfg.Reduction)
	if err != nil {
		return types.Partition{}, types.QualityReport{}, err
	}
	g.metrics.RecordEvaluationDuration(time.Since(start).Seconds())

	g.logger.Debug("quality evaluated",
		"reduction", string(g.cfg.Reduction),
		"aggregate", report.Aggregate,
	)

	return partition, report, nil
}

func (g *Grouper) run(entities []types.Entity) (types.Partition, []types.ScoredEntity, error) {
	start := time.Now()

	partition, scored, err := g.pipeline(entities)

	g.metrics.RecordGroupingDuration(g.strat.Name(), time.Since(start).Seconds())
	g.metrics.RecordGroupingResult(g.strat.Name(), err == nil)
	if err != nil {
		g.logger.Error("grouping run failed", "strategy", g.strat.Name(), "error", err)
		return types.Partition{}, nil, err
	}

	g.logger.Info("grouping run complete",
		"strategy", g.strat.Name(),
		"entities", len(entities),
		"groups", partition.GroupCount(),
		"duration", time.Since(start),
	)

	return partition, scored, nil
}

func (g *Grouper) pipeline(entities []types.Entity) (types.Partition, []types.ScoredEntity, error) {
	if err := g.schema.ValidateEntities(entities); err != nil {
		return types.Partition{}, nil, err
	}

	if g.cfg.GroupCount > len(entities) {
		return types.Partition{}, nil, &types.ConfigurationError{
			Field:  "GroupCount",
			Reason: fmt.Sprintf("%d exceeds entity count %d", g.cfg.GroupCount, len(entities)),
		}
	}

	scored, err := score.Score(entities, g.schema, g.cfg.AttributeWeights)
	if err != nil {
		return types.Partition{}, nil, err
	}

	g.metrics.RecordEntityCount(len(entities))
	g.logger.Debug("entities scored", "count", len(scored))

	partition, err := g.strat.Group(scored, g.cfg.GroupCount)
	if err != nil {
		return types.Partition{}, nil, err
	}

	g.metrics.RecordGroupCount(partition.GroupCount())

	ids := make([]string, len(entities))
	for i, e := range entities {
		ids[i] = e.ID
	}
	if err := partition.Complete(ids); err != nil {
		return types.Partition{}, nil, fmt.Errorf("strategy %q produced an invalid partition: %w", g.strat.Name(), err)
	}

	return partition, scored, nil
}
