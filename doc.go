// Package hetgroups partitions entities into a fixed number of groups that
// are internally heterogeneous (diverse) while remaining balanced with one
// another. This is the inverse objective of clustering, for team-composition
// and pedagogical use cases where skill spread and background variety inside
// each group is the goal.
//
// # Quick Start
//
//	schema := hetgroups.Schema{Attributes: []hetgroups.Attribute{
//	    {Key: "gpa", Kind: hetgroups.KindNumeric},
//	    {Key: "major", Kind: hetgroups.KindCategorical, Labels: []string{"cs", "ee", "math"}},
//	}}
//
//	cfg := hetgroups.Config{GroupCount: 4, Strategy: hetgroups.StrategySnake}
//
//	grouper, err := hetgroups.New(&cfg, schema)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	partition, err := grouper.Group(entities)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Pipeline
//
// Each run is a pure pipeline: validate entities against the schema →
// normalize and score (z-scores, label frequencies, weighted composite) →
// partition with the configured strategy → optionally evaluate quality. No
// component holds state across invocations, so a Grouper is safe to use
// concurrently for distinct inputs.
//
// # Strategies
//
//   - StrategySnake: sort by composite score and deal entities out in
//     serpentine order, spreading the score distribution evenly
//   - StrategyGreedyBalance: greedy incremental assignment balancing numeric
//     variance and categorical label distribution across groups
//
// Both are deterministic: identical input and configuration yield bit-for-bit
// identical partitions.
//
// # Errors
//
// All failures are input-validation failures, detected eagerly:
// schema violations satisfy errors.Is(err, hetgroups.ErrSchemaViolation) and
// configuration problems satisfy errors.Is(err, hetgroups.ErrInvalidConfig).
// The engine never silently degrades; an infeasible group count is an error,
// not a clamp.
package hetgroups
