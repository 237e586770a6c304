package hetgroups

import "github.com/Amndeep7/heterogeneous-groups/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern lets the strategy, score, and quality packages depend on
// `types` without depending on the root package, while still providing a
// convenient `hetgroups.Schema`, `hetgroups.Partition`, etc. for users.
type (
	Kind             = types.Kind
	ValuePair        = types.ValuePair
	Connection       = types.Connection
	Attribute        = types.Attribute
	Schema           = types.Schema
	Entity           = types.Entity
	ScoredEntity     = types.ScoredEntity
	Group            = types.Group
	Partition        = types.Partition
	Reduction        = types.Reduction
	AttributeQuality = types.AttributeQuality
	QualityReport    = types.QualityReport
)

// Re-export interfaces from the types subpackage for convenience.
type (
	GroupingStrategy = types.GroupingStrategy
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)

// Re-export error types from the types subpackage.
type (
	SchemaViolationError = types.SchemaViolationError
	ConfigurationError   = types.ConfigurationError
)

// Re-export enumeration constants from the types subpackage.
const (
	KindNumeric     = types.KindNumeric
	KindCategorical = types.KindCategorical

	ReductionMean = types.ReductionMean
	ReductionMax  = types.ReductionMax
)
