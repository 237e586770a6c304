package types

// Entity is a single data item to be grouped.
//
// Values are split by kind: numeric values in Numeric, categorical labels in
// Categorical, both keyed by attribute key. An entity must carry a value for
// every attribute its schema declares and nothing else; Schema.ValidateEntities
// enforces this before a run starts.
type Entity struct {
	// ID uniquely identifies the entity within a run. Opaque to the library.
	ID string `json:"id" yaml:"id"`

	// Numeric holds the values of the numeric attributes.
	Numeric map[string]float64 `json:"numeric,omitempty" yaml:"numeric,omitempty"`

	// Categorical holds the labels of the categorical attributes.
	Categorical map[string]string `json:"categorical,omitempty" yaml:"categorical,omitempty"`
}

// ScoredEntity is an Entity after normalization and composite scoring.
//
// Computed once per run by the score package and never mutated afterward.
// Strategies consume scored entities only; they never see raw values.
type ScoredEntity struct {
	// ID is the entity identifier.
	ID string

	// Ordinal is the entity's position in the original input. It is the
	// secondary sort key that makes strategy ordering deterministic when
	// composite scores tie.
	Ordinal int

	// ZScores maps each numeric attribute key to the entity's z-score for it
	// (mean 0, unit variance across the input population). A zero-variance
	// attribute yields a z-score of exactly 0 for every entity.
	ZScores map[string]float64

	// Labels maps each categorical attribute key to the entity's label.
	Labels map[string]string

	// LabelFreqs maps each categorical attribute key to the population
	// frequency (0, 1] of this entity's label for that attribute.
	LabelFreqs map[string]float64

	// Composite is the weighted sum of the numeric z-scores. It is the rank
	// key both strategies order entities by.
	Composite float64
}
