package types

// Reduction selects how per-group dispersion values are reduced to a single
// number per attribute.
type Reduction string

// Supported reductions.
const (
	// ReductionMean averages the per-group values.
	ReductionMean Reduction = "mean"

	// ReductionMax takes the largest per-group value.
	ReductionMax Reduction = "max"
)

// AttributeQuality holds the within-group dispersion of one attribute across a
// partition.
//
// For numeric attributes the dispersion is the population variance of the
// z-scores within each group. For categorical attributes it is the Shannon
// entropy (base 2) of the label distribution within each group. Higher values
// mean more internal diversity.
type AttributeQuality struct {
	// Kind is the attribute's kind.
	Kind Kind `json:"kind"`

	// PerGroup lists the dispersion per group, in group index order.
	PerGroup []float64 `json:"perGroup"`

	// Reduced is the per-group values reduced by the report's reduction.
	Reduced float64 `json:"reduced"`
}

// QualityReport captures the diversity of a partition, per attribute and in
// aggregate. Read-only; derived from a partition and discarded after
// reporting.
type QualityReport struct {
	// Attributes maps attribute key to its quality measures.
	Attributes map[string]AttributeQuality `json:"attributes"`

	// Reduction is the reduction applied to per-group values.
	Reduction Reduction `json:"reduction"`

	// Aggregate is the mean of the reduced values across attributes.
	Aggregate float64 `json:"aggregate"`
}
