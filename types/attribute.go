package types

import (
	"fmt"
	"math"
	"slices"
)

// Kind identifies what sort of data an attribute holds.
type Kind string

// Supported attribute kinds.
const (
	// KindNumeric marks an attribute whose values are finite floats.
	KindNumeric Kind = "numeric"

	// KindCategorical marks an attribute whose values come from a fixed label set.
	KindCategorical Kind = "categorical"
)

// ValuePair is a pair of numbers where Lower must not exceed Upper.
//
// Used as the measurement bounds of a numeric attribute: when present, the
// bounds anchor min-max scaling instead of the observed minimum and maximum.
type ValuePair struct {
	Lower float64 `json:"lower" yaml:"lower"`
	Upper float64 `json:"upper" yaml:"upper"`
}

// Connection declares the similarity between two labels of a categorical
// attribute.
//
// Labels without a declared connection are treated as fully dissimilar, and a
// label is always fully similar to itself. Connections are symmetric:
// declaring (a, b, s) also declares (b, a, s).
type Connection struct {
	ValueA string `json:"valueA" yaml:"valueA"`
	ValueB string `json:"valueB" yaml:"valueB"`

	// Similarity is in [0, 1] where 0 is no similarity and 1 is identical.
	Similarity float64 `json:"similarity" yaml:"similarity"`
}

// Attribute declares a single attribute of the schema.
type Attribute struct {
	// Key identifies the attribute. Unique within a schema.
	Key string `json:"key" yaml:"key"`

	// Kind is either KindNumeric or KindCategorical.
	Kind Kind `json:"kind" yaml:"kind"`

	// Labels is the admissible label set. Categorical attributes only.
	Labels []string `json:"labels,omitempty" yaml:"labels,omitempty"`

	// Connections declares pairwise label similarities used by the
	// pairwise-diversity evaluation. Categorical attributes only, optional.
	Connections []Connection `json:"connections,omitempty" yaml:"connections,omitempty"`

	// Bounds is the optional measurement range for min-max scaling.
	// Numeric attributes only. When nil, the observed range is used.
	Bounds *ValuePair `json:"bounds,omitempty" yaml:"bounds,omitempty"`
}

// HasLabel reports whether label is in the attribute's admissible label set.
func (a Attribute) HasLabel(label string) bool {
	return slices.Contains(a.Labels, label)
}

// Similarity returns the similarity between two labels of a categorical
// attribute: 1 for identical labels, the declared connection value when one
// exists, and 0 otherwise.
func (a Attribute) Similarity(la, lb string) float64 {
	if la == lb {
		return 1
	}
	for _, c := range a.Connections {
		if (c.ValueA == la && c.ValueB == lb) || (c.ValueA == lb && c.ValueB == la) {
			return c.Similarity
		}
	}

	return 0
}

// Schema is the ordered set of attribute declarations for a grouping run.
//
// A schema is immutable once a run starts. Every entity supplied to a run must
// carry a value for each declared attribute and nothing else.
type Schema struct {
	Attributes []Attribute `json:"attributes" yaml:"attributes"`
}

// Attribute looks up a declaration by key.
func (s Schema) Attribute(key string) (Attribute, bool) {
	for _, a := range s.Attributes {
		if a.Key == key {
			return a, true
		}
	}

	return Attribute{}, false
}

// Numeric returns the numeric attribute declarations in schema order.
func (s Schema) Numeric() []Attribute {
	var attrs []Attribute
	for _, a := range s.Attributes {
		if a.Kind == KindNumeric {
			attrs = append(attrs, a)
		}
	}

	return attrs
}

// Categorical returns the categorical attribute declarations in schema order.
func (s Schema) Categorical() []Attribute {
	var attrs []Attribute
	for _, a := range s.Attributes {
		if a.Kind == KindCategorical {
			attrs = append(attrs, a)
		}
	}

	return attrs
}

// Validate checks the schema declarations themselves.
//
// Validation Rules:
//   - At least one attribute is declared
//   - Attribute keys are non-empty and unique
//   - Every attribute kind is numeric or categorical
//   - Numeric attributes declare no labels or connections
//   - Numeric measurement bounds are ordered (Lower <= Upper) and finite
//   - Categorical attributes declare a non-empty, duplicate-free label set
//   - Connections reference declared labels, carry similarities in [0, 1],
//     and do not conflict with each other
//
// Returns:
//   - error: *SchemaViolationError describing the first rule broken, nil if valid
func (s Schema) Validate() error {
	if len(s.Attributes) == 0 {
		return &SchemaViolationError{Reason: "schema declares no attributes"}
	}

	seen := make(map[string]struct{}, len(s.Attributes))
	for _, a := range s.Attributes {
		if a.Key == "" {
			return &SchemaViolationError{Reason: "attribute with empty key"}
		}
		if _, dup := seen[a.Key]; dup {
			return &SchemaViolationError{Attribute: a.Key, Reason: "duplicate attribute key"}
		}
		seen[a.Key] = struct{}{}

		switch a.Kind {
		case KindNumeric:
			if err := a.validateNumeric(); err != nil {
				return err
			}
		case KindCategorical:
			if err := a.validateCategorical(); err != nil {
				return err
			}
		default:
			return &SchemaViolationError{
				Attribute: a.Key,
				Reason:    fmt.Sprintf("unknown attribute kind %q", a.Kind),
			}
		}
	}

	return nil
}

func (a Attribute) validateNumeric() error {
	if len(a.Labels) > 0 || len(a.Connections) > 0 {
		return &SchemaViolationError{
			Attribute: a.Key,
			Reason:    "numeric attribute must not declare labels or connections",
		}
	}
	if a.Bounds != nil {
		if math.IsNaN(a.Bounds.Lower) || math.IsInf(a.Bounds.Lower, 0) ||
			math.IsNaN(a.Bounds.Upper) || math.IsInf(a.Bounds.Upper, 0) {
			return &SchemaViolationError{Attribute: a.Key, Reason: "measurement bounds must be finite"}
		}
		if a.Bounds.Lower > a.Bounds.Upper {
			return &SchemaViolationError{
				Attribute: a.Key,
				Reason: fmt.Sprintf("measurement bounds out of order: lower %v > upper %v",
					a.Bounds.Lower, a.Bounds.Upper),
			}
		}
	}

	return nil
}

func (a Attribute) validateCategorical() error {
	if a.Bounds != nil {
		return &SchemaViolationError{
			Attribute: a.Key,
			Reason:    "categorical attribute must not declare measurement bounds",
		}
	}
	if len(a.Labels) == 0 {
		return &SchemaViolationError{Attribute: a.Key, Reason: "categorical attribute declares no labels"}
	}

	labels := make(map[string]struct{}, len(a.Labels))
	for _, l := range a.Labels {
		if _, dup := labels[l]; dup {
			return &SchemaViolationError{
				Attribute: a.Key,
				Reason:    fmt.Sprintf("duplicate label %q", l),
			}
		}
		labels[l] = struct{}{}
	}

	declared := make(map[[2]string]float64, len(a.Connections))
	for _, c := range a.Connections {
		if _, ok := labels[c.ValueA]; !ok {
			return &SchemaViolationError{
				Attribute: a.Key,
				Reason:    fmt.Sprintf("connection references undeclared label %q", c.ValueA),
			}
		}
		if _, ok := labels[c.ValueB]; !ok {
			return &SchemaViolationError{
				Attribute: a.Key,
				Reason:    fmt.Sprintf("connection references undeclared label %q", c.ValueB),
			}
		}
		if c.ValueA == c.ValueB {
			return &SchemaViolationError{
				Attribute: a.Key,
				Reason:    fmt.Sprintf("connection from label %q to itself", c.ValueA),
			}
		}
		if c.Similarity < 0 || c.Similarity > 1 || math.IsNaN(c.Similarity) {
			return &SchemaViolationError{
				Attribute: a.Key,
				Reason:    fmt.Sprintf("similarity %v not in [0, 1]", c.Similarity),
			}
		}

		pair := [2]string{c.ValueA, c.ValueB}
		if c.ValueB < c.ValueA {
			pair = [2]string{c.ValueB, c.ValueA}
		}
		if prev, dup := declared[pair]; dup && prev != c.Similarity {
			return &SchemaViolationError{
				Attribute: a.Key,
				Reason: fmt.Sprintf("conflicting similarities for labels %q and %q",
					c.ValueA, c.ValueB),
			}
		}
		declared[pair] = c.Similarity
	}

	return nil
}

// ValidateEntities checks a set of entities against the schema.
//
// Rejects:
//   - Empty or duplicate entity IDs
//   - Attributes present on an entity but absent from the schema
//   - Declared attributes missing from an entity (or present with the wrong kind)
//   - Categorical values outside the declared label set
//   - Non-finite numeric values (NaN, ±Inf)
//
// Pure validation; no side effects. The first violation found is returned as a
// *SchemaViolationError carrying the offending entity ID and attribute key.
func (s Schema) ValidateEntities(entities []Entity) error {
	ids := make(map[string]struct{}, len(entities))
	for _, e := range entities {
		if e.ID == "" {
			return &SchemaViolationError{Reason: "entity with empty ID"}
		}
		if _, dup := ids[e.ID]; dup {
			return &SchemaViolationError{EntityID: e.ID, Reason: "duplicate entity ID"}
		}
		ids[e.ID] = struct{}{}

		if err := s.validateEntity(e); err != nil {
			return err
		}
	}

	return nil
}

func (s Schema) validateEntity(e Entity) error {
	for key := range e.Numeric {
		a, ok := s.Attribute(key)
		if !ok || a.Kind != KindNumeric {
			return &SchemaViolationError{
				EntityID:  e.ID,
				Attribute: key,
				Reason:    "not declared as a numeric attribute",
			}
		}
	}
	for key := range e.Categorical {
		a, ok := s.Attribute(key)
		if !ok || a.Kind != KindCategorical {
			return &SchemaViolationError{
				EntityID:  e.ID,
				Attribute: key,
				Reason:    "not declared as a categorical attribute",
			}
		}
	}

	for _, a := range s.Attributes {
		switch a.Kind {
		case KindNumeric:
			v, ok := e.Numeric[a.Key]
			if !ok {
				return &SchemaViolationError{
					EntityID:  e.ID,
					Attribute: a.Key,
					Reason:    "missing declared numeric attribute",
				}
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return &SchemaViolationError{
					EntityID:  e.ID,
					Attribute: a.Key,
					Reason:    fmt.Sprintf("non-finite value %v", v),
				}
			}
		case KindCategorical:
			label, ok := e.Categorical[a.Key]
			if !ok {
				return &SchemaViolationError{
					EntityID:  e.ID,
					Attribute: a.Key,
					Reason:    "missing declared categorical attribute",
				}
			}
			if !a.HasLabel(label) {
				return &SchemaViolationError{
					EntityID:  e.ID,
					Attribute: a.Key,
					Reason:    fmt.Sprintf("label %q not in declared label set", label),
				}
			}
		}
	}

	return nil
}
