package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the heterogeneous-groups library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). All failures are input-validation failures detected eagerly;
// the library performs no I/O, so no transient or retryable errors exist.
//
// The two error classes mirror the failure taxonomy of the engine:
//   - ErrSchemaViolation: entities do not match the declared schema
//   - ErrInvalidConfig: the run configuration is unusable
var (
	// ErrSchemaViolation is returned when entities or the schema itself break
	// the declared attribute contract. Fatal to the run; no partial result.
	ErrSchemaViolation = errors.New("schema violation")

	// ErrInvalidConfig is returned when the configuration is invalid
	// (non-positive group count, group count exceeding the entity count,
	// unknown strategy, negative weight). Reported before any computation.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// SchemaViolationError describes an entity (or schema declaration) that does
// not match the attribute contract.
//
// It unwraps to ErrSchemaViolation so callers can classify with errors.Is and
// still reach the offending entity ID and attribute key via errors.As.
type SchemaViolationError struct {
	// EntityID is the offending entity, empty for schema-level violations.
	EntityID string

	// Attribute is the offending attribute key, empty when not attributable.
	Attribute string

	// Reason describes the violation.
	Reason string
}

// Error implements the error interface.
func (e *SchemaViolationError) Error() string {
	switch {
	case e.EntityID != "" && e.Attribute != "":
		return fmt.Sprintf("schema violation: entity %q attribute %q: %s", e.EntityID, e.Attribute, e.Reason)
	case e.EntityID != "":
		return fmt.Sprintf("schema violation: entity %q: %s", e.EntityID, e.Reason)
	case e.Attribute != "":
		return fmt.Sprintf("schema violation: attribute %q: %s", e.Attribute, e.Reason)
	default:
		return fmt.Sprintf("schema violation: %s", e.Reason)
	}
}

// Unwrap makes errors.Is(err, ErrSchemaViolation) hold.
func (e *SchemaViolationError) Unwrap() error {
	return ErrSchemaViolation
}

// ConfigurationError describes an unusable run configuration.
//
// It unwraps to ErrInvalidConfig so callers can classify with errors.Is.
type ConfigurationError struct {
	// Field names the configuration field at fault.
	Field string

	// Reason describes why the value is unusable.
	Reason string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid configuration: %s", e.Reason)
	}

	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidConfig) hold.
func (e *ConfigurationError) Unwrap() error {
	return ErrInvalidConfig
}
