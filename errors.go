package hetgroups

import "github.com/Amndeep7/heterogeneous-groups/types"

// Sentinel errors returned by the library, re-exported from the types
// subpackage for convenient errors.Is checks at the call site.
var (
	// ErrSchemaViolation is returned when entities do not match the declared
	// schema: missing or extra attributes, out-of-domain categorical values,
	// non-finite numeric values. Fatal to the run; no partial result.
	ErrSchemaViolation = types.ErrSchemaViolation

	// ErrInvalidConfig is returned when the configuration is invalid: a
	// non-positive group count, a group count exceeding the entity count, an
	// unknown strategy name, or a negative weight. Reported before any
	// computation begins.
	ErrInvalidConfig = types.ErrInvalidConfig
)
