// Package types provides core type definitions and interfaces for the
// heterogeneous-groups library.
//
// This package contains shared types that are used across multiple packages in
// the library. By keeping these types in a separate package, we avoid import
// cycles between the root hetgroups package and its internal implementations.
//
// Key types:
//   - Schema/Attribute: Declaration of the attributes a grouping run consumes
//   - Entity: A single data item with numeric and categorical values
//   - ScoredEntity: An entity after normalization and composite scoring
//   - Partition/Group: The result of a grouping run
//   - QualityReport: Per-attribute dispersion metrics over a partition
//   - GroupingStrategy: Partitioning algorithm interface
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
