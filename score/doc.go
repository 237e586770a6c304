// Package score converts validated entities into comparable scored entities.
//
// Numeric attributes are normalized to z-scores (mean 0, unit variance across
// the input population) and combined into a single weighted composite score
// per entity. Categorical attributes carry their label and the population
// frequency of that label, which the greedy strategy uses to balance rare
// labels across groups.
//
// The package also provides the min-max scaled grid and the pairwise
// dissimilarity matrix consumed by the pairwise-diversity evaluation in the
// quality package.
//
// All functions are pure: inputs are never mutated and identical inputs
// produce identical outputs.
package score
