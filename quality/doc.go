// Package quality computes diversity and balance metrics over a candidate
// partition.
//
// The evaluator is pure and read-only: it derives a QualityReport from a
// partition and the scored entities it was built from, without touching
// either. It serves two purposes: reporting to the driver, and acting as the
// oracle in tests that compare the two grouping strategies.
package quality
