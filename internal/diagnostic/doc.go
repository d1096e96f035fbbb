// Package diagnostic provides structured errors, warnings and notes
// produced while checking an almanac before evaluation.
//
// Key capabilities:
//   - Zero-length and overflowing mapping errors
//   - Overlapping source range warnings (first declared mapping wins)
//   - Empty stage notes
package diagnostic
