// Package mapping provides interval mappings and the stage tables built from them.
//
// A mapping line has the form
//
//	destination source length
//
// and maps the half-open source range [source, source+length) onto
// [destination, destination+length) with a constant offset.
//
// # Lookup
//
// A Table keeps its mappings in declared order. Lookup returns the image of
// a value under the first mapping whose source range contains it, or the
// value itself when no mapping applies. Overlapping source ranges are
// tolerated and resolved by declaration order.
//
// Tables with many pairwise disjoint mappings are additionally indexed by
// source start and searched with a binary search; results are identical to
// the linear scan.
//
// # Validation
//
// Validate reports zero-length mappings, ranges that overflow uint64,
// overlapping sources and empty stages as diagnostics.
package mapping
