// Package seed generates the input values fed through a pipeline.
//
// Two modes are supported:
//   - Scalars: the seed tokens are the seeds themselves.
//   - Ranges: the tokens are consecutive (start, length) pairs and every
//     integer of each half-open range [start, start+length) is a seed.
//
// Range sets are never materialized. All yields covered values on demand and
// Split carves ranges into sub-ranges, so memory stays proportional to the
// number of chunks while work stays proportional to the total length.
package seed
