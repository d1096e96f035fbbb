package seed

import (
	"iter"
	"slices"
)

// Scalars is a literal list of seeds.
type Scalars []uint64

// Len returns the number of seeds.
func (s Scalars) Len() uint64 {
	return uint64(len(s))
}

// All yields the seeds in order.
func (s Scalars) All() iter.Seq[uint64] {
	return slices.Values(s)
}

// Split cuts the list into consecutive sub-slices sharing the backing array.
func (s Scalars) Split(limit uint64) []Set {
	if len(s) == 0 {
		return nil
	}

	size := clampChunk(limit, s.Len())

	parts := make([]Set, 0, (s.Len()+size-1)/size)
	for chunk := range slices.Chunk(s, int(size)) {
		parts = append(parts, chunk)
	}

	return parts
}

// Intervals returns one single-value range per seed.
func (s Scalars) Intervals() []Range {
	out := make([]Range, len(s))
	for i, v := range s {
		out[i] = Range{Start: v, Length: 1}
	}

	return out
}

// clampChunk turns a requested chunk size into a usable one for a set of n seeds.
func clampChunk(limit, n uint64) uint64 {
	if limit == 0 || limit > n {
		return n
	}

	return limit
}
