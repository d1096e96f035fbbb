package seed

import "iter"

// Ranges is a list of seed ranges evaluated lazily.
type Ranges []Range

// Len returns the total number of covered values.
// Ranges reaching past math.MaxUint64 are counted up to it and the total
// saturates at math.MaxUint64.
func (r Ranges) Len() uint64 {
	var n uint64
	for _, rg := range r {
		n = Range{Start: n, Length: rg.End() - rg.Start}.End()
	}

	return n
}

// All yields every covered value, range by range, without allocating.
func (r Ranges) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for _, rg := range r {
			end := rg.End()
			for v := rg.Start; v < end; v++ {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Split carves the ranges into parts covering at most limit values each.
// Empty ranges are dropped.
func (r Ranges) Split(limit uint64) []Set {
	total := r.Len()
	if total == 0 {
		return nil
	}

	size := clampChunk(limit, total)

	var (
		parts   []Set
		current Ranges
		room    = size
	)

	for _, rg := range r {
		start, end := rg.Start, rg.End()
		for start < end {
			take := min(end-start, room)
			current = append(current, Range{Start: start, Length: take})
			start += take
			room -= take

			if room == 0 {
				parts = append(parts, current)
				current, room = nil, size
			}
		}
	}

	if len(current) > 0 {
		parts = append(parts, current)
	}

	return parts
}

// Intervals returns the non-empty ranges.
func (r Ranges) Intervals() []Range {
	out := make([]Range, 0, len(r))
	for _, rg := range r {
		if rg.End() > rg.Start {
			out = append(out, Range{Start: rg.Start, Length: rg.End() - rg.Start})
		}
	}

	return out
}
