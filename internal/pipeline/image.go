package pipeline

import (
	"almanac/internal/mapping"
	"almanac/internal/seed"
)

// Image returns the ranges covering exactly the outputs of Apply over every
// value of in. Ranges are split on mapping boundaries; the result may contain
// adjacent or overlapping ranges and is not merged. Ranges cannot express
// values that wrap past math.MaxUint64, so callers check ReachesMax first.
func (p *Pipeline) Image(in []seed.Range) []seed.Range {
	cur := in
	for _, st := range p.Stages() {
		cur = imageThrough(st.Table, cur)
	}

	return cur
}

// imageThrough maps ranges through one table. Mappings are tried in declared
// order and only the still-unmapped pieces reach later mappings, matching
// Lookup's first-match rule. Pieces no mapping claims pass through unchanged.
func imageThrough(t *mapping.Table, in []seed.Range) []seed.Range {
	pending := in

	var out []seed.Range

	for _, m := range t.Mappings() {
		if m.Length == 0 || len(pending) == 0 {
			continue
		}

		lo, hi := m.Source, m.SourceEnd()

		var rest []seed.Range

		for _, r := range pending {
			start, end := r.Start, r.End()
			if end <= lo || start >= hi {
				rest = append(rest, r)
				continue
			}

			if start < lo {
				rest = append(rest, seed.Range{Start: start, Length: lo - start})
			}

			if end > hi {
				rest = append(rest, seed.Range{Start: hi, Length: end - hi})
			}

			from, to := max(start, lo), min(end, hi)
			out = append(out, seed.Range{Start: m.Map(from), Length: to - from})
		}

		pending = rest
	}

	return append(out, pending...)
}
