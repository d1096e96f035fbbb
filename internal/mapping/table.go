package mapping

import (
	"cmp"
	"fmt"
	"slices"
	"sort"
)

// indexThreshold is the table size above which a sorted index is built.
const indexThreshold = 8

// Table is an immutable, ordered set of mappings forming one stage.
type Table struct {
	mappings []Mapping
	// sorted holds the non-empty mappings ordered by Source when they are
	// pairwise disjoint; nil means Lookup scans mappings linearly.
	sorted []Mapping
}

// NewTable builds a table from mappings in declared order.
func NewTable(mappings ...Mapping) *Table {
	t := &Table{mappings: slices.Clone(mappings)}
	if len(t.mappings) > indexThreshold {
		t.sorted = buildIndex(t.mappings)
	}

	return t
}

// ParseBlock parses one mapping per line into a table.
func ParseBlock(lines []string) (*Table, error) {
	mappings := make([]Mapping, 0, len(lines))

	for i, line := range lines {
		m, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("mapping %d: %w", i+1, err)
		}

		mappings = append(mappings, m)
	}

	return NewTable(mappings...), nil
}

// Len returns the number of mappings.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.mappings)
}

// Mappings returns a copy of the mappings in declared order.
func (t *Table) Mappings() []Mapping {
	if t == nil {
		return nil
	}

	return slices.Clone(t.mappings)
}

// Indexed reports whether lookups use the sorted index.
func (t *Table) Indexed() bool {
	return t != nil && t.sorted != nil
}

// Lookup maps v through the first mapping containing it, or returns v unchanged.
func (t *Table) Lookup(v uint64) uint64 {
	if t == nil {
		return v
	}

	if t.sorted != nil {
		return t.lookupSorted(v)
	}

	return t.lookupLinear(v)
}

func (t *Table) lookupLinear(v uint64) uint64 {
	for _, m := range t.mappings {
		if m.Contains(v) {
			return m.Map(v)
		}
	}

	return v
}

func (t *Table) lookupSorted(v uint64) uint64 {
	// first mapping starting after v; the candidate is the one before it
	i := sort.Search(len(t.sorted), func(i int) bool { return t.sorted[i].Source > v })
	if i == 0 {
		return v
	}

	if m := t.sorted[i-1]; m.Contains(v) {
		return m.Map(v)
	}

	return v
}

// buildIndex returns the non-empty mappings sorted by Source, or nil if any
// two of them overlap or any range overflows.
func buildIndex(mappings []Mapping) []Mapping {
	sorted := make([]Mapping, 0, len(mappings))

	for _, m := range mappings {
		if m.Overflows() {
			return nil
		}

		if m.Length > 0 {
			sorted = append(sorted, m)
		}
	}

	slices.SortFunc(sorted, func(a, b Mapping) int { return cmp.Compare(a.Source, b.Source) })

	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].SourceEnd() > sorted[i].Source {
			return nil
		}
	}

	return sorted
}
