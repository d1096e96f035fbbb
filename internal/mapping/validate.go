package mapping

import (
	"fmt"

	"almanac/internal/diagnostic"
)

// ValidateStage records structural problems of one stage table into res.
// Line numbers are 1-based positions inside the stage.
func ValidateStage(res *diagnostic.Diagnostics, stage string, t *Table) {
	if t.Len() == 0 {
		res.AddInfo("empty_stage", "stage has no mappings; every value passes through unchanged", stage, 0)
		return
	}

	mappings := t.mappings

	for i, m := range mappings {
		line := i + 1

		if m.Length == 0 {
			res.AddError("zero_length", fmt.Sprintf("mapping %q has zero length and never applies", m), stage, line)
			continue
		}

		if m.Overflows() {
			res.AddError("range_overflow", fmt.Sprintf("mapping %q runs past the largest 64-bit value", m), stage, line)
		}

		for j := range i {
			prev := mappings[j]
			if prev.Length == 0 || !overlaps(prev, m) {
				continue
			}

			res.AddWarning("overlapping_sources",
				fmt.Sprintf("source range overlaps mapping %d; mapping %d wins for the shared values", j+1, j+1),
				stage, line)
		}
	}
}

func overlaps(a, b Mapping) bool {
	return a.Source < b.SourceEnd() && b.Source < a.SourceEnd()
}
