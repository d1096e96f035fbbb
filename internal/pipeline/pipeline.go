package pipeline

import (
	"fmt"
	"slices"
	"strings"

	"almanac/internal/diagnostic"
	"almanac/internal/mapping"
)

// Stage is one named category-to-category table, e.g. "seed-to-soil".
type Stage struct {
	Name  string
	Table *mapping.Table
}

// Pipeline is an immutable ordered chain of stages.
type Pipeline struct {
	stages []Stage
}

// New builds a pipeline applying stages in the given order.
func New(stages ...Stage) *Pipeline {
	return &Pipeline{stages: slices.Clone(stages)}
}

// Len returns the number of stages.
func (p *Pipeline) Len() int {
	if p == nil {
		return 0
	}

	return len(p.stages)
}

// Stages returns the stages in order.
func (p *Pipeline) Stages() []Stage {
	if p == nil {
		return nil
	}

	return slices.Clone(p.stages)
}

// Apply carries seed through every stage. With no stages it returns seed.
func (p *Pipeline) Apply(seed uint64) uint64 {
	if p == nil {
		return seed
	}

	v := seed
	for _, st := range p.stages {
		v = st.Table.Lookup(v)
	}

	return v
}

// ReachesMax reports whether any mapping touches math.MaxUint64.
// Image is only exact when this is false.
func (p *Pipeline) ReachesMax() bool {
	for _, st := range p.Stages() {
		for _, m := range st.Table.Mappings() {
			if m.ReachesMax() {
				return true
			}
		}
	}

	return false
}

// Validate checks every stage table.
func Validate(p *Pipeline) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if p.Len() == 0 {
		res.AddInfo("empty_pipeline", "no stages; seeds are reported unchanged", "", 0)
		return res
	}

	for i, st := range p.stages {
		mapping.ValidateStage(res, st.Name, st.Table)

		if i == 0 {
			continue
		}

		_, prevTo, ok1 := categories(p.stages[i-1].Name)
		from, _, ok2 := categories(st.Name)

		if ok1 && ok2 && prevTo != from {
			res.AddWarning("category_gap",
				fmt.Sprintf("previous stage produces %q but this stage reads %q", prevTo, from),
				st.Name, 0)
		}
	}

	return res
}

// categories splits a "source-to-destination" stage name.
func categories(name string) (from, to string, ok bool) {
	from, to, ok = strings.Cut(name, "-to-")
	return from, to, ok && from != "" && to != ""
}
