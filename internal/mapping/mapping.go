package mapping

import (
	"errors"
	"fmt"
	"math"

	"almanac/internal/common"
)

// ErrMalformedMapping is returned when a mapping line does not hold exactly
// three non-negative integers.
var ErrMalformedMapping = errors.New("malformed mapping")

// Mapping maps [Source, Source+Length) onto [Destination, Destination+Length).
type Mapping struct {
	Destination uint64 `yaml:"destination"`
	Source      uint64 `yaml:"source"`
	Length      uint64 `yaml:"length"`
}

// ParseLine parses "destination source length".
func ParseLine(line string) (Mapping, error) {
	fields := common.Fields(line)
	if len(fields) != 3 {
		return Mapping{}, fmt.Errorf("%w: want 3 integers, got %d in %q", ErrMalformedMapping, len(fields), line)
	}

	nums, bad, err := common.ParseUints(fields)
	if err != nil {
		return Mapping{}, fmt.Errorf("%w: bad integer %q in %q: %w", ErrMalformedMapping, fields[bad], line, err)
	}

	return Mapping{Destination: nums[0], Source: nums[1], Length: nums[2]}, nil
}

// Contains reports whether v lies in the source range.
// The comparison is written to stay correct near math.MaxUint64.
func (m Mapping) Contains(v uint64) bool {
	return v >= m.Source && v-m.Source < m.Length
}

// Map applies the mapping offset. Callers must check Contains first.
func (m Mapping) Map(v uint64) uint64 {
	return m.Destination + (v - m.Source)
}

// SourceEnd returns the exclusive end of the source range, saturating at math.MaxUint64.
func (m Mapping) SourceEnd() uint64 {
	return saturatingAdd(m.Source, m.Length)
}

// Overflows reports whether either range runs past math.MaxUint64.
func (m Mapping) Overflows() bool {
	return m.Length > 0 && (m.Source > math.MaxUint64-(m.Length-1) || m.Destination > math.MaxUint64-(m.Length-1))
}

// ReachesMax reports whether either range touches math.MaxUint64, where a
// half-open end can no longer be represented and Map may wrap.
func (m Mapping) ReachesMax() bool {
	return m.Length > 0 && (m.Source > math.MaxUint64-m.Length || m.Destination > math.MaxUint64-m.Length)
}

// String renders the mapping in input line order.
func (m Mapping) String() string {
	return fmt.Sprintf("%d %d %d", m.Destination, m.Source, m.Length)
}

func saturatingAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}

	return a + b
}
