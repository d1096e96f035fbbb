package seed

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"almanac/internal/common"
)

var (
	// ErrOddSeedCount is returned when range mode receives an unpaired start.
	ErrOddSeedCount = errors.New("odd seed count")
	// ErrMalformedSeed is returned when a seed token is not a non-negative integer.
	ErrMalformedSeed = errors.New("malformed seed")
)

// Set is a finite, restartable collection of seeds.
type Set interface {
	// Len is the number of seeds, counting duplicates.
	Len() uint64
	// All yields every seed.
	All() iter.Seq[uint64]
	// Split partitions the set into non-empty parts of at most limit seeds each.
	Split(limit uint64) []Set
	// Intervals describes the set as half-open ranges.
	Intervals() []Range
}

// Range is the half-open interval [Start, Start+Length).
type Range struct {
	Start  uint64
	Length uint64
}

// End returns the exclusive end, saturating at math.MaxUint64.
func (r Range) End() uint64 {
	if r.Start > math.MaxUint64-r.Length {
		return math.MaxUint64
	}

	return r.Start + r.Length
}

// ParseScalars reads the tokens verbatim as seeds.
func ParseScalars(tokens []string) (Scalars, error) {
	nums, bad, err := common.ParseUints(tokens)
	if err != nil {
		return nil, fmt.Errorf("%w: token %d %q: %w", ErrMalformedSeed, bad+1, tokens[bad], err)
	}

	return Scalars(nums), nil
}

// ParseRanges reads the tokens as (start, length) pairs.
func ParseRanges(tokens []string) (Ranges, error) {
	if len(tokens)%2 != 0 {
		return nil, fmt.Errorf("%w: %d values do not form start/length pairs", ErrOddSeedCount, len(tokens))
	}

	nums, bad, err := common.ParseUints(tokens)
	if err != nil {
		return nil, fmt.Errorf("%w: token %d %q: %w", ErrMalformedSeed, bad+1, tokens[bad], err)
	}

	ranges := make(Ranges, 0, len(nums)/2)
	for i := 0; i < len(nums); i += 2 {
		ranges = append(ranges, Range{Start: nums[i], Length: nums[i+1]})
	}

	return ranges, nil
}
