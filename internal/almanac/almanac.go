package almanac

import (
	"errors"
	"fmt"

	"almanac/internal/pipeline"
	"almanac/internal/seed"
)

// ErrMissingSeedLine is returned when no line carries the seeds marker.
var ErrMissingSeedLine = errors.New("missing seed line")

// Mode selects how seed tokens are read.
type Mode int

const (
	// ModeScalars reads every token as one seed.
	ModeScalars Mode = iota
	// ModeRanges reads tokens as start/length pairs.
	ModeRanges
)

// String returns the flag-friendly mode name.
func (m Mode) String() string {
	switch m {
	case ModeScalars:
		return "scalars"
	case ModeRanges:
		return "ranges"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Almanac is a parsed input document.
type Almanac struct {
	// SeedTokens are the raw values of the seed line.
	SeedTokens []string
	// Pipeline holds the stages in document order.
	Pipeline *pipeline.Pipeline
}

// Seeds builds the seed set for the given mode.
func (a *Almanac) Seeds(mode Mode) (seed.Set, error) {
	switch mode {
	case ModeRanges:
		r, err := seed.ParseRanges(a.SeedTokens)
		if err != nil {
			return nil, fmt.Errorf("seed ranges: %w", err)
		}

		return r, nil
	default:
		s, err := seed.ParseScalars(a.SeedTokens)
		if err != nil {
			return nil, fmt.Errorf("seeds: %w", err)
		}

		return s, nil
	}
}
