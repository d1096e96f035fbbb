package evaluate

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Strategy -linecomment -output=strategy_string.go

// Strategy selects how the lowest output is searched.
type Strategy int

const (
	// StrategyBruteForce applies the pipeline to every seed.
	StrategyBruteForce Strategy = iota // brute-force
	// StrategyIntervals maps whole ranges through the pipeline.
	StrategyIntervals // intervals
)

// ParseStrategy accepts the names printed by Strategy.String.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", StrategyBruteForce.String():
		return StrategyBruteForce, nil
	case StrategyIntervals.String():
		return StrategyIntervals, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q (want %s or %s)", s, StrategyBruteForce, StrategyIntervals)
	}
}
