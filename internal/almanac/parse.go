package almanac

import (
	"fmt"
	"io"
	"strings"

	"almanac/internal/common"
	"almanac/internal/mapping"
	"almanac/internal/pipeline"
)

const (
	seedMarker = "seeds:"
	mapMarker  = "map:"
)

// block is one stage header and its mapping lines.
type block struct {
	name   string
	header int
	lines  []string
}

// ParseString parses a text document held in memory.
func ParseString(s string) (*Almanac, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads a text document. Lines before the first stage header other
// than the seed line are ignored. When several seed lines are present the
// last one wins.
//
// A blank line closes a map block. A mapping line that follows a closed
// block without a new header is rejected with ErrMalformedMapping instead
// of being appended to the previous stage.
func Parse(r io.Reader) (*Almanac, error) {
	lines, err := common.ReadLines(r)
	if err != nil {
		return nil, err
	}

	var (
		tokens   []string
		seenSeed bool
		blocks   []block
		inBlock  bool
	)

	for i, line := range lines {
		lineNo := i + 1

		switch {
		case strings.Contains(line, seedMarker):
			rest, _ := common.After(line, seedMarker)
			tokens = common.Fields(rest)
			seenSeed = true
			inBlock = false
		case strings.Contains(line, mapMarker):
			blocks = append(blocks, block{name: common.Before(line, mapMarker), header: lineNo})
			inBlock = true
		case common.IsBlank(line):
			inBlock = false
		case inBlock:
			last := &blocks[len(blocks)-1]
			last.lines = append(last.lines, line)
		case len(blocks) > 0:
			return nil, fmt.Errorf("line %d: %w: %q is outside any map block", lineNo, mapping.ErrMalformedMapping, line)
		}
	}

	if !seenSeed {
		return nil, ErrMissingSeedLine
	}

	stages := make([]pipeline.Stage, 0, len(blocks))

	for _, b := range blocks {
		table, err := mapping.ParseBlock(b.lines)
		if err != nil {
			return nil, fmt.Errorf("stage %q at line %d: %w", b.name, b.header, err)
		}

		stages = append(stages, pipeline.Stage{Name: b.name, Table: table})
	}

	return &Almanac{SeedTokens: tokens, Pipeline: pipeline.New(stages...)}, nil
}
