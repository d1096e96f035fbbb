package common

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLineSize bounds a single input line; seed lines of real inputs are a few hundred bytes.
const maxLineSize = 1 << 20

// ReadLines splits r into lines without their trailing newline or carriage return.
func ReadLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading lines: %w", err)
	}

	return lines, nil
}

// IsBlank reports whether the line holds only whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// Fields splits a line on runs of whitespace.
func Fields(line string) []string {
	return strings.Fields(line)
}

// After returns the text following the first occurrence of marker,
// and false when the marker is absent.
func After(line, marker string) (string, bool) {
	_, rest, ok := strings.Cut(line, marker)
	return rest, ok
}

// Before returns the trimmed text preceding the first occurrence of marker.
func Before(line, marker string) string {
	head, _, _ := strings.Cut(line, marker)
	return strings.TrimSpace(head)
}

// ParseUint parses a base-10 non-negative integer that fits in 64 bits.
func ParseUint(tok string) (uint64, error) {
	return strconv.ParseUint(tok, 10, 64)
}

// ParseUints parses every token, returning the index of the first bad one on failure.
func ParseUints(tokens []string) ([]uint64, int, error) {
	out := make([]uint64, 0, len(tokens))

	for i, tok := range tokens {
		v, err := ParseUint(tok)
		if err != nil {
			return nil, i, err
		}

		out = append(out, v)
	}

	return out, -1, nil
}
