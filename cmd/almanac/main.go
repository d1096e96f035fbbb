// Package main provides the CLI entrypoint for almanac.
//
// almanac carries seeds through a chain of range-remapping stages and
// reports the lowest resulting value:
//   - lowest: evaluate seeds (single values or start/length ranges)
//   - check: report structural problems in the stage tables
//   - export: convert a text almanac to YAML
//   - inspect: dump the parsed almanac
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
