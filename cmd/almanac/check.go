package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"almanac/internal/almanac"
	"almanac/internal/pipeline"
)

var errCheckFailed = errors.New("check failed")

func (c *cli) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Report problems in the seed line and stage tables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd, args[0])
		},
	}
}

func (c *cli) runCheck(cmd *cobra.Command, path string) error {
	a, err := almanac.LoadFile(path)
	if err != nil {
		return err
	}

	res := pipeline.Validate(a.Pipeline)

	if _, err := a.Seeds(almanac.ModeScalars); err != nil {
		res.AddError("bad_seeds", err.Error(), "", 0)
	} else if _, err := a.Seeds(almanac.ModeRanges); err != nil {
		res.AddWarning("seeds_not_ranges", err.Error(), "", 0)
	}

	out := cmd.OutOrStdout()
	for _, d := range res.All() {
		fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
	}

	fmt.Fprintf(out, "%d stage(s), %d error(s), %d warning(s)\n", a.Pipeline.Len(), len(res.Errors), len(res.Warnings))

	if res.HasErrors() {
		return fmt.Errorf("%w: %w", errCheckFailed, res.Error())
	}

	return nil
}
