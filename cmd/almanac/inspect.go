package main

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"almanac/internal/almanac"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func (c *cli) inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Dump the parsed almanac",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := almanac.LoadFile(args[0])
			if err != nil {
				return err
			}

			doc, err := a.Document()
			if err != nil {
				return err
			}

			dumper.Fdump(cmd.OutOrStdout(), doc)

			return nil
		},
	}
}
