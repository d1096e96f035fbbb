package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"almanac/internal/almanac"
)

func (c *cli) exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Convert an almanac to YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := almanac.LoadFile(args[0])
			if err != nil {
				return err
			}

			if output != "" {
				if err := almanac.WriteFile(a, output); err != nil {
					return err
				}

				c.logger.Info("almanac exported", zap.String("path", output))

				return nil
			}

			data, err := almanac.Marshal(a)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")

	return cmd
}
