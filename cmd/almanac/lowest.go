package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"almanac/internal/almanac"
	"almanac/internal/evaluate"
)

type lowestFlags struct {
	ranges    bool
	strategy  string
	workers   int
	chunkSize uint64
}

func (c *cli) lowestCmd() *cobra.Command {
	var f lowestFlags

	cmd := &cobra.Command{
		Use:   "lowest FILE",
		Short: "Print the lowest output over all seeds",
		Long: `Carries every seed through all stages and prints the lowest result.

With --ranges the seed line is read as start/length pairs and every integer in
each range is evaluated. Run time grows with the total length of all ranges.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLowest(cmd, args[0], f)
		},
	}

	cmd.Flags().BoolVar(&f.ranges, "ranges", false, "read seeds as start/length pairs")
	cmd.Flags().StringVar(&f.strategy, "strategy", "", "brute-force or intervals (default from ALMANAC_STRATEGY)")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "parallel workers (default from ALMANAC_WORKERS, else all CPUs)")
	cmd.Flags().Uint64Var(&f.chunkSize, "chunk-size", 0, "seeds per worker task")

	return cmd
}

func (c *cli) runLowest(cmd *cobra.Command, path string, f lowestFlags) error {
	a, err := almanac.LoadFile(path)
	if err != nil {
		return err
	}

	mode := almanac.ModeScalars
	if f.ranges {
		mode = almanac.ModeRanges
	}

	seeds, err := a.Seeds(mode)
	if err != nil {
		return err
	}

	strategyName := c.cfg.Strategy
	if f.strategy != "" {
		strategyName = f.strategy
	}

	strategy, err := evaluate.ParseStrategy(strategyName)
	if err != nil {
		return err
	}

	workers := c.cfg.Workers
	if f.workers > 0 {
		workers = f.workers
	}

	chunkSize := c.cfg.ChunkSize
	if f.chunkSize > 0 {
		chunkSize = f.chunkSize
	}

	c.logger.Debug("almanac loaded",
		zap.String("path", path),
		zap.Stringer("mode", mode),
		zap.Int("stages", a.Pipeline.Len()),
		zap.Uint64("seeds", seeds.Len()))

	ev := evaluate.New(
		evaluate.WithWorkers(workers),
		evaluate.WithChunkSize(chunkSize),
		evaluate.WithStrategy(strategy),
		evaluate.WithLogger(c.logger),
	)

	_, err = fmt.Fprintln(cmd.OutOrStdout(), ev.Lowest(a.Pipeline, seeds))

	return err
}
