package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"almanac/internal/config"
)

// cli carries state shared by every command of one invocation.
type cli struct {
	verbose bool
	cfg     config.Config
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	return (&cli{}).rootCmd()
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "almanac",
		Short: "Find the lowest location reachable from a set of seeds",
		Long: `almanac reads a seed line followed by blocks of "destination source length"
mappings and carries every seed through the blocks in order. Values not covered
by any mapping of a block pass through unchanged.

Settings can also come from the environment:
  ALMANAC_WORKERS, ALMANAC_CHUNK_SIZE, ALMANAC_STRATEGY, ALMANAC_LOG_LEVEL`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		c.lowestCmd(),
		c.checkCmd(),
		c.exportCmd(),
		c.inspectCmd(),
	)

	return root
}

// setup loads the environment and builds the logger unless one was injected.
func (c *cli) setup(*cobra.Command, []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	c.cfg = cfg

	if c.logger != nil {
		return nil
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	if c.verbose {
		level = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)

	c.logger, err = zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}
