// Package config loads run settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds settings that flags may override.
type Config struct {
	// Workers bounds parallel evaluation; 0 uses every CPU.
	Workers int `env:"ALMANAC_WORKERS" envDefault:"0"`
	// ChunkSize is the number of seeds per worker task; 0 keeps the evaluator default.
	ChunkSize uint64 `env:"ALMANAC_CHUNK_SIZE" envDefault:"0"`
	// Strategy is "brute-force" or "intervals".
	Strategy string `env:"ALMANAC_STRATEGY" envDefault:"brute-force"`
	// LogLevel is a zap level name.
	LogLevel string `env:"ALMANAC_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Workers < 0 {
		return Config{}, fmt.Errorf("ALMANAC_WORKERS must not be negative, got %d", cfg.Workers)
	}

	return cfg, nil
}
