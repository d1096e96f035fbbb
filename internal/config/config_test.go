package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ALMANAC_WORKERS", "ALMANAC_CHUNK_SIZE", "ALMANAC_STRATEGY", "ALMANAC_LOG_LEVEL"} {
		// Setenv restores the original value after the test
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{Strategy: "brute-force", LogLevel: "info"}, cfg)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ALMANAC_WORKERS", "4")
	t.Setenv("ALMANAC_CHUNK_SIZE", "1024")
	t.Setenv("ALMANAC_STRATEGY", "intervals")
	t.Setenv("ALMANAC_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{Workers: 4, ChunkSize: 1024, Strategy: "intervals", LogLevel: "debug"}, cfg)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("ALMANAC_WORKERS", "many")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")

	t.Setenv("ALMANAC_WORKERS", "-2")

	_, err = Load()
	assert.Error(t, err)
}
