package runcfg

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults verifies the zero-input configuration.
func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "pretty", cfg.Log.Format)
	assert.Equal(t, DefaultDemoTimeout, cfg.Demo.Timeout)
}

// TestLoad_File verifies file values override defaults.
func TestLoad_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "runner.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\ndemo:\n  timeout: 2s\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 2*time.Second, cfg.Demo.Timeout)
	assert.Equal(t, "pretty", cfg.Log.Format, "unset keys keep defaults")
}

// TestLoad_MissingFileIsFine verifies a nonexistent path falls back to
// defaults.
func TestLoad_MissingFileIsFine(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
}

// TestLoad_Env verifies environment overrides win. Not parallel: mutates
// the process environment.
func TestLoad_Env(t *testing.T) {
	t.Setenv("EFFECTIVEGO_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

// TestLoad_RejectsInvalid verifies validation runs after merging.
func TestLoad_RejectsInvalid(t *testing.T) {
	t.Setenv("EFFECTIVEGO_LOG_LEVEL", "chatty")

	_, err := Load("")
	assert.ErrorContains(t, err, "invalid configuration")
}
