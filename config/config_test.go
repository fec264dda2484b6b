package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(ConfigFileEnv, "")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := writeConfig(t, `
debug: true
strategy: naive
metric: manhattan
points: 32
trials: 5
workers: 2
seed: 99
format: yaml
`)
	t.Setenv(ConfigFileEnv, path)
	t.Setenv("PAIRDIST_TRIALS", "11")
	t.Setenv("PAIRDIST_PRETTY_LOG_OUTPUT", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.PrettyLogOutput)
	assert.Equal(t, "naive", cfg.Strategy)
	assert.Equal(t, "manhattan", cfg.Metric)
	assert.Equal(t, 32, cfg.Points)
	assert.Equal(t, 11, cfg.Trials)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, "yaml", cfg.Format)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv(ConfigFileEnv, filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load()
	assert.ErrorContains(t, err, "failed to open config file")
}

func TestLoadUnknownField(t *testing.T) {
	t.Setenv(ConfigFileEnv, writeConfig(t, "pointz: 3\n"))
	_, err := Load()
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestLoadBadEnv(t *testing.T) {
	t.Setenv(ConfigFileEnv, "")
	t.Setenv("PAIRDIST_POINTS", "many")
	_, err := Load()
	assert.ErrorContains(t, err, "failed to parse env")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Strategy = "blocked"
	cfg.Metric = "cosine"
	cfg.Points = 0
	cfg.Trials = -1
	cfg.Workers = 0
	cfg.Format = "json"
	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"strategy", "cosine", "points", "trials", "workers", "format"} {
		assert.Contains(t, err.Error(), want)
	}
}
