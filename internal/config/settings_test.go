package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "styled", s.Ruleset)
	assert.Equal(t, int64(0), s.Seed)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, TargetTPS, s.TPS)
	assert.Empty(t, s.LogFile)
	assert.Empty(t, s.TowersFile)
	assert.Empty(t, s.EnemiesFile)
}

func TestLoadYAMLFile(t *testing.T) {
	path := writeFile(t, "td.yaml", `
ruleset: classic
seed: 42
logLevel: debug
tps: 30
towersFile: towers.json
`)
	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "classic", s.Ruleset)
	assert.Equal(t, int64(42), s.Seed)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, 30, s.TPS)
	assert.Equal(t, "towers.json", s.TowersFile)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "td.json", `{"ruleset": "classic", "seed": 1}`)
	t.Setenv("TD_SEED", "99")
	t.Setenv("TD_RULESET", "styled")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(99), s.Seed)
	assert.Equal(t, "styled", s.Ruleset)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoadRejectsNonPositiveTPS(t *testing.T) {
	path := writeFile(t, "td.toml", "tps = 0\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tps must be positive")
}
