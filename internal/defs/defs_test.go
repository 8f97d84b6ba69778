package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLibraries(t *testing.T) {
	towers := make(map[TowerType]TowerDefinition, len(TowerLibrary))
	for k, v := range TowerLibrary {
		towers[k] = v
	}
	enemies := make(map[EnemyType]EnemyDefinition, len(EnemyLibrary))
	for k, v := range EnemyLibrary {
		enemies[k] = v
	}
	t.Cleanup(func() {
		TowerLibrary = towers
		EnemyLibrary = enemies
	})
}

func TestLibrariesCoverEveryRosterEntry(t *testing.T) {
	for id, rs := range Rulesets {
		for _, et := range rs.Enemies {
			_, ok := EnemyLibrary[et]
			assert.True(t, ok, "ruleset %s: enemy %s has no definition", id, et)
		}
		for _, tt := range append(rs.Towers, rs.DefaultTower) {
			_, ok := TowerLibrary[tt]
			assert.True(t, ok, "ruleset %s: tower %s has no definition", id, tt)
		}
		assert.GreaterOrEqual(t, len(rs.Path), 2, "ruleset %s", id)
	}
}

func TestStyledTowerStats(t *testing.T) {
	tests := []struct {
		tower    TowerType
		rng      float64
		damage   int
		cooldown int
	}{
		{TowerBasic, 150, 10, 60},
		{TowerSniper, 250, 30, 120},
		{TowerMachineGun, 100, 5, 20},
	}
	for _, tt := range tests {
		t.Run(tt.tower.String(), func(t *testing.T) {
			def := TowerLibrary[tt.tower]
			assert.Equal(t, tt.rng, def.Range)
			assert.Equal(t, tt.damage, def.Damage)
			assert.Equal(t, tt.cooldown, def.Cooldown)
		})
	}
}

func TestLookupRuleset(t *testing.T) {
	rs, err := LookupRuleset("styled")
	require.NoError(t, err)
	assert.Equal(t, RulesetStyled, rs.ID)

	rs.Path[0].X = -1
	assert.NotEqual(t, -1.0, Rulesets[RulesetStyled].Path[0].X, "lookup must copy the path")

	_, err = LookupRuleset("arcade")
	assert.Error(t, err)
}

func TestTypeNames(t *testing.T) {
	var et EnemyType
	require.NoError(t, et.UnmarshalText([]byte("tank")))
	assert.Equal(t, EnemyTank, et)
	assert.Error(t, et.UnmarshalText([]byte("boss")))

	var tt TowerType
	require.NoError(t, tt.UnmarshalText([]byte("machine_gun")))
	assert.Equal(t, TowerMachineGun, tt)
	assert.Equal(t, "TowerType(42)", TowerType(42).String())
}

func TestLoadTowerDefinitions(t *testing.T) {
	restoreLibraries(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "towers.json")
	data := `[{"type": "sniper", "name": "Long Sniper", "range": 400, "damage": 50, "cooldown": 200}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	n, err := LoadTowerDefinitions(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 400.0, TowerLibrary[TowerSniper].Range)
	assert.Equal(t, 150.0, TowerLibrary[TowerBasic].Range, "untouched entries keep defaults")
}

func TestLoadTowerDefinitions_Errors(t *testing.T) {
	restoreLibraries(t)

	_, err := LoadTowerDefinitions("/nonexistent/towers.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read tower definitions file")

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{"type": "laser"}]`), 0644))
	_, err = LoadTowerDefinitions(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal tower definitions")
}

func TestLoadEnemyDefinitions(t *testing.T) {
	restoreLibraries(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "enemies.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"type": "fast", "health": 60, "speed": 3}]`), 0644))

	n, err := LoadEnemyDefinitions(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 60, EnemyLibrary[EnemyFast].Health)

	require.NoError(t, os.WriteFile(path, []byte(`[{"type": "tank", "health": 0, "speed": 1}]`), 0644))
	_, err = LoadEnemyDefinitions(path)
	assert.Error(t, err)
	assert.Equal(t, 200, EnemyLibrary[EnemyTank].Health)
}

func TestLoadTowerDefinitions_KeepsVisualsAndRejectsNegativeDamage(t *testing.T) {
	restoreLibraries(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "towers.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"type": "basic", "range": 160, "damage": 12, "cooldown": 50}]`), 0644))

	_, err := LoadTowerDefinitions(path)
	require.NoError(t, err)
	basic := TowerLibrary[TowerBasic]
	assert.Equal(t, 12, basic.Damage)
	assert.Equal(t, "Basic", basic.Name)
	assert.Equal(t, ShapeSquare, basic.Visuals.Shape)

	require.NoError(t, os.WriteFile(path, []byte(`[{"type": "sniper", "range": 100, "damage": -1, "cooldown": 10}]`), 0644))
	_, err = LoadTowerDefinitions(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative range, damage or cooldown")
	assert.Equal(t, 30, TowerLibrary[TowerSniper].Damage)
}
