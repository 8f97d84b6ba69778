package system

import (
	"testing"

	"go-tower-proto/internal/config"
	"go-tower-proto/internal/defs"
	"go-tower-proto/internal/event"
	"go-tower-proto/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnInterval(t *testing.T) {
	tests := []struct {
		name  string
		wave  int
		floor int
		want  int
	}{
		{"first wave", 1, 10, 115},
		{"wave five", 5, 10, 95},
		{"just above floor", 22, 10, 10},
		{"would be zero", 24, 10, 10},
		{"would be negative", 100, 10, 10},
		{"missing floor uses default", 40, 0, config.MinSpawnInterval},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SpawnInterval(120, 5, tt.floor, tt.wave))
		})
	}
}

func timerRules() defs.RulesetDefinition {
	rules := testRules()
	rules.SpawnBaseInterval = 120
	rules.SpawnDecay = 5
	rules.Enemies = []defs.EnemyType{defs.EnemyNormal, defs.EnemyFast, defs.EnemyTank}
	return rules
}

func TestWaveTimerSpawnsOnFirstTickThenEveryIntervalPlusOne(t *testing.T) {
	w := newWorld(timerRules(), 3)

	var spawnTicks []int
	for tick := 1; tick <= 240; tick++ {
		before := w.ecs.ActiveEnemies()
		w.wave.Update()
		if w.ecs.ActiveEnemies() > before {
			spawnTicks = append(spawnTicks, tick)
		}
	}

	// Волна 1: интервал 115, затем 115 тиков обратного отсчёта.
	assert.Equal(t, []int{1, 117, 233}, spawnTicks)
}

func TestWaveTimerRespectsFloorAtHighWaves(t *testing.T) {
	w := newWorld(timerRules(), 3)
	w.ecs.Economy.Wave = 30

	for tick := 0; tick < 110; tick++ {
		w.wave.Update()
	}

	assert.Equal(t, 10, w.ecs.ActiveEnemies(), "one spawn per floor+1 ticks, not every tick")
}

func TestSpawnPlacesEnemyAtPathStart(t *testing.T) {
	w := newWorld(timerRules(), 3)

	id := w.wave.Spawn(defs.EnemyTank)

	pos := w.ecs.Positions[id]
	assert.Equal(t, w.rules.Path[0], pos.Vec())
	assert.Equal(t, 0, w.ecs.Paths[id].CurrentIndex)
	assert.Equal(t, 200, w.ecs.Healths[id].Value)
	assert.Equal(t, 200, w.ecs.Healths[id].Max)
	assert.Equal(t, 0.5, w.ecs.Velocities[id].Speed)
	assert.Equal(t, defs.EnemyTank, w.ecs.Enemies[id].Type)
	assert.Equal(t, 1, w.events.count(event.EnemySpawned))
}

func TestTimerSpawnsUseWholeRoster(t *testing.T) {
	w := newWorld(timerRules(), 11)
	w.ecs.Economy.Wave = 30

	for tick := 0; tick < 3000; tick++ {
		w.wave.Update()
	}

	seen := map[defs.EnemyType]bool{}
	for _, e := range w.ecs.Enemies {
		seen[e.Type] = true
	}
	assert.Len(t, seen, 3)
}

func chanceRules() defs.RulesetDefinition {
	rules := testRules()
	rules.ExtraSpawnChance = 2
	rules.Enemies = []defs.EnemyType{defs.EnemyDefault}
	return rules
}

func TestExtraSpawnChannelIsIndependentOfTimer(t *testing.T) {
	w := newWorld(chanceRules(), 99)

	for tick := 0; tick < 10000; tick++ {
		w.wave.Update()
	}

	n := w.ecs.ActiveEnemies()
	assert.Greater(t, n, 100)
	assert.Less(t, n, 300)
	assert.Equal(t, 0, w.ecs.Spawner.Timer, "timer channel is disabled")
}

func TestExtraSpawnChannelIsReproducible(t *testing.T) {
	run := func() []int {
		w := newWorld(chanceRules(), 2024)
		var ticks []int
		for tick := 0; tick < 2000; tick++ {
			before := w.ecs.ActiveEnemies()
			w.wave.Update()
			if w.ecs.ActiveEnemies() > before {
				ticks = append(ticks, tick)
			}
		}
		return ticks
	}

	first := run()
	require.NotEmpty(t, first)
	assert.Equal(t, first, run())
}

func TestBothChannelsCanFireInOneTick(t *testing.T) {
	rules := timerRules()
	rules.ExtraSpawnChance = 100
	w := newWorld(rules, 5)

	w.wave.Update()

	assert.Equal(t, 2, w.ecs.ActiveEnemies())
}

func TestCheckWaveAdvanceIsEdgeTriggered(t *testing.T) {
	w := newWorld(testRules(), 1)

	assert.False(t, w.wave.CheckWaveAdvance(), "empty from the start is not a cleared wave")

	id := w.wave.Spawn(defs.EnemyNormal)
	assert.False(t, w.wave.CheckWaveAdvance())

	w.ecs.RemoveEnemies([]types.EntityID{id})
	assert.True(t, w.wave.CheckWaveAdvance())
	assert.Equal(t, 2, w.ecs.Economy.Wave)
	assert.Equal(t, 50, w.ecs.Economy.Money)

	for i := 0; i < 10; i++ {
		assert.False(t, w.wave.CheckWaveAdvance())
	}
	assert.Equal(t, 2, w.ecs.Economy.Wave)
	assert.Equal(t, 1, w.events.count(event.WaveAdvanced))
}
