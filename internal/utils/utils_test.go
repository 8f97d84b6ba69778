package utils

import (
	"testing"

	"go-tower-proto/internal/defs"

	"github.com/stretchr/testify/assert"
)

func TestSameSeedSameSequence(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	roster := []defs.EnemyType{defs.EnemyNormal, defs.EnemyFast, defs.EnemyTank}
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.ChooseEnemy(roster), b.ChooseEnemy(roster))
		assert.Equal(t, a.Chance(30), b.Chance(30))
	}
	assert.Equal(t, int64(42), a.Seed())
}

func TestZeroSeedPicksOne(t *testing.T) {
	assert.NotZero(t, NewPRNGService(0).Seed())
}

func TestChooseEnemyCoversRoster(t *testing.T) {
	s := NewPRNGService(7)
	roster := []defs.EnemyType{defs.EnemyNormal, defs.EnemyFast, defs.EnemyTank}
	seen := map[defs.EnemyType]int{}
	for i := 0; i < 300; i++ {
		seen[s.ChooseEnemy(roster)]++
	}
	assert.Len(t, seen, 3)
	assert.Equal(t, defs.EnemyDefault, s.ChooseEnemy(nil))
	assert.Equal(t, defs.EnemyTank, s.ChooseEnemy([]defs.EnemyType{defs.EnemyTank}))
}

func TestChanceBounds(t *testing.T) {
	s := NewPRNGService(1)
	for i := 0; i < 100; i++ {
		assert.False(t, s.Chance(0))
		assert.True(t, s.Chance(100))
	}
}

func TestLerpAndClamp(t *testing.T) {
	assert.InDelta(t, 5.0, Lerp(0, 10, 0.5), 1e-9)
	assert.Equal(t, 1.0, Clamp(3, 0, 1))
	assert.Equal(t, 0.0, Clamp(-3, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
}
