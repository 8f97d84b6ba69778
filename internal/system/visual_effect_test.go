package system

import (
	"testing"

	"go-tower-proto/internal/config"
	"go-tower-proto/internal/entity"
	"go-tower-proto/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttackLinesExpire(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	vfx := NewVisualEffectSystem(ecs, d)
	combat := NewCombatSystem(ecs, d)
	w := &world{ecs: ecs, rules: ptr(testRules())}
	w.addEnemyAt(10, 0, 100)
	w.addTowerAt(0, 0, 50, 1, 100)

	combat.Update()
	require.Len(t, ecs.AttackLines, 1)

	for i := 0; i < config.AttackLineTicks-1; i++ {
		vfx.Update()
	}
	assert.Len(t, ecs.AttackLines, 1)
	vfx.Update()
	assert.Empty(t, ecs.AttackLines)
}

func ptr[T any](v T) *T { return &v }
