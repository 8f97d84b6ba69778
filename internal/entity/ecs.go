// internal/entity/ecs.go
package entity

import (
	"go-tower-proto/internal/component"
	"go-tower-proto/internal/types"
)

// ECS хранит все сущности симуляции. Компоненты лежат в картах,
// а порядок обхода врагов и башен задают срезы EnemyOrder и TowerOrder:
// враги идут в порядке появления, башни в порядке постройки.
type ECS struct {
	Tick        uint64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Paths       map[types.EntityID]*component.Path
	Healths     map[types.EntityID]*component.Health
	Renderables map[types.EntityID]*component.Renderable
	Towers      map[types.EntityID]*component.Tower
	Combats     map[types.EntityID]*component.Combat
	Enemies     map[types.EntityID]*component.Enemy
	AttackLines map[types.EntityID]*component.AttackLine
	EnemyOrder  []types.EntityID
	TowerOrder  []types.EntityID
	Economy     *component.Economy
	Spawner     *component.Spawner
	Phase       component.Phase
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Paths:       make(map[types.EntityID]*component.Path),
		Healths:     make(map[types.EntityID]*component.Health),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Towers:      make(map[types.EntityID]*component.Tower),
		Combats:     make(map[types.EntityID]*component.Combat),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		AttackLines: make(map[types.EntityID]*component.AttackLine),
		Economy:     &component.Economy{Wave: 1},
		Spawner:     &component.Spawner{},
		Phase:       component.Running,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddEnemy регистрирует врага в конце порядка обхода.
func (ecs *ECS) AddEnemy(id types.EntityID) {
	ecs.EnemyOrder = append(ecs.EnemyOrder, id)
}

// AddTower регистрирует башню в конце порядка обхода.
func (ecs *ECS) AddTower(id types.EntityID) {
	ecs.TowerOrder = append(ecs.TowerOrder, id)
}

// RemoveEnemies удаляет врагов одним проходом, сохраняя порядок остальных.
func (ecs *ECS) RemoveEnemies(ids []types.EntityID) {
	if len(ids) == 0 {
		return
	}
	doomed := make(map[types.EntityID]struct{}, len(ids))
	for _, id := range ids {
		doomed[id] = struct{}{}
		delete(ecs.Positions, id)
		delete(ecs.Velocities, id)
		delete(ecs.Paths, id)
		delete(ecs.Healths, id)
		delete(ecs.Renderables, id)
		delete(ecs.Enemies, id)
	}
	kept := ecs.EnemyOrder[:0]
	for _, id := range ecs.EnemyOrder {
		if _, gone := doomed[id]; !gone {
			kept = append(kept, id)
		}
	}
	ecs.EnemyOrder = kept
}

// ActiveEnemies возвращает число врагов на поле, включая убитых,
// которых ещё не убрала экономика.
func (ecs *ECS) ActiveEnemies() int {
	return len(ecs.EnemyOrder)
}
