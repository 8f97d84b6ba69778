// internal/app/snapshot.go
package app

import (
	"slices"

	"go-tower-proto/internal/component"
	"go-tower-proto/internal/defs"
	"go-tower-proto/internal/types"
	"go-tower-proto/pkg/geom"
)

// EnemyView — враг в том виде, в каком его рисуют.
type EnemyView struct {
	ID       types.EntityID
	Type     defs.EnemyType
	Position geom.Vec
	Health   int
	Max      int
	Visual   component.Renderable
}

// TowerView — башня в том виде, в каком её рисуют.
type TowerView struct {
	ID       types.EntityID
	Type     defs.TowerType
	Position geom.Vec
	Range    float64
	Visual   component.Renderable
}

// LineView — линия выстрела.
type LineView struct {
	ID       types.EntityID
	From, To geom.Vec
}

// Snapshot — копия состояния для отрисовки. Изменение Snapshot
// не влияет на игру.
type Snapshot struct {
	Tick         uint64
	Ruleset      defs.RulesetID
	Path         []geom.Vec
	Enemies      []EnemyView
	Towers       []TowerView
	Lines        []LineView
	Economy      component.Economy
	Phase        component.Phase
	Selected     defs.TowerType
	HasSelection bool
}

// Snapshot собирает текущее состояние. Враги и башни идут в порядке
// обхода, линии по возрастанию ID.
func (g *Game) Snapshot() Snapshot {
	ecs := g.ECS
	s := Snapshot{
		Tick:         ecs.Tick,
		Ruleset:      g.Rules.ID,
		Path:         slices.Clone(g.Rules.Path),
		Enemies:      make([]EnemyView, 0, len(ecs.EnemyOrder)),
		Towers:       make([]TowerView, 0, len(ecs.TowerOrder)),
		Lines:        make([]LineView, 0, len(ecs.AttackLines)),
		Economy:      *ecs.Economy,
		Phase:        ecs.Phase,
		Selected:     g.selected,
		HasSelection: g.hasSelection,
	}

	for _, id := range ecs.EnemyOrder {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		view := EnemyView{ID: id, Position: pos.Vec()}
		if enemy, ok := ecs.Enemies[id]; ok {
			view.Type = enemy.Type
		}
		if health, ok := ecs.Healths[id]; ok {
			view.Health, view.Max = health.Value, health.Max
		}
		if r, ok := ecs.Renderables[id]; ok {
			view.Visual = *r
		}
		s.Enemies = append(s.Enemies, view)
	}

	for _, id := range ecs.TowerOrder {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		view := TowerView{ID: id, Position: pos.Vec()}
		if tower, ok := ecs.Towers[id]; ok {
			view.Type = tower.Type
		}
		if combat, ok := ecs.Combats[id]; ok {
			view.Range = combat.Range
		}
		if r, ok := ecs.Renderables[id]; ok {
			view.Visual = *r
		}
		s.Towers = append(s.Towers, view)
	}

	for id, line := range ecs.AttackLines {
		s.Lines = append(s.Lines, LineView{ID: id, From: line.From, To: line.To})
	}
	slices.SortFunc(s.Lines, func(a, b LineView) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return s
}

// HealthRatio возвращает долю оставшегося здоровья в [0, 1].
func (v EnemyView) HealthRatio() float64 {
	h := component.Health{Value: v.Health, Max: v.Max}
	return h.Ratio()
}
