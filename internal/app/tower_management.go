// internal/app/tower_management.go
package app

import (
	"go-tower-proto/internal/component"
	"go-tower-proto/internal/defs"
	"go-tower-proto/internal/event"
	"go-tower-proto/internal/input"
	"go-tower-proto/internal/types"
)

func (g *Game) handlePointer(e input.Event) {
	// Без списка башен любая кнопка строит башню по умолчанию.
	if len(g.Rules.Towers) == 0 {
		g.PlaceTower(g.Rules.DefaultTower, e.X, e.Y)
		return
	}
	switch e.Button {
	case input.ButtonLeft:
		if g.hasSelection {
			g.PlaceTower(g.selected, e.X, e.Y)
		}
	case input.ButtonRight:
		g.ClearSelection()
	}
}

// Select выбирает башню с индексом index из списка правил.
// Индекс вне списка игнорируется.
func (g *Game) Select(index int) bool {
	if index < 0 || index >= len(g.Rules.Towers) {
		return false
	}
	g.selected = g.Rules.Towers[index]
	g.hasSelection = true
	return true
}

func (g *Game) ClearSelection() {
	g.hasSelection = false
}

// Selected возвращает выбранный тип башни.
func (g *Game) Selected() (defs.TowerType, bool) {
	return g.selected, g.hasSelection
}

// PlaceTower строит башню в точке (x, y), если хватает денег.
func (g *Game) PlaceTower(towerType defs.TowerType, x, y float64) (types.EntityID, bool) {
	def, ok := defs.TowerLibrary[towerType]
	if !ok {
		g.Logger.Warn().Str("tower", towerType.String()).Msg("unknown tower type")
		return 0, false
	}
	if !g.EconomySystem.TrySpend(g.Rules.TowerCost) {
		g.Logger.Debug().
			Int("money", g.ECS.Economy.Money).
			Int("cost", g.Rules.TowerCost).
			Msg("not enough money for tower")
		return 0, false
	}

	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Towers[id] = &component.Tower{Type: def.Type}
	g.ECS.Combats[id] = &component.Combat{
		Range:       def.Range,
		Damage:      def.Damage,
		CooldownMax: def.Cooldown,
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    float32(def.Visuals.Radius),
		Shape:     def.Visuals.Shape,
		HasStroke: def.Visuals.Shape == defs.ShapeSquare,
	}
	g.ECS.AddTower(id)

	tower := g.ECS.Positions[id].Vec()
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerData{
		ID:       id,
		Type:     def.Type,
		Position: tower,
		Cost:     g.Rules.TowerCost,
	}})
	return id, true
}

