package system

import (
	"go-tower-proto/internal/component"
	"go-tower-proto/internal/defs"
	"go-tower-proto/internal/entity"
	"go-tower-proto/internal/event"
	"go-tower-proto/internal/types"
	"go-tower-proto/internal/utils"
	"go-tower-proto/pkg/geom"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type world struct {
	ecs      *entity.ECS
	rules    *defs.RulesetDefinition
	events   *recorder
	movement *MovementSystem
	combat   *CombatSystem
	economy  *EconomySystem
	wave     *WaveSystem
}

func testRules() defs.RulesetDefinition {
	return defs.RulesetDefinition{
		ID:          "test",
		Path:        []geom.Vec{{X: 0, Y: 0}, {X: 1000, Y: 0}},
		StartHealth: 100,
		LeakPenalty: 10,
		KillBounty:  10,
		WaveBonus:   50,
		SpawnFloor:  10,
		Enemies:     []defs.EnemyType{defs.EnemyNormal},
	}
}

func newWorld(rules defs.RulesetDefinition, seed int64) *world {
	ecs := entity.NewECS()
	ecs.Economy.Health = rules.StartHealth
	ecs.Economy.Money = rules.StartMoney
	d := event.NewDispatcher()
	rec := &recorder{}
	d.Subscribe(rec, event.EnemySpawned, event.EnemyKilled, event.EnemyLeaked,
		event.TowerAttacked, event.WaveAdvanced, event.GameOver)

	w := &world{ecs: ecs, rules: &rules, events: rec}
	w.movement = NewMovementSystem(ecs)
	w.combat = NewCombatSystem(ecs, d)
	w.economy = NewEconomySystem(ecs, w.rules, d)
	w.wave = NewWaveSystem(ecs, w.rules, utils.NewPRNGService(seed), w.economy, d)
	return w
}

func (w *world) addEnemyAt(x, y float64, hp int) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Velocities[id] = &component.Velocity{Speed: 1}
	w.ecs.Paths[id] = &component.Path{Waypoints: w.rules.Path}
	w.ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	w.ecs.Enemies[id] = &component.Enemy{Type: defs.EnemyNormal}
	w.ecs.AddEnemy(id)
	return id
}

func (w *world) addTowerAt(x, y, rng float64, damage, cooldown int) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Towers[id] = &component.Tower{Type: defs.TowerBasic}
	w.ecs.Combats[id] = &component.Combat{Range: rng, Damage: damage, CooldownMax: cooldown}
	w.ecs.AddTower(id)
	return id
}
