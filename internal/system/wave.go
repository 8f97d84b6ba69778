// internal/system/wave.go
package system

import (
	"go-tower-proto/internal/component"
	"go-tower-proto/internal/config"
	"go-tower-proto/internal/defs"
	"go-tower-proto/internal/entity"
	"go-tower-proto/internal/event"
	"go-tower-proto/internal/types"
	"go-tower-proto/internal/utils"
)

// WaveSystem выпускает врагов. Есть два независимых канала: таймер с
// сокращающимся интервалом и случайный спавн с фиксированной вероятностью
// на тик. Какой канал включён, решает набор правил.
type WaveSystem struct {
	ecs             *entity.ECS
	rules           *defs.RulesetDefinition
	rng             *utils.PRNGService
	economy         *EconomySystem
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, rules *defs.RulesetDefinition, rng *utils.PRNGService, economy *EconomySystem, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		rules:           rules,
		rng:             rng,
		economy:         economy,
		eventDispatcher: eventDispatcher,
	}
}

// SpawnInterval возвращает base - wave*decay, но не меньше floor.
// floor < 1 заменяется на config.MinSpawnInterval.
func SpawnInterval(base, decay, floor, wave int) int {
	if floor < 1 {
		floor = config.MinSpawnInterval
	}
	interval := base - wave*decay
	if interval < floor {
		return floor
	}
	return interval
}

func (s *WaveSystem) Update() {
	if s.rules.SpawnBaseInterval > 0 {
		spawner := s.ecs.Spawner
		if spawner.Timer <= 0 {
			s.Spawn(s.rng.ChooseEnemy(s.rules.Enemies))
			spawner.Timer = SpawnInterval(s.rules.SpawnBaseInterval, s.rules.SpawnDecay, s.rules.SpawnFloor, s.ecs.Economy.Wave)
		} else {
			spawner.Timer--
		}
	}

	// Отдельный бросок, не связанный с таймером.
	if s.rules.ExtraSpawnChance > 0 && s.rng.Chance(s.rules.ExtraSpawnChance) {
		s.Spawn(s.rng.ChooseEnemy(s.rules.Enemies))
	}
}

// CheckWaveAdvance сменяет волну, когда поле только что опустело.
// Пока поле остаётся пустым, повторной смены нет.
func (s *WaveSystem) CheckWaveAdvance() bool {
	occupied := s.ecs.ActiveEnemies() > 0
	wasOccupied := s.ecs.Spawner.Occupied
	s.ecs.Spawner.Occupied = occupied
	if occupied || !wasOccupied {
		return false
	}
	s.economy.AdvanceWave()
	return true
}

// Spawn создаёт врага заданного типа в первой точке пути.
func (s *WaveSystem) Spawn(enemyType defs.EnemyType) types.EntityID {
	def, ok := defs.EnemyLibrary[enemyType]
	if !ok {
		def = defs.EnemyLibrary[defs.EnemyDefault]
	}

	start := s.rules.Path[0]
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	s.ecs.Paths[id] = &component.Path{Waypoints: s.rules.Path, CurrentIndex: 0}
	s.ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  def.Visuals.Color,
		Radius: float32(def.Visuals.Radius),
		Shape:  def.Visuals.Shape,
	}
	s.ecs.Enemies[id] = &component.Enemy{Type: def.Type}
	s.ecs.AddEnemy(id)
	s.ecs.Spawner.Occupied = true

	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyData{
		ID:       id,
		Type:     def.Type,
		Position: start,
	}})
	return id
}
