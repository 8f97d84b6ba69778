package system

import (
	"go-tower-proto/internal/component"
	"go-tower-proto/internal/defs"
	"go-tower-proto/internal/entity"
	"go-tower-proto/internal/event"
	"go-tower-proto/internal/types"
)

// EconomySystem — единственный, кто меняет здоровье игрока, деньги и номер волны.
type EconomySystem struct {
	ecs             *entity.ECS
	rules           *defs.RulesetDefinition
	eventDispatcher *event.Dispatcher
}

func NewEconomySystem(ecs *entity.ECS, rules *defs.RulesetDefinition, eventDispatcher *event.Dispatcher) *EconomySystem {
	return &EconomySystem{ecs: ecs, rules: rules, eventDispatcher: eventDispatcher}
}

// Settle убирает с поля дошедших до конца и убитых врагов.
// Дошедший до конца считается утечкой, даже если его здоровье уже <= 0.
// Удаления копятся во время обхода и применяются одним вызовом в конце.
func (s *EconomySystem) Settle() {
	var removed []types.EntityID
	for _, id := range s.ecs.EnemyOrder {
		path := s.ecs.Paths[id]
		health := s.ecs.Healths[id]

		switch {
		case path != nil && path.AtEnd():
			s.ecs.Economy.Health -= s.rules.LeakPenalty
			removed = append(removed, id)
			s.dispatchEnemy(event.EnemyLeaked, id)
		case health != nil && health.Value <= 0:
			s.ecs.Economy.Money += s.rules.KillBounty
			removed = append(removed, id)
			s.dispatchEnemy(event.EnemyKilled, id)
		}
	}
	s.ecs.RemoveEnemies(removed)

	if s.ecs.Economy.Health <= 0 && s.ecs.Phase == component.Running {
		s.ecs.Phase = component.GameOver
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.GameOverData{
			Tick: s.ecs.Tick,
			Wave: s.ecs.Economy.Wave,
		}})
	}
}

// TrySpend списывает cost, если денег хватает.
func (s *EconomySystem) TrySpend(cost int) bool {
	if s.ecs.Economy.Money < cost {
		return false
	}
	s.ecs.Economy.Money -= cost
	return true
}

// AdvanceWave увеличивает номер волны и начисляет бонус за волну.
func (s *EconomySystem) AdvanceWave() {
	s.ecs.Economy.Wave++
	s.ecs.Economy.Money += s.rules.WaveBonus
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveAdvanced, Data: event.WaveData{
		Wave:  s.ecs.Economy.Wave,
		Bonus: s.rules.WaveBonus,
	}})
}

func (s *EconomySystem) dispatchEnemy(t event.EventType, id types.EntityID) {
	data := event.EnemyData{ID: id}
	if enemy, ok := s.ecs.Enemies[id]; ok {
		data.Type = enemy.Type
	}
	if pos, ok := s.ecs.Positions[id]; ok {
		data.Position = pos.Vec()
	}
	s.eventDispatcher.Dispatch(event.Event{Type: t, Data: data})
}
