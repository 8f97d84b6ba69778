package system

import (
	"go-tower-proto/internal/entity"
	"go-tower-proto/internal/event"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update даёт каждой башне, в порядке постройки, не больше одного выстрела.
// Башня с ненулевой перезарядкой только уменьшает её на единицу.
// Башня без цели в радиусе ничего не делает.
func (s *CombatSystem) Update() {
	for _, id := range s.ecs.TowerOrder {
		combat, ok := s.ecs.Combats[id]
		if !ok {
			continue
		}
		if combat.Cooldown > 0 {
			combat.Cooldown--
			continue
		}

		towerPos := s.ecs.Positions[id]
		targetID, found := SelectTarget(s.ecs, towerPos.Vec(), combat.Range)
		if !found {
			continue
		}

		ApplyDamage(s.ecs, targetID, combat.Damage)
		combat.Cooldown = combat.CooldownMax

		s.eventDispatcher.Dispatch(event.Event{Type: event.TowerAttacked, Data: event.AttackData{
			TowerID:  id,
			TargetID: targetID,
			From:     towerPos.Vec(),
			To:       s.ecs.Positions[targetID].Vec(),
			Damage:   combat.Damage,
		}})
	}
}
