// internal/system/visual_effect.go
package system

import (
	"go-tower-proto/internal/component"
	"go-tower-proto/internal/config"
	"go-tower-proto/internal/entity"
	"go-tower-proto/internal/event"
)

// VisualEffectSystem управляет линиями выстрелов. На состояние боя не влияет.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает систему и подписывает её на выстрелы башен.
func NewVisualEffectSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{ecs: ecs}
	eventDispatcher.Subscribe(s, event.TowerAttacked)
	return s
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	attack, ok := e.Data.(event.AttackData)
	if !ok {
		return
	}
	id := s.ecs.NewEntity()
	s.ecs.AttackLines[id] = &component.AttackLine{
		From:  attack.From,
		To:    attack.To,
		Timer: config.AttackLineTicks,
	}
}

// Update отсчитывает время жизни линий и удаляет истёкшие.
func (s *VisualEffectSystem) Update() {
	for id, line := range s.ecs.AttackLines {
		line.Timer--
		if line.Timer <= 0 {
			delete(s.ecs.AttackLines, id)
		}
	}
}
