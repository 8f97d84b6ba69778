package system

import (
	"go-tower-proto/internal/entity"
	"go-tower-proto/internal/types"
	"go-tower-proto/pkg/geom"
)

// SelectTarget возвращает первого живого врага в порядке появления,
// который находится не дальше radius от from. Это не ближайший враг:
// при нескольких кандидатах побеждает тот, кто раньше в EnemyOrder.
// Враги с нулевым или отрицательным здоровьем пропускаются.
func SelectTarget(ecs *entity.ECS, from geom.Vec, radius float64) (types.EntityID, bool) {
	for _, id := range ecs.EnemyOrder {
		health, ok := ecs.Healths[id]
		if !ok || health.Value <= 0 {
			continue
		}
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		if geom.Distance(from, pos.Vec()) <= radius {
			return id, true
		}
	}
	return 0, false
}
