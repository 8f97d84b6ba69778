// internal/system/damage.go
package system

import (
	"go-tower-proto/internal/entity"
	"go-tower-proto/internal/types"
)

// ApplyDamage вычитает damage из здоровья сущности. Здоровье может уйти
// в минус, снятие с поля делает экономика. Отрицательный урон не лечит.
// Возвращает false, если у сущности нет здоровья.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage int) bool {
	health, ok := ecs.Healths[entityID]
	if !ok {
		return false
	}
	if damage > 0 {
		health.Value -= damage
	}
	return true
}
