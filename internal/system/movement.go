// internal/system/movement.go
package system

import (
	"go-tower-proto/internal/component"
	"go-tower-proto/internal/entity"
)

// MovementSystem двигает врагов вдоль пути, по одному шагу за тик.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update() {
	for _, id := range s.ecs.EnemyOrder {
		pos, hasPos := s.ecs.Positions[id]
		path, hasPath := s.ecs.Paths[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasPath || !hasVel {
			continue
		}
		Step(pos, path, vel.Speed)
	}
}

// Step продвигает pos на speed к следующей точке пути. Если до точки не
// больше одного шага, позиция не меняется, а индекс сегмента растёт на
// единицу: враг не «прилипает» к точке и не переносит остаток шага.
// На последней точке ничего не происходит, конец пути проверяет экономика.
func Step(pos *component.Position, path *component.Path, speed float64) {
	if path.AtEnd() {
		return
	}

	target := path.Waypoints[path.CurrentIndex+1]
	delta := target.Sub(pos.Vec())
	dist := delta.Len()

	if dist > speed {
		pos.X += (delta.X / dist) * speed
		pos.Y += (delta.Y / dist) * speed
	} else {
		path.CurrentIndex++
	}
}
