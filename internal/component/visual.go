// internal/component/visual.go
package component

import "go-tower-proto/pkg/geom"

// AttackLine — след выстрела башни по цели. Только для отрисовки.
type AttackLine struct {
	From, To geom.Vec
	Timer    int // Сколько тиков линия ещё видна
}
