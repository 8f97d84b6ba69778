// component/movement.go
package component

import "go-tower-proto/pkg/geom"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Vec returns the position as a geometry vector.
func (p Position) Vec() geom.Vec { return geom.Vec{X: p.X, Y: p.Y} }

// Velocity — компонент скорости (пикселей за тик)
type Velocity struct {
	Speed float64
}

// Path — компонент пути. Waypoints общий для всех врагов и не изменяется.
type Path struct {
	Waypoints    []geom.Vec
	CurrentIndex int
}

// AtEnd сообщает, достиг ли враг последней точки пути.
func (p *Path) AtEnd() bool {
	return p.CurrentIndex >= len(p.Waypoints)-1
}
