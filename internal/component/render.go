// component/render.go
package component

import (
	"go-tower-proto/internal/defs"
	"image/color"
)

// Renderable — компонент для отрисовки
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	Shape     defs.Shape
	HasStroke bool
}
