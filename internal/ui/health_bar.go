// internal/ui/health_bar.go
package ui

import (
	"go-tower-proto/internal/config"
	"go-tower-proto/internal/utils"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HealthBar рисует полосу здоровья над врагом.
type HealthBar struct {
	Width, Height float32
	Offset        float32 // Зазор между врагом и полосой
	Back, Fill    color.RGBA
}

func NewHealthBar() *HealthBar {
	return &HealthBar{
		Width:  config.EnemyHealthBarWidth,
		Height: config.EnemyHealthBarHeight,
		Offset: config.EnemyHealthBarOffset,
		Back:   config.HealthBarBack,
		Fill:   config.HealthBarFill,
	}
}

// Draw рисует полосу над кругом радиуса radius с центром (cx, cy).
// ratio — доля оставшегося здоровья.
func (b *HealthBar) Draw(screen *ebiten.Image, cx, cy, radius float32, ratio float64) {
	x := cx - b.Width/2
	y := cy - radius - b.Offset
	vector.DrawFilledRect(screen, x, y, b.Width, b.Height, b.Back, false)

	fillWidth := float32(float64(b.Width) * utils.Clamp(ratio, 0, 1))
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, x, y, fillWidth, b.Height, b.Fill, false)
	}
}
