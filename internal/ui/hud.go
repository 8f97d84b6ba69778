// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"go-tower-proto/internal/app"
	"go-tower-proto/internal/config"
	"go-tower-proto/internal/defs"
	"go-tower-proto/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// HUD — верхняя панель: здоровье, деньги, волна и кнопки башен.
type HUD struct {
	face     font.Face
	gradient []color.RGBA
}

func NewHUD(face font.Face) *HUD {
	return &HUD{
		face:     face,
		gradient: render.VerticalGradient(config.HUDColor, 100, config.HUDHeight),
	}
}

// Buttons возвращает прямоугольники кнопок башен в порядке клавиш 1..n.
func (h *HUD) Buttons(towers []defs.TowerType) []render.Rect {
	return render.RowButtons(len(towers),
		config.TowerButtonX, config.TowerButtonY,
		config.TowerButtonWidth, config.TowerButtonHeight,
		config.TowerButtonSpacing)
}

// ButtonAt возвращает индекс кнопки башни под точкой (x, y).
func (h *HUD) ButtonAt(towers []defs.TowerType, x, y float64) (int, bool) {
	for i, r := range h.Buttons(towers) {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

func (h *HUD) Draw(screen *ebiten.Image, snap app.Snapshot, rules *defs.RulesetDefinition) {
	// Без списка башен экономики нет: показываем только здоровье базы.
	if len(rules.Towers) == 0 {
		h.drawText(screen, fmt.Sprintf("Base Health: %d", snap.Economy.Health), 10, 10, config.TextDarkColor)
		return
	}

	for row, c := range h.gradient {
		vector.DrawFilledRect(screen, 0, float32(row), config.ScreenWidth, 1, c, false)
	}

	h.drawText(screen, fmt.Sprintf("Health: %d", snap.Economy.Health), 10, 10, config.TextLightColor)
	h.drawText(screen, fmt.Sprintf("Money: $%d", snap.Economy.Money), 200, 10, config.TextLightColor)
	h.drawText(screen, fmt.Sprintf("Wave: %d", snap.Economy.Wave), 400, 10, config.TextLightColor)

	for i, r := range h.Buttons(rules.Towers) {
		towerType := rules.Towers[i]
		def := defs.TowerLibrary[towerType]
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), def.Visuals.Color, false)
		if snap.HasSelection && snap.Selected == towerType {
			vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), config.TowerStrokeWidth, config.TextLightColor, false)
		}
		label := fmt.Sprintf("%d", i+1)
		h.drawText(screen, label, int(r.X+r.W/2)-config.TextCharWidth/2, int(r.Y)+10, config.TextLightColor)
	}
}

// drawText рисует строку так, что (x, y) — её левый верхний угол.
func (h *HUD) drawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(screen, s, h.face, x, y+config.TextOffsetY, clr)
}
