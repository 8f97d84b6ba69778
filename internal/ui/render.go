// internal/ui/render.go
package ui

import (
	"image/color"

	"go-tower-proto/internal/app"
	"go-tower-proto/internal/config"
	"go-tower-proto/internal/defs"
	"go-tower-proto/pkg/geom"
	"go-tower-proto/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// RenderSystem рисует кадр по снимку игры. Состояние игры не меняет.
type RenderSystem struct {
	rules     *defs.RulesetDefinition
	hud       *HUD
	healthBar *HealthBar
}

func NewRenderSystem(rules *defs.RulesetDefinition, face font.Face) *RenderSystem {
	return &RenderSystem{
		rules:     rules,
		hud:       NewHUD(face),
		healthBar: NewHealthBar(),
	}
}

// HUD возвращает верхнюю панель, нужна для попадания кликов по кнопкам.
func (r *RenderSystem) HUD() *HUD {
	return r.hud
}

// Draw рисует поле, врагов, башни, линии выстрелов, панель и превью
// башни под указателем.
func (r *RenderSystem) Draw(screen *ebiten.Image, snap app.Snapshot, pointerX, pointerY float64) {
	screen.Fill(r.rules.Background)

	if r.rules.ShowPath {
		r.drawPath(screen, snap.Path)
	}
	for _, t := range snap.Towers {
		r.drawTower(screen, t)
	}
	for _, e := range snap.Enemies {
		r.drawEnemy(screen, e)
	}
	for _, l := range snap.Lines {
		vector.StrokeLine(screen,
			float32(l.From.X), float32(l.From.Y), float32(l.To.X), float32(l.To.Y),
			config.AttackLineWidth, config.LineColor, true)
	}

	r.hud.Draw(screen, snap, r.rules)

	if snap.HasSelection {
		def := defs.TowerLibrary[snap.Selected]
		vector.StrokeCircle(screen, float32(pointerX), float32(pointerY),
			config.TowerPreviewRadius, config.TowerStrokeWidth, def.Visuals.Color, true)
	}
}

// drawPath рисует путь двумя полилиниями: широкой тёмной и узкой светлой.
// Круги в вершинах закрывают разрывы на поворотах.
func (r *RenderSystem) drawPath(screen *ebiten.Image, path []geom.Vec) {
	drawPolyline(screen, path, config.PathOuterWidth, config.PathOuterColor)
	drawPolyline(screen, path, config.PathInnerWidth, config.PathInnerColor)
}

func drawPolyline(screen *ebiten.Image, path []geom.Vec, width float32, clr color.RGBA) {
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
	}
	for i := 1; i+1 < len(path); i++ {
		vector.DrawFilledCircle(screen, float32(path[i].X), float32(path[i].Y), width/2, clr, true)
	}
}

func (r *RenderSystem) drawEnemy(screen *ebiten.Image, e app.EnemyView) {
	x, y := float32(e.Position.X), float32(e.Position.Y)
	radius := e.Visual.Radius
	vector.DrawFilledCircle(screen, x, y, radius, e.Visual.Color, true)
	if r.rules.ShowPath {
		vector.DrawFilledCircle(screen, x, y, radius/2, render.Lighten(e.Visual.Color, 50), true)
		r.healthBar.Draw(screen, x, y, radius, e.HealthRatio())
	}
}

func (r *RenderSystem) drawTower(screen *ebiten.Image, t app.TowerView) {
	x, y := float32(t.Position.X), float32(t.Position.Y)
	if t.Visual.Shape == defs.ShapeCircle {
		vector.DrawFilledCircle(screen, x, y, t.Visual.Radius, t.Visual.Color, true)
		return
	}

	// Квадрат в квадрате: цвет, белая рамка, снова цвет.
	outer := render.Rect{X: t.Position.X - config.TowerHalfSize, Y: t.Position.Y - config.TowerHalfSize, W: 2 * config.TowerHalfSize, H: 2 * config.TowerHalfSize}
	for i, clr := range []color.RGBA{t.Visual.Color, config.TextLightColor, t.Visual.Color} {
		rect := outer.Inset(float64(i) * 5)
		vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), clr, false)
	}
}
