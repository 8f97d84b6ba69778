// internal/tui/renderer.go
package tui

import (
	"fmt"
	"image/color"
	"strings"

	"go-tower-proto/internal/app"
	"go-tower-proto/internal/config"
	"go-tower-proto/internal/defs"
	"go-tower-proto/internal/utils"
	"go-tower-proto/pkg/geom"

	"github.com/gdamore/tcell/v2"
)

const (
	pathRune  = '░'
	lineRune  = '·'
	enemyRune = '●'
	hurtRune  = '○' // Враг с половиной здоровья и меньше
)

// Renderer рисует снимок игры в терминале.
type Renderer struct {
	screen tcell.Screen
	rules  *defs.RulesetDefinition
}

func NewRenderer(screen tcell.Screen, rules *defs.RulesetDefinition) *Renderer {
	return &Renderer{screen: screen, rules: rules}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw рисует кадр. Непустой banner выводится по центру поверх поля.
func (r *Renderer) Draw(snap app.Snapshot, banner string) {
	cols, rows := r.screen.Size()
	vp := Viewport{Cols: cols, Rows: rows}
	bg := tcell.StyleDefault.Background(rgb(r.rules.Background))

	r.screen.Clear()
	r.screen.Fill(' ', bg)

	if r.rules.ShowPath {
		pathStyle := bg.Foreground(rgb(config.PathOuterColor))
		for _, p := range samplePath(snap.Path, config.ScreenWidth/float64(max(cols, 1))) {
			col, row := vp.ToCell(p.X, p.Y)
			r.screen.SetContent(col, row, pathRune, nil, pathStyle)
		}
	}

	lineStyle := bg.Foreground(rgb(config.LineColor))
	for _, l := range snap.Lines {
		c0, r0 := vp.ToCell(l.From.X, l.From.Y)
		c1, r1 := vp.ToCell(l.To.X, l.To.Y)
		for _, cell := range cellLine(c0, r0, c1, r1) {
			r.screen.SetContent(cell[0], cell[1], lineRune, nil, lineStyle)
		}
	}

	for _, t := range snap.Towers {
		col, row := vp.ToCell(t.Position.X, t.Position.Y)
		ch := '■'
		if t.Visual.Shape == defs.ShapeCircle {
			ch = '◉'
		}
		r.screen.SetContent(col, row, ch, nil, bg.Foreground(rgb(t.Visual.Color)))
	}

	for _, e := range snap.Enemies {
		col, row := vp.ToCell(e.Position.X, e.Position.Y)
		ch := enemyRune
		if e.HealthRatio() <= 0.5 {
			ch = hurtRune
		}
		r.screen.SetContent(col, row, ch, nil, bg.Foreground(rgb(e.Visual.Color)))
	}

	r.drawStatus(snap, cols)
	if banner != "" {
		r.drawText((cols-len(banner))/2, rows/2, banner, tcell.StyleDefault.Reverse(true))
	}
	r.screen.Show()
}

// StatusLine возвращает текст верхней строки.
func StatusLine(snap app.Snapshot, rules *defs.RulesetDefinition) string {
	if len(rules.Towers) == 0 {
		return fmt.Sprintf("Base Health: %d  Wave: %d", snap.Economy.Health, snap.Economy.Wave)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Health: %d  Money: $%d  Wave: %d ", snap.Economy.Health, snap.Economy.Money, snap.Economy.Wave)
	for i, t := range rules.Towers {
		name := defs.TowerLibrary[t].Name
		if snap.HasSelection && snap.Selected == t {
			fmt.Fprintf(&b, " [%d:%s]", i+1, name)
		} else {
			fmt.Fprintf(&b, "  %d:%s ", i+1, name)
		}
	}
	return b.String()
}

func (r *Renderer) drawStatus(snap app.Snapshot, cols int) {
	style := tcell.StyleDefault.
		Background(rgb(config.HUDColor)).
		Foreground(rgb(config.TextLightColor))
	for x := 0; x < cols; x++ {
		r.screen.SetContent(x, 0, ' ', nil, style)
	}
	r.drawText(0, 0, StatusLine(snap, r.rules), style)
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// samplePath возвращает точки вдоль пути с шагом не больше step.
func samplePath(path []geom.Vec, step float64) []geom.Vec {
	if step <= 0 {
		step = 1
	}
	var out []geom.Vec
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		n := int(geom.Distance(a, b)/step) + 1
		for k := 0; k <= n; k++ {
			t := float64(k) / float64(n)
			out = append(out, geom.Vec{X: utils.Lerp(a.X, b.X, t), Y: utils.Lerp(a.Y, b.Y, t)})
		}
	}
	return out
}

// cellLine — клетки отрезка по алгоритму Брезенхэма, концы включены.
func cellLine(x0, y0, x1, y1 int) [][2]int {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	var out [][2]int
	for {
		out = append(out, [2]int{x0, y0})
		if x0 == x1 && y0 == y1 {
			return out
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
