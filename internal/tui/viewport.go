// internal/tui/viewport.go
package tui

import "go-tower-proto/internal/config"

// Viewport переводит координаты поля 800x600 в клетки терминала и обратно.
// Верхняя строка терминала занята строкой состояния.
type Viewport struct {
	Cols, Rows int
}

func (v Viewport) fieldRows() int {
	if v.Rows <= 1 {
		return 1
	}
	return v.Rows - 1
}

// ToCell возвращает клетку терминала, в которую попадает точка поля.
func (v Viewport) ToCell(x, y float64) (col, row int) {
	if v.Cols <= 0 {
		return 0, 1
	}
	col = int(x * float64(v.Cols) / config.ScreenWidth)
	row = int(y*float64(v.fieldRows())/config.ScreenHeight) + 1
	return clamp(col, 0, v.Cols-1), clamp(row, 1, v.Rows-1)
}

// ToWorld возвращает центр клетки в координатах поля.
func (v Viewport) ToWorld(col, row int) (x, y float64) {
	if v.Cols <= 0 {
		return 0, 0
	}
	x = (float64(col) + 0.5) * config.ScreenWidth / float64(v.Cols)
	y = (float64(row-1) + 0.5) * config.ScreenHeight / float64(v.fieldRows())
	return x, y
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
