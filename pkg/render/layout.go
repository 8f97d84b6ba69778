package render

import "image/color"

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Inset shrinks r by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// VerticalGradient returns one color per row, fading from top to
// top darkened by drop.
func VerticalGradient(top color.RGBA, drop uint8, rows int) []color.RGBA {
	if rows <= 0 {
		return nil
	}
	bottom := Darken(top, drop)
	out := make([]color.RGBA, rows)
	for i := range out {
		out[i] = Mix(top, bottom, float64(i)/float64(rows))
	}
	return out
}

// RowButtons lays out n equal buttons in a row starting at (x, y).
func RowButtons(n int, x, y, w, h, spacing float64) []Rect {
	out := make([]Rect, n)
	for i := range out {
		out[i] = Rect{X: x + float64(i)*spacing, Y: y, W: w, H: h}
	}
	return out
}
