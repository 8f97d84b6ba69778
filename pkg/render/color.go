// pkg/render/color.go
package render

import (
	"image/color"
	"math"
)

// Lighten adds delta to every channel, saturating at 255.
func Lighten(c color.RGBA, delta uint8) color.RGBA {
	return color.RGBA{
		R: addSat(c.R, delta),
		G: addSat(c.G, delta),
		B: addSat(c.B, delta),
		A: c.A,
	}
}

// Darken subtracts delta from every channel, saturating at 0.
func Darken(c color.RGBA, delta uint8) color.RGBA {
	return color.RGBA{
		R: subSat(c.R, delta),
		G: subSat(c.G, delta),
		B: subSat(c.B, delta),
		A: c.A,
	}
}

// Mix linearly interpolates between a and b, t in [0, 1].
func Mix(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x)*(1-t) + float64(y)*t))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func addSat(v, d uint8) uint8 {
	if int(v)+int(d) > 255 {
		return 255
	}
	return v + d
}

func subSat(v, d uint8) uint8 {
	if d > v {
		return 0
	}
	return v - d
}
