package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 60, H: 40}
	assert.True(t, r.Contains(10, 10))
	assert.True(t, r.Contains(70, 50))
	assert.True(t, r.Contains(40, 30))
	assert.False(t, r.Contains(9, 30))
	assert.False(t, r.Contains(40, 51))
}

func TestRectInset(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 40, H: 40}.Inset(5)
	assert.Equal(t, Rect{X: 5, Y: 5, W: 30, H: 30}, r)
}

func TestVerticalGradient(t *testing.T) {
	rows := VerticalGradient(color.RGBA{50, 50, 50, 255}, 100, 60)
	require.Len(t, rows, 60)
	assert.Equal(t, color.RGBA{50, 50, 50, 255}, rows[0])
	for i := 1; i < len(rows); i++ {
		assert.LessOrEqual(t, rows[i].R, rows[i-1].R)
	}
	assert.Equal(t, uint8(255), rows[59].A)
	assert.Nil(t, VerticalGradient(color.RGBA{}, 10, 0))
}

func TestRowButtons(t *testing.T) {
	buttons := RowButtons(3, 600, 10, 60, 40, 65)
	require.Len(t, buttons, 3)
	assert.Equal(t, Rect{X: 600, Y: 10, W: 60, H: 40}, buttons[0])
	assert.Equal(t, 730.0, buttons[2].X)
}
