package component

import (
	"testing"

	"go-tower-proto/pkg/geom"

	"github.com/stretchr/testify/assert"
)

func TestHealthRatio(t *testing.T) {
	tests := []struct {
		name string
		h    Health
		want float64
	}{
		{"full", Health{Value: 100, Max: 100}, 1},
		{"half", Health{Value: 25, Max: 50}, 0.5},
		{"dead", Health{Value: -5, Max: 100}, 0},
		{"no max", Health{Value: 10}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.h.Ratio(), 1e-9)
		})
	}
}

func TestPathAtEnd(t *testing.T) {
	p := &Path{Waypoints: []geom.Vec{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}}}
	assert.False(t, p.AtEnd())
	p.CurrentIndex = 1
	assert.False(t, p.AtEnd())
	p.CurrentIndex = 2
	assert.True(t, p.AtEnd())
}
