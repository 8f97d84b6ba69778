// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	Type    EnemyType `json:"type"`
	Name    string    `json:"name"`
	Health  int       `json:"health"`
	Speed   float64   `json:"speed"` // Пикселей за тик
	Visuals Visuals   `json:"visuals"`
}

// EnemyLibrary is the table of all enemy definitions, keyed by type.
var EnemyLibrary = map[EnemyType]EnemyDefinition{
	EnemyDefault: {
		Type: EnemyDefault, Name: "Enemy", Health: 100, Speed: 2,
		Visuals: Visuals{Color: color.RGBA{255, 0, 0, 255}, Radius: 10, Shape: ShapeCircle},
	},
	EnemyNormal: {
		Type: EnemyNormal, Name: "Normal", Health: 100, Speed: 1,
		Visuals: Visuals{Color: color.RGBA{255, 0, 0, 255}, Radius: 20, Shape: ShapeCircle},
	},
	EnemyFast: {
		Type: EnemyFast, Name: "Fast", Health: 50, Speed: 2,
		Visuals: Visuals{Color: color.RGBA{255, 255, 0, 255}, Radius: 15, Shape: ShapeCircle},
	},
	EnemyTank: {
		Type: EnemyTank, Name: "Tank", Health: 200, Speed: 0.5,
		Visuals: Visuals{Color: color.RGBA{0, 255, 0, 255}, Radius: 25, Shape: ShapeCircle},
	},
}
