// internal/defs/towers.go
package defs

import "image/color"

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	Type     TowerType `json:"type"`
	Name     string    `json:"name"`
	Range    float64   `json:"range"`
	Damage   int       `json:"damage"`
	Cooldown int       `json:"cooldown"` // Тиков между выстрелами
	Visuals  Visuals   `json:"visuals"`
}

// TowerLibrary is the table of all tower definitions, keyed by type.
var TowerLibrary = map[TowerType]TowerDefinition{
	TowerDefault: {
		Type: TowerDefault, Name: "Tower", Range: 100, Damage: 10, Cooldown: 60,
		Visuals: Visuals{Color: color.RGBA{0, 255, 0, 255}, Radius: 20, Shape: ShapeCircle},
	},
	TowerBasic: {
		Type: TowerBasic, Name: "Basic", Range: 150, Damage: 10, Cooldown: 60,
		Visuals: Visuals{Color: color.RGBA{0, 0, 255, 255}, Radius: 20, Shape: ShapeSquare},
	},
	TowerSniper: {
		Type: TowerSniper, Name: "Sniper", Range: 250, Damage: 30, Cooldown: 120,
		Visuals: Visuals{Color: color.RGBA{128, 0, 128, 255}, Radius: 20, Shape: ShapeSquare},
	},
	TowerMachineGun: {
		Type: TowerMachineGun, Name: "Machine Gun", Range: 100, Damage: 5, Cooldown: 20,
		Visuals: Visuals{Color: color.RGBA{255, 165, 0, 255}, Radius: 20, Shape: ShapeSquare},
	},
}
