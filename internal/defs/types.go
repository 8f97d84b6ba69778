// internal/defs/types.go
package defs

import (
	"fmt"
	"image/color"
)

// EnemyType identifies a row in EnemyLibrary.
type EnemyType int

const (
	EnemyDefault EnemyType = iota
	EnemyNormal
	EnemyFast
	EnemyTank
)

var enemyTypeNames = map[EnemyType]string{
	EnemyDefault: "default",
	EnemyNormal:  "normal",
	EnemyFast:    "fast",
	EnemyTank:    "tank",
}

func (t EnemyType) String() string {
	if name, ok := enemyTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("EnemyType(%d)", int(t))
}

// UnmarshalText allows enemy types to be written by name in definition files.
func (t *EnemyType) UnmarshalText(text []byte) error {
	for k, name := range enemyTypeNames {
		if name == string(text) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("unknown enemy type %q", text)
}

// TowerType identifies a row in TowerLibrary.
type TowerType int

const (
	TowerDefault TowerType = iota
	TowerBasic
	TowerSniper
	TowerMachineGun
)

var towerTypeNames = map[TowerType]string{
	TowerDefault:    "default",
	TowerBasic:      "basic",
	TowerSniper:     "sniper",
	TowerMachineGun: "machine_gun",
}

func (t TowerType) String() string {
	if name, ok := towerTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TowerType(%d)", int(t))
}

// UnmarshalText allows tower types to be written by name in definition files.
func (t *TowerType) UnmarshalText(text []byte) error {
	for k, name := range towerTypeNames {
		if name == string(text) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("unknown tower type %q", text)
}

// Shape defines how an entity is drawn.
type Shape string

const (
	ShapeCircle Shape = "circle"
	ShapeSquare Shape = "square"
)

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color  color.RGBA `json:"color"`
	Radius float64    `json:"radius"`
	Shape  Shape      `json:"shape"`
}
