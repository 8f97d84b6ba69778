// internal/defs/rulesets.go
package defs

import (
	"fmt"
	"image/color"

	"go-tower-proto/pkg/geom"
)

// RulesetID names one of the two game variants.
type RulesetID string

const (
	// RulesetClassic: один тип врага и башни, бесплатная постройка,
	// враги появляются только случайно.
	RulesetClassic RulesetID = "classic"
	// RulesetStyled: три типа врагов и башен, экономика и волны.
	RulesetStyled RulesetID = "styled"
)

// RulesetDefinition описывает параметры варианта игры.
// Нулевой SpawnBaseInterval отключает спавн по таймеру,
// нулевой ExtraSpawnChance отключает случайный спавн.
type RulesetDefinition struct {
	ID   RulesetID
	Path []geom.Vec

	StartHealth int
	StartMoney  int
	LeakPenalty int
	KillBounty  int
	WaveBonus   int
	TowerCost   int

	SpawnBaseInterval int
	SpawnDecay        int
	SpawnFloor        int
	ExtraSpawnChance  int // Процентов на тик
	InitialEnemies    int

	// Enemies — состав, из которого спавнер выбирает тип равновероятно.
	Enemies []EnemyType
	// Towers — башни, доступные по клавишам 1..n. Пустой список означает,
	// что любая кнопка мыши ставит DefaultTower без выбора.
	Towers       []TowerType
	DefaultTower TowerType

	Background color.RGBA
	ShowPath   bool
}

// Rulesets is the table of all game variants.
var Rulesets = map[RulesetID]RulesetDefinition{
	RulesetClassic: {
		ID:               RulesetClassic,
		Path:             []geom.Vec{{X: 50, Y: 300}, {X: 200, Y: 300}, {X: 200, Y: 500}, {X: 600, Y: 500}, {X: 600, Y: 200}, {X: 750, Y: 200}},
		StartHealth:      100,
		LeakPenalty:      10,
		SpawnFloor:       10,
		ExtraSpawnChance: 2,
		InitialEnemies:   1,
		Enemies:          []EnemyType{EnemyDefault},
		DefaultTower:     TowerDefault,
		Background:       color.RGBA{255, 255, 255, 255},
	},
	RulesetStyled: {
		ID:                RulesetStyled,
		Path:              []geom.Vec{{X: 0, Y: 300}, {X: 200, Y: 300}, {X: 200, Y: 100}, {X: 600, Y: 100}, {X: 600, Y: 500}, {X: 800, Y: 500}},
		StartHealth:       100,
		StartMoney:        150,
		LeakPenalty:       10,
		KillBounty:        10,
		WaveBonus:         50,
		TowerCost:         50,
		SpawnBaseInterval: 120,
		SpawnDecay:        5,
		SpawnFloor:        10,
		Enemies:           []EnemyType{EnemyNormal, EnemyFast, EnemyTank},
		Towers:            []TowerType{TowerBasic, TowerSniper, TowerMachineGun},
		DefaultTower:      TowerBasic,
		Background:        color.RGBA{200, 200, 200, 255},
		ShowPath:          true,
	},
}

// LookupRuleset returns a copy of the ruleset with the given id.
func LookupRuleset(id string) (RulesetDefinition, error) {
	rs, ok := Rulesets[RulesetID(id)]
	if !ok {
		return RulesetDefinition{}, fmt.Errorf("unknown ruleset %q", id)
	}
	rs.Path = append([]geom.Vec(nil), rs.Path...)
	return rs, nil
}
