// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	TargetTPS    = 60 // Один тик симуляции на кадр
	HUDHeight    = 60

	MinSpawnInterval = 10 // Нижняя граница интервала спавна в тиках

	EnemyHealthBarWidth  = 40
	EnemyHealthBarHeight = 5
	EnemyHealthBarOffset = 10

	TowerHalfSize      = 20.0
	TowerPreviewRadius = 20.0
	TowerStrokeWidth   = 2.0
	AttackLineWidth    = 2.0
	AttackLineTicks    = 3 // Сколько тиков держится линия выстрела

	PathOuterWidth = 40.0
	PathInnerWidth = 30.0

	TowerButtonX       = 600
	TowerButtonY       = 10
	TowerButtonWidth   = 60
	TowerButtonHeight  = 40
	TowerButtonSpacing = 65

	TextCharWidth = 7
	TextOffsetY   = 13
)

var (
	BackgroundColor   = color.RGBA{200, 200, 200, 255}
	ClassicBackground = color.RGBA{255, 255, 255, 255}
	PathOuterColor    = color.RGBA{100, 100, 100, 255}
	PathInnerColor    = color.RGBA{150, 150, 150, 255}
	HUDColor          = color.RGBA{50, 50, 50, 255}
	TextLightColor    = color.RGBA{255, 255, 255, 255}
	TextDarkColor     = color.RGBA{0, 0, 0, 255}
	HealthBarBack     = color.RGBA{255, 0, 0, 255}
	HealthBarFill     = color.RGBA{0, 255, 0, 255}
	LineColor         = color.RGBA{255, 255, 0, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 128}
)
