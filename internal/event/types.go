// internal/event/types.go
package event

import (
	"go-tower-proto/internal/defs"
	"go-tower-proto/internal/types"
	"go-tower-proto/pkg/geom"
)

const (
	EnemySpawned  EventType = "EnemySpawned"  // Враг появился в начале пути
	EnemyKilled   EventType = "EnemyKilled"   // Враг уничтожен башнями
	EnemyLeaked   EventType = "EnemyLeaked"   // Враг дошёл до конца пути
	TowerPlaced   EventType = "TowerPlaced"   // Башня построена
	TowerAttacked EventType = "TowerAttacked" // Башня выстрелила
	WaveAdvanced  EventType = "WaveAdvanced"  // Поле очистилось, волна сменилась
	GameOver      EventType = "GameOver"      // Здоровье игрока кончилось
)

// EnemyData — данные событий EnemySpawned, EnemyKilled и EnemyLeaked.
type EnemyData struct {
	ID       types.EntityID
	Type     defs.EnemyType
	Position geom.Vec
}

// TowerData — данные события TowerPlaced.
type TowerData struct {
	ID       types.EntityID
	Type     defs.TowerType
	Position geom.Vec
	Cost     int
}

// AttackData — данные события TowerAttacked.
type AttackData struct {
	TowerID  types.EntityID
	TargetID types.EntityID
	From, To geom.Vec
	Damage   int
}

// WaveData — данные события WaveAdvanced.
type WaveData struct {
	Wave  int
	Bonus int
}

// GameOverData — данные события GameOver.
type GameOverData struct {
	Tick uint64
	Wave int
}
