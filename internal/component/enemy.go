package component

import "go-tower-proto/internal/defs"

// Enemy представляет вражескую сущность.
type Enemy struct {
	Type defs.EnemyType
}
