// component/tower.go
package component

import "go-tower-proto/internal/defs"

type Tower struct {
	Type defs.TowerType
}
