// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadTowerDefinitions reads a JSON list of tower definitions and overrides
// the matching entries of TowerLibrary. Types absent from the file keep
// their built-in values. Записи без visuals или name сохраняют прежние.
func LoadTowerDefinitions(path string) (int, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := json.Unmarshal(file, &towerDefs); err != nil {
		return 0, fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	for _, def := range towerDefs {
		if def.Cooldown < 0 || def.Range < 0 || def.Damage < 0 {
			return 0, fmt.Errorf("tower %s: negative range, damage or cooldown", def.Type)
		}
	}
	for _, def := range towerDefs {
		old := TowerLibrary[def.Type]
		if def.Visuals == (Visuals{}) {
			def.Visuals = old.Visuals
		}
		if def.Name == "" {
			def.Name = old.Name
		}
		TowerLibrary[def.Type] = def
	}
	return len(towerDefs), nil
}

// LoadEnemyDefinitions reads a JSON list of enemy definitions and overrides
// the matching entries of EnemyLibrary.
func LoadEnemyDefinitions(path string) (int, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return 0, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	for _, def := range enemyDefs {
		if def.Health <= 0 || def.Speed <= 0 {
			return 0, fmt.Errorf("enemy %s: health and speed must be positive", def.Type)
		}
	}
	for _, def := range enemyDefs {
		old := EnemyLibrary[def.Type]
		if def.Visuals == (Visuals{}) {
			def.Visuals = old.Visuals
		}
		if def.Name == "" {
			def.Name = old.Name
		}
		EnemyLibrary[def.Type] = def
	}
	return len(enemyDefs), nil
}
