// internal/utils/prng.go
package utils

import (
	"go-tower-proto/internal/defs"
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed возвращает фактически использованный сид.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Chance возвращает true с вероятностью percent/100.
func (s *PRNGService) Chance(percent int) bool {
	if percent <= 0 {
		return false
	}
	return s.rng.Intn(100) < percent
}

// ChooseEnemy выбирает тип врага из состава равновероятно.
func (s *PRNGService) ChooseEnemy(roster []defs.EnemyType) defs.EnemyType {
	if len(roster) == 0 {
		return defs.EnemyDefault
	}
	if len(roster) == 1 {
		return roster[0]
	}
	return roster[s.rng.Intn(len(roster))]
}
