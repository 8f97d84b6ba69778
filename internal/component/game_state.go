package component

// Phase — фаза игры
type Phase int

const (
	Running Phase = iota
	GameOver
)

func (p Phase) String() string {
	if p == GameOver {
		return "game_over"
	}
	return "running"
}

// Economy хранит здоровье игрока, деньги и номер волны.
// Здоровье может уйти в минус, это означает конец игры.
type Economy struct {
	Health int
	Money  int
	Wave   int
}

// Spawner — таймер появления врагов.
type Spawner struct {
	Timer    int
	Occupied bool // Были ли враги на поле в конце прошлого тика
}
