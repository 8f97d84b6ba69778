// internal/app/game.go
package app

import (
	"errors"
	"fmt"

	"go-tower-proto/internal/component"
	"go-tower-proto/internal/defs"
	"go-tower-proto/internal/entity"
	"go-tower-proto/internal/event"
	"go-tower-proto/internal/input"
	"go-tower-proto/internal/logging"
	"go-tower-proto/internal/system"
	"go-tower-proto/internal/utils"

	"github.com/rs/zerolog"
)

// ErrPathTooShort is returned by NewGame for a path with fewer than two waypoints.
var ErrPathTooShort = errors.New("path needs at least two waypoints")

// Game holds the simulation state and the systems that advance it.
// Game не знает ни про окно, ни про терминал: вход приходит через Tick,
// выход читается через Snapshot.
type Game struct {
	Rules              defs.RulesetDefinition
	ECS                *entity.ECS
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	EconomySystem      *system.EconomySystem
	WaveSystem         *system.WaveSystem
	VisualEffectSystem *system.VisualEffectSystem
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	Logger             zerolog.Logger

	seed         int64
	selected     defs.TowerType
	hasSelection bool
	quit         bool
}

// NewGame initializes a new game instance for the given rule set.
// A zero seed picks one from the clock; Reset reuses whatever was picked.
func NewGame(rules defs.RulesetDefinition, seed int64, logger zerolog.Logger) (*Game, error) {
	if len(rules.Path) < 2 {
		return nil, fmt.Errorf("ruleset %s: %w", rules.ID, ErrPathTooShort)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)
	g := &Game{
		Rules:           rules,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		seed:            rng.Seed(),
	}
	g.Logger = logging.WithTick(logger, func() uint64 { return g.ECS.Tick })

	g.MovementSystem = system.NewMovementSystem(ecs)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher)
	g.EconomySystem = system.NewEconomySystem(ecs, &g.Rules, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, &g.Rules, rng, g.EconomySystem, eventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs, eventDispatcher)
	logging.NewEventLogger(g.Logger).Subscribe(eventDispatcher)

	g.start()
	g.Logger.Info().
		Str("ruleset", string(rules.ID)).
		Int64("seed", g.seed).
		Msg("game started")
	return g, nil
}

// start заполняет пустой ECS начальным состоянием.
func (g *Game) start() {
	g.ECS.Economy.Health = g.Rules.StartHealth
	g.ECS.Economy.Money = g.Rules.StartMoney
	for i := 0; i < g.Rules.InitialEnemies; i++ {
		g.WaveSystem.Spawn(g.Rng.ChooseEnemy(g.Rules.Enemies))
	}
}

// Reset начинает игру заново с тем же сидом. Системы держат указатель
// на ECS, поэтому состояние заменяется на месте.
func (g *Game) Reset() {
	*g.ECS = *entity.NewECS()
	*g.Rng = *utils.NewPRNGService(g.seed)
	g.hasSelection = false
	g.quit = false
	g.start()
	g.Logger.Info().Msg("game reset")
}

// Seed возвращает сид, с которым идёт игра.
func (g *Game) Seed() int64 {
	return g.seed
}

// Tick продвигает симуляцию ровно на один шаг. Порядок внутри тика:
// ввод, спавн, движение, расчёт утечек и убийств, атаки башен,
// проверка смены волны, визуальные эффекты.
// Возвращает false, если запрошен выход или игра окончена.
func (g *Game) Tick(events []input.Event) bool {
	if g.quit || g.IsOver() {
		return false
	}
	g.HandleInput(events)
	if g.quit {
		return false
	}

	g.ECS.Tick++
	g.WaveSystem.Update()
	g.MovementSystem.Update()
	g.EconomySystem.Settle()
	if g.IsOver() {
		return false
	}
	g.CombatSystem.Update()
	g.WaveSystem.CheckWaveAdvance()
	g.VisualEffectSystem.Update()
	return true
}

// HandleInput применяет события ввода: выход, выбор башни, постройку.
func (g *Game) HandleInput(events []input.Event) {
	for _, e := range events {
		switch e.Kind {
		case input.Quit:
			g.quit = true
			g.Logger.Info().Msg("quit requested")
			return
		case input.KeyDown:
			if e.Key >= '1' && e.Key <= '9' {
				g.Select(int(e.Key - '1'))
			}
		case input.PointerDown:
			g.handlePointer(e)
		}
	}
}

// IsOver сообщает, что здоровье игрока кончилось.
func (g *Game) IsOver() bool {
	return g.ECS.Phase == component.GameOver
}

// Quit сообщает, что был запрошен выход.
func (g *Game) Quit() bool {
	return g.quit
}
