// internal/state/game_state.go
package state

import (
	"go-tower-proto/internal/app"
	"go-tower-proto/internal/input"
	"go-tower-proto/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameState — состояние игры: опрашивает ввод, двигает симуляцию на один
// тик и рисует снимок.
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	source   input.Source
	renderer *ui.RenderSystem
}

func NewGameState(sm *StateMachine, game *app.Game, source input.Source, renderer *ui.RenderSystem) *GameState {
	return &GameState{
		sm:       sm,
		game:     game,
		source:   source,
		renderer: renderer,
	}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update() error {
	events := g.source.PollEvents()
	for _, e := range events {
		if e.Kind == input.KeyDown && e.Key == 'p' {
			g.sm.SetState(NewPauseState(g.sm, g))
			return nil
		}
	}

	if !g.game.Tick(g.translateClicks(events)) {
		if g.game.Quit() {
			return ebiten.Termination
		}
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
	return nil
}

// translateClicks заменяет левый клик по кнопке башни на нажатие её клавиши.
func (g *GameState) translateClicks(events []input.Event) []input.Event {
	towers := g.game.Rules.Towers
	for i, e := range events {
		if e.Kind != input.PointerDown || e.Button != input.ButtonLeft {
			continue
		}
		if idx, ok := g.renderer.HUD().ButtonAt(towers, e.X, e.Y); ok {
			events[i] = input.Key(rune('1' + idx))
		}
	}
	return events
}

func (g *GameState) Draw(screen *ebiten.Image) {
	x, y := g.source.PointerPosition()
	g.renderer.Draw(screen, g.game.Snapshot(), x, y)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
