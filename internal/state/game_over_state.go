// internal/state/game_over_state.go
package state

import (
	"fmt"

	"go-tower-proto/internal/config"
	"go-tower-proto/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*GameOverState)(nil)

// GameOverState показывает итог. R начинает игру заново.
type GameOverState struct {
	sm       *StateMachine
	previous *GameState
}

func NewGameOverState(sm *StateMachine, previous *GameState) *GameOverState {
	return &GameOverState{sm: sm, previous: previous}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update() error {
	for _, e := range s.previous.source.PollEvents() {
		switch {
		case e.Kind == input.Quit:
			return ebiten.Termination
		case e.Kind == input.KeyDown && e.Key == 'r':
			s.previous.game.Reset()
			s.sm.SetState(s.previous)
			return nil
		}
	}
	return nil
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	eco := s.previous.game.ECS.Economy
	msg := fmt.Sprintf("GAME OVER - wave %d\npress R to restart", eco.Wave)
	ebitenutil.DebugPrintAt(screen, msg, config.ScreenWidth/2-60, config.ScreenHeight/2)
}

func (s *GameOverState) Exit() {}
