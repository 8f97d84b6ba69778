// internal/state/pause_state.go
package state

import (
	"go-tower-proto/internal/config"
	"go-tower-proto/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию: тики не идут, кадр рисуется поверх
// последнего снимка.
type PauseState struct {
	sm       *StateMachine
	previous *GameState
}

func NewPauseState(sm *StateMachine, previous *GameState) *PauseState {
	return &PauseState{sm: sm, previous: previous}
}

func (s *PauseState) Enter() {
	s.previous.game.Logger.Info().Msg("paused")
}

func (s *PauseState) Update() error {
	for _, e := range s.previous.source.PollEvents() {
		switch {
		case e.Kind == input.Quit:
			return ebiten.Termination
		case e.Kind == input.KeyDown && e.Key == 'p':
			s.sm.SetState(s.previous)
			return nil
		}
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	ebitenutil.DebugPrintAt(screen, "PAUSED - press P", config.ScreenWidth/2-48, config.ScreenHeight/2)
}

func (s *PauseState) Exit() {}
