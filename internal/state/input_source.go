// internal/state/input_source.go
package state

import (
	"go-tower-proto/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyRunes — клавиши, которые игра понимает, и их символы.
var keyRunes = map[ebiten.Key]rune{
	ebiten.Key1: '1',
	ebiten.Key2: '2',
	ebiten.Key3: '3',
	ebiten.Key4: '4',
	ebiten.Key5: '5',
	ebiten.Key6: '6',
	ebiten.Key7: '7',
	ebiten.Key8: '8',
	ebiten.Key9: '9',
	ebiten.KeyP: 'p',
	ebiten.KeyR: 'r',
}

var mouseButtons = map[ebiten.MouseButton]input.Button{
	ebiten.MouseButtonLeft:   input.ButtonLeft,
	ebiten.MouseButtonMiddle: input.ButtonMiddle,
	ebiten.MouseButtonRight:  input.ButtonRight,
}

// EbitenSource переводит ввод ebiten за текущий тик в input.Event.
type EbitenSource struct {
	keys []ebiten.Key
}

func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

func (s *EbitenSource) PollEvents() []input.Event {
	var events []input.Event

	if ebiten.IsWindowBeingClosed() {
		events = append(events, input.Event{Kind: input.Quit})
	}

	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		if k == ebiten.KeyEscape || k == ebiten.KeyQ {
			events = append(events, input.Event{Kind: input.Quit})
			continue
		}
		if r, ok := keyRunes[k]; ok {
			events = append(events, input.Key(r))
		}
	}

	x, y := s.PointerPosition()
	for _, b := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonMiddle, ebiten.MouseButtonRight} {
		if inpututil.IsMouseButtonJustPressed(b) {
			events = append(events, input.Event{Kind: input.PointerDown, X: x, Y: y, Button: mouseButtons[b]})
		}
	}
	return events
}

func (s *EbitenSource) PointerPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}
