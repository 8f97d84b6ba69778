// internal/tui/source.go
package tui

import (
	"go-tower-proto/internal/input"

	"github.com/gdamore/tcell/v2"
)

// Source переводит события tcell в input.Event. События читаются из канала,
// который наполняет горутина с PollEvent; PollEvents не блокирует.
type Source struct {
	events   <-chan tcell.Event
	viewport Viewport
	buttons  tcell.ButtonMask
	x, y     float64
}

func NewSource(events <-chan tcell.Event, viewport Viewport) *Source {
	return &Source{events: events, viewport: viewport}
}

// Pump запускает горутину, которая перекладывает события экрана в канал.
// Горутина живёт, пока экран не закрыт.
func Pump(screen tcell.Screen) <-chan tcell.Event {
	ch := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(ch)
				return
			}
			ch <- ev
		}
	}()
	return ch
}

// Viewport возвращает текущий размер терминала.
func (s *Source) Viewport() Viewport {
	return s.viewport
}

func (s *Source) PollEvents() []input.Event {
	var out []input.Event
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return append(out, input.Event{Kind: input.Quit})
			}
			if e, ok := s.translate(ev); ok {
				out = append(out, e)
			}
		default:
			return out
		}
	}
}

func (s *Source) PointerPosition() (float64, float64) {
	return s.x, s.y
}

func (s *Source) translate(ev tcell.Event) (input.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return TranslateKey(ev)
	case *tcell.EventMouse:
		col, row := ev.Position()
		s.x, s.y = s.viewport.ToWorld(col, row)
		pressed := ev.Buttons() &^ s.buttons
		s.buttons = ev.Buttons()
		button, ok := pressedButton(pressed)
		if !ok {
			return input.Event{}, false
		}
		return input.Event{Kind: input.PointerDown, X: s.x, Y: s.y, Button: button}, true
	case *tcell.EventResize:
		s.viewport.Cols, s.viewport.Rows = ev.Size()
	}
	return input.Event{}, false
}

// TranslateKey переводит нажатие клавиши. Esc, Ctrl+C и q означают выход.
func TranslateKey(ev *tcell.EventKey) (input.Event, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Event{Kind: input.Quit}, true
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r == 'q':
			return input.Event{Kind: input.Quit}, true
		case r >= '1' && r <= '9', r == 'p', r == 'r':
			return input.Key(r), true
		}
	}
	return input.Event{}, false
}

// pressedButton выбирает кнопку из только что нажатых.
func pressedButton(mask tcell.ButtonMask) (input.Button, bool) {
	switch {
	case mask&tcell.Button1 != 0:
		return input.ButtonLeft, true
	case mask&tcell.Button2 != 0:
		return input.ButtonRight, true
	case mask&tcell.Button3 != 0:
		return input.ButtonMiddle, true
	}
	return 0, false
}
