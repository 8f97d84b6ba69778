// internal/input/input.go
package input

// Kind — вид входного события.
type Kind int

const (
	Quit Kind = iota
	PointerDown
	KeyDown
)

func (k Kind) String() string {
	switch k {
	case Quit:
		return "quit"
	case PointerDown:
		return "pointer_down"
	case KeyDown:
		return "key_down"
	}
	return "unknown"
}

// Button — кнопка указателя.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// Event — одно входное событие, уже переведённое в экранные координаты
// симуляции (800x600). Key содержит символ клавиши для KeyDown.
type Event struct {
	Kind   Kind
	X, Y   float64
	Button Button
	Key    rune
}

// Source отдаёт накопившиеся за кадр события и текущее положение указателя.
// PollEvents не блокирует.
type Source interface {
	PollEvents() []Event
	PointerPosition() (float64, float64)
}

// Click — левый клик в точке (x, y).
func Click(x, y float64) Event {
	return Event{Kind: PointerDown, X: x, Y: y, Button: ButtonLeft}
}

// RightClick — правый клик в точке (x, y).
func RightClick(x, y float64) Event {
	return Event{Kind: PointerDown, X: x, Y: y, Button: ButtonRight}
}

// Key — нажатие клавиши r.
func Key(r rune) Event {
	return Event{Kind: KeyDown, Key: r}
}

// Queue — Source поверх заранее заданных событий. Используется тестами
// и воспроизведением.
type Queue struct {
	pending []Event
	x, y    float64
}

func (q *Queue) Push(events ...Event) {
	for _, e := range events {
		if e.Kind == PointerDown {
			q.x, q.y = e.X, e.Y
		}
	}
	q.pending = append(q.pending, events...)
}

func (q *Queue) PollEvents() []Event {
	events := q.pending
	q.pending = nil
	return events
}

func (q *Queue) PointerPosition() (float64, float64) {
	return q.x, q.y
}
