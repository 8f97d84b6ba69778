package component

// Health — компонент здоровья
type Health struct {
	Value int
	Max   int
}

// Ratio returns Value/Max clamped to [0, 1].
func (h *Health) Ratio() float64 {
	if h.Max <= 0 || h.Value <= 0 {
		return 0
	}
	if h.Value >= h.Max {
		return 1
	}
	return float64(h.Value) / float64(h.Max)
}

// Combat — компонент для башен, управляющий атакой
type Combat struct {
	Range       float64
	Damage      int
	CooldownMax int // Тиков перезарядки после выстрела
	Cooldown    int // Оставшиеся тики до следующего выстрела
}
