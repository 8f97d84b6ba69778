package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchOnlyToSubscribers(t *testing.T) {
	d := NewDispatcher()
	kills := &recorder{}
	leaks := &recorder{}
	d.Subscribe(kills, EnemyKilled)
	d.Subscribe(leaks, EnemyLeaked)

	d.Dispatch(Event{Type: EnemyKilled, Data: EnemyData{ID: 7}})

	assert.Len(t, kills.got, 1)
	assert.Empty(t, leaks.got)
	assert.Equal(t, EnemyData{ID: 7}, kills.got[0].Data)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a := &recorder{}
	b := &recorder{}
	d.Subscribe(a, WaveAdvanced)
	d.Subscribe(b, WaveAdvanced)
	d.Unsubscribe(WaveAdvanced, a)

	d.Dispatch(Event{Type: WaveAdvanced})

	assert.Empty(t, a.got)
	assert.Len(t, b.got, 1)
}

func TestSubscribeManyTypes(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(r, EnemySpawned, GameOver)

	d.Dispatch(Event{Type: EnemySpawned})
	d.Dispatch(Event{Type: TowerPlaced})
	d.Dispatch(Event{Type: GameOver})

	assert.Len(t, r.got, 2)
	assert.Equal(t, GameOver, r.got[1].Type)
}
