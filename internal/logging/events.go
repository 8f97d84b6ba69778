// internal/logging/events.go
package logging

import (
	"time"

	"go-tower-proto/internal/event"

	"github.com/rs/zerolog"
)

// EventLogger пишет игровые события в лог. Выстрелы башен идут через
// сэмплер: их бывает по несколько за тик.
type EventLogger struct {
	logger  zerolog.Logger
	attacks zerolog.Logger
}

func NewEventLogger(logger zerolog.Logger) *EventLogger {
	return &EventLogger{
		logger: logger,
		attacks: logger.With().Bool("sampled", true).Logger().Sample(&zerolog.BurstSampler{
			Burst:       5,
			Period:      time.Second,
			NextSampler: &zerolog.BasicSampler{N: 100},
		}),
	}
}

// Subscribe подписывает логгер на все игровые события.
func (l *EventLogger) Subscribe(d *event.Dispatcher) {
	d.Subscribe(l,
		event.EnemySpawned,
		event.EnemyKilled,
		event.EnemyLeaked,
		event.TowerPlaced,
		event.TowerAttacked,
		event.WaveAdvanced,
		event.GameOver,
	)
}

func (l *EventLogger) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.EnemyData:
		l.logger.Debug().
			Str("event", string(e.Type)).
			Uint64("id", uint64(data.ID)).
			Str("enemy", data.Type.String()).
			Float64("x", data.Position.X).
			Float64("y", data.Position.Y).
			Msg("enemy")
	case event.TowerData:
		l.logger.Info().
			Uint64("id", uint64(data.ID)).
			Str("tower", data.Type.String()).
			Float64("x", data.Position.X).
			Float64("y", data.Position.Y).
			Int("cost", data.Cost).
			Msg("tower placed")
	case event.AttackData:
		l.attacks.Debug().
			Uint64("tower", uint64(data.TowerID)).
			Uint64("target", uint64(data.TargetID)).
			Int("damage", data.Damage).
			Msg("tower attacked")
	case event.WaveData:
		l.logger.Info().
			Int("wave", data.Wave).
			Int("bonus", data.Bonus).
			Msg("wave advanced")
	case event.GameOverData:
		l.logger.Warn().
			Uint64("tick", data.Tick).
			Int("wave", data.Wave).
			Msg("game over")
	default:
		l.logger.Debug().Str("event", string(e.Type)).Msg("unhandled event payload")
	}
}
