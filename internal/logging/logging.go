// internal/logging/logging.go
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel переводит имя уровня из настроек в zerolog.Level.
// Неизвестное имя даёт info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New собирает логгер: цветной консольный вывод в console и, если file не nil,
// тот же формат без цвета в файл.
func New(level string, console io.Writer, file io.Writer) zerolog.Logger {
	var w io.Writer = zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.RFC3339,
	}
	if file != nil {
		w = zerolog.MultiLevelWriter(
			w,
			zerolog.ConsoleWriter{
				Out:        file,
				TimeFormat: time.RFC3339,
				NoColor:    true,
			},
		)
	}
	return zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// WithTick добавляет к каждой записи номер текущего тика.
func WithTick(logger zerolog.Logger, tick func() uint64) zerolog.Logger {
	return logger.Hook(zerolog.HookFunc(func(e *zerolog.Event, level zerolog.Level, msg string) {
		e.Uint64("tick", tick())
	}))
}
