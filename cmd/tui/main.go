// cmd/tui/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go-tower-proto/internal/app"
	"go-tower-proto/internal/config"
	"go-tower-proto/internal/defs"
	"go-tower-proto/internal/input"
	"go-tower-proto/internal/logging"
	"go-tower-proto/internal/tui"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "", "path to a settings file (yaml, json or toml)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	settings, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Терминал занят полем, поэтому лог пишется только в файл.
	var logOut io.Writer = io.Discard
	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := logging.New(settings.LogLevel, io.Discard, logOut)

	game, err := newGame(settings, logger)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	cols, rows := screen.Size()
	source := tui.NewSource(tui.Pump(screen), tui.Viewport{Cols: cols, Rows: rows})
	renderer := tui.NewRenderer(screen, &game.Rules)

	loop(game, source, renderer, time.Second/time.Duration(settings.TPS))
	logger.Info().
		Uint64("ticks", game.ECS.Tick).
		Int("wave", game.ECS.Economy.Wave).
		Msg("bye")
	return nil
}

// loop крутит симуляцию по тикеру. P ставит на паузу, R после конца
// игры начинает заново, выход по Esc, Ctrl+C или q.
func loop(game *app.Game, source *tui.Source, renderer *tui.Renderer, period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	paused := false
	for range ticker.C {
		events := source.PollEvents()
		var gameEvents []input.Event
		for _, e := range events {
			switch {
			case e.Kind == input.Quit:
				return
			case e.Kind == input.KeyDown && e.Key == 'p':
				paused = !paused
			case e.Kind == input.KeyDown && e.Key == 'r' && game.IsOver():
				game.Reset()
			default:
				gameEvents = append(gameEvents, e)
			}
		}

		banner := ""
		switch {
		case game.IsOver():
			banner = fmt.Sprintf(" GAME OVER - wave %d - press R to restart ", game.ECS.Economy.Wave)
		case paused:
			banner = " PAUSED - press P "
		default:
			game.Tick(gameEvents)
		}
		renderer.Draw(game.Snapshot(), banner)
	}
}

// newGame загружает определения и создаёт игру по настройкам.
func newGame(settings config.Settings, logger zerolog.Logger) (*app.Game, error) {
	if settings.TowersFile != "" {
		if _, err := defs.LoadTowerDefinitions(settings.TowersFile); err != nil {
			return nil, err
		}
	}
	if settings.EnemiesFile != "" {
		if _, err := defs.LoadEnemyDefinitions(settings.EnemiesFile); err != nil {
			return nil, err
		}
	}
	rules, err := defs.LookupRuleset(settings.Ruleset)
	if err != nil {
		return nil, err
	}
	return app.NewGame(rules, settings.Seed, logger)
}
