// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"io"
	"os"

	"go-tower-proto/internal/app"
	"go-tower-proto/internal/config"
	"go-tower-proto/internal/defs"
	"go-tower-proto/internal/logging"
	"go-tower-proto/internal/state"
	"go-tower-proto/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "path to a settings file (yaml, json or toml)")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		l := logging.New("info", os.Stderr, nil)
		l.Fatal().Err(err).Msg("failed to load settings")
	}

	var logFile io.Writer
	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			l := logging.New("info", os.Stderr, nil)
			l.Fatal().Err(err).Msg("failed to open log file")
		}
		defer f.Close()
		logFile = f
	}
	logger := logging.New(settings.LogLevel, os.Stdout, logFile)

	game, err := newGame(settings, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start game")
	}

	sm := state.NewStateMachine()
	renderer := ui.NewRenderSystem(&game.Rules, basicfont.Face7x13)
	sm.SetState(state.NewGameState(sm, game, state.NewEbitenSource(), renderer))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tower Defense")
	ebiten.SetTPS(settings.TPS)
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error().Err(err).Msg("game loop failed")
	}
	logger.Info().
		Uint64("ticks", game.ECS.Tick).
		Int("wave", game.ECS.Economy.Wave).
		Msg("bye")
}

// newGame загружает определения и создаёт игру по настройкам.
func newGame(settings config.Settings, logger zerolog.Logger) (*app.Game, error) {
	if settings.TowersFile != "" {
		n, err := defs.LoadTowerDefinitions(settings.TowersFile)
		if err != nil {
			return nil, err
		}
		logger.Info().Int("count", n).Str("file", settings.TowersFile).Msg("tower definitions loaded")
	}
	if settings.EnemiesFile != "" {
		n, err := defs.LoadEnemyDefinitions(settings.EnemiesFile)
		if err != nil {
			return nil, err
		}
		logger.Info().Int("count", n).Str("file", settings.EnemiesFile).Msg("enemy definitions loaded")
	}

	rules, err := defs.LookupRuleset(settings.Ruleset)
	if err != nil {
		return nil, err
	}
	return app.NewGame(rules, settings.Seed, logger)
}
