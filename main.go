// Chessrules - a two-player chess board built with Ebitengine
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/hailam/chessrules/internal/config"
	"github.com/hailam/chessrules/internal/logx"
	"github.com/hailam/chessrules/internal/storage"
	"github.com/hailam/chessrules/internal/ui"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fallback := logx.NewLogger(zerolog.InfoLevel)
		fallback.Fatal().Err(err).Msg("configuration")
	}
	log := logx.NewLogger(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("chessrules")
	}
}

// run builds the window on top of whatever storage could be opened.
func run(cfg config.Config, log zerolog.Logger) error {
	return withStorage(cfg, log, func(store *storage.Storage) error {
		game, err := ui.NewGame(ui.Options{Config: cfg, Store: store, Logger: log})
		if err != nil {
			return fmt.Errorf("create game: %w", err)
		}

		ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
		ebiten.SetWindowTitle("Chessrules")
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

		if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
			return fmt.Errorf("run game: %w", err)
		}
		return nil
	})
}

// withStorage opens storage, runs fn and closes the store on every return
// path. A store that fails to open is logged and fn gets nil.
func withStorage(cfg config.Config, log zerolog.Logger, fn func(*storage.Storage) error) error {
	store, err := openStorage(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("storage unavailable, results will not be saved")
		return fn(nil)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn().Err(err).Msg("close storage")
		}
	}()
	return fn(store)
}

// openStorage opens the on-disk database, or an in-memory one that keeps
// results for this session only when storage is disabled.
func openStorage(cfg config.Config) (*storage.Storage, error) {
	if cfg.NoStorage {
		return storage.OpenInMemory()
	}
	return storage.Open(cfg.DataDir)
}
