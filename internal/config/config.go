// Package config reads the program settings from flags, falling back to
// CHESSRULES_* environment variables.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hailam/chessrules/internal/board"
)

// Config holds the runtime settings.
type Config struct {
	// DataDir is where the database lives. Empty selects the platform default.
	DataDir string

	LogLevel      zerolog.Level
	StartingColor board.Color
	NoStorage     bool
	Flipped       bool
	// StartKey is the position the first game starts from.
	StartKey string
}

// Load parses args (without the program name).
func Load(args []string) (Config, error) {
	fs := flag.NewFlagSet("chessrules", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	dataDir := fs.String("data-dir", getenv("CHESSRULES_DATA_DIR", ""), "database directory (default: platform data dir)")
	level := fs.String("log-level", getenv("CHESSRULES_LOG_LEVEL", "info"), "log level: trace, debug, info, warn, error")
	start := fs.String("start", getenv("CHESSRULES_START", "white"), "side that moves first: white or black")
	key := fs.String("key", getenv("CHESSRULES_KEY", ""), "starting position key; its side to move decides who starts (default: standard start)")
	noStorage := fs.Bool("no-storage", getenb("CHESSRULES_NO_STORAGE", false), "keep results in memory only")
	flipped := fs.Bool("flip", getenb("CHESSRULES_FLIP", false), "draw the board with black at the bottom")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(*level))
	if err != nil {
		return Config{}, fmt.Errorf("log level %q: %w", *level, err)
	}

	color, ok := board.ParseColor(*start)
	if !ok {
		return Config{}, fmt.Errorf("starting color %q: want white or black", *start)
	}

	if *key != "" {
		_, side, err := board.DecodeKey(*key)
		if err != nil {
			return Config{}, fmt.Errorf("starting key: %w", err)
		}
		startSet := os.Getenv("CHESSRULES_START") != ""
		fs.Visit(func(f *flag.Flag) {
			if f.Name == "start" {
				startSet = true
			}
		})
		if startSet && color != side {
			return Config{}, fmt.Errorf("starting color %s conflicts with %s to move in the starting key", color, side)
		}
		color = side
	}

	return Config{
		DataDir:       *dataDir,
		LogLevel:      lvl,
		StartingColor: color,
		NoStorage:     *noStorage,
		Flipped:       *flipped,
		StartKey:      *key,
	}, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}
