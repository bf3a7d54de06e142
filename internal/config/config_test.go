package config

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hailam/chessrules/internal/board"
)

func TestLoadDefaults(t *testing.T) {
	for _, env := range []string{"CHESSRULES_DATA_DIR", "CHESSRULES_LOG_LEVEL", "CHESSRULES_START", "CHESSRULES_KEY", "CHESSRULES_NO_STORAGE", "CHESSRULES_FLIP"} {
		t.Setenv(env, "")
	}

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "" || cfg.NoStorage || cfg.Flipped || cfg.StartKey != "" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.LogLevel != zerolog.InfoLevel {
		t.Errorf("LogLevel = %s, want info", cfg.LogLevel)
	}
	if cfg.StartingColor != board.White {
		t.Errorf("StartingColor = %s, want White", cfg.StartingColor)
	}
}

func TestLoadFlagsAndEnv(t *testing.T) {
	t.Setenv("CHESSRULES_DATA_DIR", "/tmp/from-env")
	t.Setenv("CHESSRULES_NO_STORAGE", "yes")
	t.Setenv("CHESSRULES_START", "black")
	t.Setenv("CHESSRULES_LOG_LEVEL", "")

	cfg, err := Load([]string{"-data-dir", "/tmp/from-flag", "-log-level", "DEBUG", "-flip"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/tmp/from-flag" {
		t.Errorf("DataDir = %q, flag should win over env", cfg.DataDir)
	}
	if !cfg.NoStorage {
		t.Error("NoStorage not taken from env")
	}
	if cfg.StartingColor != board.Black {
		t.Errorf("StartingColor = %s, want Black", cfg.StartingColor)
	}
	if cfg.LogLevel != zerolog.DebugLevel {
		t.Errorf("LogLevel = %s, want debug", cfg.LogLevel)
	}
	if !cfg.Flipped {
		t.Error("Flipped not set by -flip")
	}
}

func TestLoadKeySetsStartingColor(t *testing.T) {
	t.Setenv("CHESSRULES_KEY", "")
	t.Setenv("CHESSRULES_START", "")
	const key = "4k3/8/8/8/8/8/8/4K3 b - -"

	tests := []struct {
		name string
		args []string
	}{
		{"key only", []string{"-key", key}},
		{"matching start", []string{"-key", key, "-start", "black"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(tc.args)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.StartingColor != board.Black || cfg.StartKey != key {
				t.Errorf("cfg = %+v, want Black to start from %q", cfg, key)
			}
		})
	}

	t.Setenv("CHESSRULES_START", "white")
	if _, err := Load([]string{"-key", key}); err == nil {
		t.Error("CHESSRULES_START=white with a black-to-move key succeeded, want error")
	}
}

func TestLoadErrors(t *testing.T) {
	t.Setenv("CHESSRULES_KEY", "")
	t.Setenv("CHESSRULES_START", "")
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-bogus"}},
		{"bad level", []string{"-log-level", "loud"}},
		{"bad color", []string{"-start", "green"}},
		{"bad key", []string{"-key", "8/8 w - -"}},
		{"start conflicts with key", []string{"-key", "4k3/8/8/8/8/8/8/4K3 b - -", "-start", "white"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(tc.args); err == nil {
				t.Errorf("Load(%v) succeeded, want error", tc.args)
			}
		})
	}

	_, err := Load([]string{"-key", "8/8 w - -"})
	if !errors.Is(err, board.ErrInvalidKey) {
		t.Errorf("bad key error = %v, want ErrInvalidKey", err)
	}
}
