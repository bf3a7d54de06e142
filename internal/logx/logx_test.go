package logx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLoggerToLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerTo(&buf, zerolog.InfoLevel)

	log.Debug().Msg("hidden")
	log.Info().Str("reason", "checkmate").Msg("game over")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message written at info level: %s", out)
	}
	if !strings.Contains(out, "game over") || !strings.Contains(out, "checkmate") {
		t.Errorf("info message missing: %s", out)
	}
	if !strings.Contains(out, "logx_test.go:") {
		t.Errorf("caller missing or not shortened: %s", out)
	}
}

func TestShortCaller(t *testing.T) {
	got := shortCaller(0, "/home/dev/chessrules/internal/game/state.go", 42)
	if strings.TrimSpace(got) != "state.go:42" {
		t.Errorf("shortCaller = %q, want state.go:42", got)
	}
}
