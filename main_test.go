package main

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hailam/chessrules/internal/config"
	"github.com/hailam/chessrules/internal/storage"
)

func TestWithStorageClosesOnError(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{"on disk", config.Config{DataDir: t.TempDir()}},
		{"in memory", config.Config{NoStorage: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			failed := errors.New("window failed")
			var got *storage.Storage
			err := withStorage(tc.cfg, zerolog.Nop(), func(s *storage.Storage) error {
				got = s
				return failed
			})
			if !errors.Is(err, failed) {
				t.Fatalf("withStorage = %v, want %v", err, failed)
			}
			if got == nil {
				t.Fatal("fn did not receive a store")
			}
			if _, err := got.LoadStats(); err == nil {
				t.Error("store still usable after withStorage returned")
			}
		})
	}
}
