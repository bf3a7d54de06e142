package board

import (
	"errors"
	"testing"
)

func TestEncodeInitialKey(t *testing.T) {
	if got := EncodeKey(Initial(), White); got != InitialKey {
		t.Errorf("EncodeKey(initial) = %q, want %q", got, InitialKey)
	}
	want := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq -"
	if got := EncodeKey(Initial(), Black); got != want {
		t.Errorf("EncodeKey(initial, black) = %q, want %q", got, want)
	}
}

func TestKeyRoundTrip(t *testing.T) {
	keys := []string{
		InitialKey,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6",
		"rnbqkbnr/pppp1ppp/8/8/3Pp3/8/PPP1PPPP/RNBQKBNR b KQkq d3",
		"r3k2r/8/8/8/8/8/8/R3K2R b Kq -",
		"4k3/8/8/8/8/8/8/4K3 w - -",
	}

	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			b, side, err := DecodeKey(key)
			if err != nil {
				t.Fatalf("DecodeKey: %v", err)
			}
			if got := EncodeKey(b, side); got != key {
				t.Errorf("EncodeKey(DecodeKey(k)) = %q, want %q", got, key)
			}
		})
	}
}

func TestKeyEnPassantOnlyWhenCapturable(t *testing.T) {
	b := Initial().After(NewDoublePawn(MustSquare("e2"), MustSquare("e4")))
	want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq -"
	if got := EncodeKey(b, Black); got != want {
		t.Errorf("EncodeKey = %q, want %q", got, want)
	}
}

func TestDecodeKeyMovedFlags(t *testing.T) {
	b, _, err := DecodeKey("r3k2r/8/8/8/8/8/4P3/R3K2R w Kq -")
	if err != nil {
		t.Fatalf("DecodeKey: %v", err)
	}

	tests := []struct {
		sq    string
		moved bool
	}{
		{"e1", false},
		{"h1", false},
		{"a1", true},
		{"e8", false},
		{"a8", false},
		{"h8", true},
		{"e2", false},
	}
	for _, tc := range tests {
		if got := b.At(MustSquare(tc.sq)).Moved; got != tc.moved {
			t.Errorf("%s moved = %v, want %v", tc.sq, got, tc.moved)
		}
	}
}

func TestDecodeKeyAcceptsCounters(t *testing.T) {
	b, side, err := DecodeKey("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatalf("DecodeKey: %v", err)
	}
	if got := EncodeKey(b, side); got != InitialKey {
		t.Errorf("EncodeKey = %q, want %q", got, InitialKey)
	}
}

func TestDecodeKeyErrors(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"too few fields", "8/8/8/8/8/8/8/8 w"},
		{"seven rows", "8/8/8/8/8/8/8 w - -"},
		{"bad piece", "8/8/8/8/8/8/8/7x w - -"},
		{"short row", "8/8/8/8/8/8/8/7 w - -"},
		{"long row", "8/8/8/8/8/8/8/44K w - -"},
		{"bad side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq -"},
		{"bad castling letter", "4k3/8/8/8/8/8/8/4K3 w X -"},
		{"castling without rook", "4k3/8/8/8/8/8/8/4K3 w K -"},
		{"bad en passant square", "4k3/8/8/8/8/8/8/4K3 w - z9"},
		{"en passant on wrong rank", "4k3/8/8/8/8/8/8/4K3 w - e3"},
		{"en passant without pawn", "4k3/8/8/4P3/8/8/8/4K3 w - d6"},
		{"en passant square occupied", "4k3/8/3n4/3pP3/8/8/8/4K3 w - d6"},
		{"en passant origin occupied", "4k3/3n4/8/3pP3/8/8/8/4K3 w - d6"},
		{"en passant pawn of wrong color", "4k3/8/8/3PP3/8/8/8/4K3 w - d6"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := DecodeKey(tc.key)
			if err == nil {
				t.Fatalf("DecodeKey(%q) succeeded, want error", tc.key)
			}
			if !errors.Is(err, ErrInvalidKey) {
				t.Errorf("error %v does not wrap ErrInvalidKey", err)
			}
		})
	}
}
