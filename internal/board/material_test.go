package board

import "testing"

func TestInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want bool
	}{
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - -", true},
		{"king and knight", "4k3/8/8/8/8/8/8/4KN2 w - -", true},
		{"king and bishop", "4kb2/8/8/8/8/8/8/4K3 w - -", true},
		{"bishops on same shade", "2b1k3/8/8/8/8/8/8/4KB2 w - -", true},
		{"bishops on opposite shades", "4kb2/8/8/8/8/8/8/4KB2 w - -", false},
		{"two knights", "4k3/8/8/8/8/8/8/3NKN2 w - -", false},
		{"knight each", "4kn2/8/8/8/8/8/8/4KN2 w - -", false},
		{"single pawn", "4k3/8/8/8/8/8/4P3/4K3 w - -", false},
		{"single rook", "4k3/8/8/8/8/8/8/4K2R w - -", false},
		{"initial", InitialKey, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, _ := mustDecode(t, tc.key)
			if got := b.InsufficientMaterial(); got != tc.want {
				t.Errorf("InsufficientMaterial() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCountPieces(t *testing.T) {
	m := Initial().CountPieces()
	if m.Total() != 32 {
		t.Errorf("Total() = %d, want 32", m.Total())
	}
	if got := m.Count(White, Pawn); got != 8 {
		t.Errorf("white pawns = %d, want 8", got)
	}
	if got := m.Count(Black, Bishop); got != 2 {
		t.Errorf("black bishops = %d, want 2", got)
	}
	if got := m.Count(NoColor, King); got != 0 {
		t.Errorf("NoColor kings = %d, want 0", got)
	}
}
