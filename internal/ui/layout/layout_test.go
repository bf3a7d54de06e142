package layout

import (
	"testing"

	"github.com/hailam/chessrules/internal/board"
)

func TestOrigin(t *testing.T) {
	tests := []struct {
		name    string
		flipped bool
		sq      string
		x, y    int
	}{
		{"a8 top left", false, "a8", 0, 0},
		{"h1 bottom right", false, "h1", 560, 560},
		{"e2", false, "e2", 320, 480},
		{"flipped h1 top left", true, "h1", 0, 0},
		{"flipped a8 bottom right", true, "a8", 560, 560},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := Geometry{SquareSize: 80, Flipped: tc.flipped}
			x, y := g.Origin(board.MustSquare(tc.sq))
			if x != tc.x || y != tc.y {
				t.Errorf("Origin(%s) = (%d, %d), want (%d, %d)", tc.sq, x, y, tc.x, tc.y)
			}
		})
	}
}

func TestToSquareRoundTrip(t *testing.T) {
	for _, flipped := range []bool{false, true} {
		g := Geometry{SquareSize: 80, Flipped: flipped}
		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				sq := board.Square{Row: row, Col: col}
				x, y := g.Center(sq)
				got, ok := g.ToSquare(x, y)
				if !ok || got != sq {
					t.Errorf("flipped=%v: ToSquare(Center(%s)) = %s %v", flipped, sq, got, ok)
				}
			}
		}
	}
}

func TestToSquareOutside(t *testing.T) {
	g := Geometry{SquareSize: 80}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {640, 10}, {10, 640}} {
		if _, ok := g.ToSquare(p[0], p[1]); ok {
			t.Errorf("ToSquare(%d, %d) is on the board", p[0], p[1])
		}
	}
}
