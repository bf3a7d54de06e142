package board

import "testing"

func TestSquareParseAndString(t *testing.T) {
	tests := []struct {
		name string
		sq   Square
	}{
		{"a8", Square{0, 0}},
		{"h8", Square{0, 7}},
		{"a1", Square{7, 0}},
		{"e4", Square{4, 4}},
		{"h1", Square{7, 7}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseSquare(tc.name)
			if err != nil {
				t.Fatalf("ParseSquare(%q): %v", tc.name, err)
			}
			if got != tc.sq {
				t.Errorf("ParseSquare(%q) = %v, want %v", tc.name, got, tc.sq)
			}
			if s := tc.sq.String(); s != tc.name {
				t.Errorf("String() = %q, want %q", s, tc.name)
			}
		})
	}

	for _, bad := range []string{"", "e", "i1", "a0", "a9", "e44"} {
		if _, err := ParseSquare(bad); err == nil {
			t.Errorf("ParseSquare(%q) succeeded, want error", bad)
		}
	}
}

func TestSquareGeometry(t *testing.T) {
	e4 := MustSquare("e4")
	if got := e4.Add(North); got != MustSquare("e5") {
		t.Errorf("e4+North = %v, want e5", got)
	}
	if got := e4.Add(NorthEast.Scale(2)); got != MustSquare("g6") {
		t.Errorf("e4+2*NorthEast = %v, want g6", got)
	}
	if (Square{0, 7}).Add(East).Inside() {
		t.Error("h8+East should be off the board")
	}
	if MustSquare("a1").Color() != Black {
		t.Error("a1 should be a dark square")
	}
	if MustSquare("h1").Color() != White {
		t.Error("h1 should be a light square")
	}
}

func TestInitialBoard(t *testing.T) {
	b := Initial()

	if got := len(b.PiecePositions()); got != 32 {
		t.Fatalf("initial board has %d pieces, want 32", got)
	}
	for _, c := range []Color{White, Black} {
		if got := len(b.PiecePositionsFor(c)); got != 16 {
			t.Errorf("%s has %d pieces, want 16", c, got)
		}
	}

	checks := map[string]Piece{
		"e1": NewPiece(King, White),
		"d1": NewPiece(Queen, White),
		"e8": NewPiece(King, Black),
		"a8": NewPiece(Rook, Black),
		"c2": NewPiece(Pawn, White),
		"f7": NewPiece(Pawn, Black),
	}
	for name, want := range checks {
		if got := b.At(MustSquare(name)); got != want {
			t.Errorf("At(%s) = %+v, want %+v", name, got, want)
		}
	}

	for _, c := range []Color{White, Black} {
		if _, ok := b.PawnSkip(c); ok {
			t.Errorf("%s has a skip marker on the initial board", c)
		}
	}
}

func TestCopyAndClone(t *testing.T) {
	b := Initial()
	b.SetPawnSkip(White, MustSquare("e3"))

	cp := b.Copy()
	if _, ok := cp.PawnSkip(White); ok {
		t.Error("Copy kept the skip marker")
	}
	cl := b.Clone()
	if sq, ok := cl.PawnSkip(White); !ok || sq != MustSquare("e3") {
		t.Errorf("Clone skip marker = %v %v, want e3", sq, ok)
	}

	cp.Remove(MustSquare("e2"))
	cl.Remove(MustSquare("d2"))
	if b.IsEmpty(MustSquare("e2")) || b.IsEmpty(MustSquare("d2")) {
		t.Error("mutating a copy changed the original")
	}
}

func TestAfterClearsMoverSkip(t *testing.T) {
	b := Initial()
	b = b.After(NewDoublePawn(MustSquare("e2"), MustSquare("e4")))
	if sq, ok := b.PawnSkip(White); !ok || sq != MustSquare("e3") {
		t.Fatalf("white skip = %v %v, want e3", sq, ok)
	}

	b = b.After(NewMove(MustSquare("g8"), MustSquare("f6")))
	if _, ok := b.PawnSkip(White); !ok {
		t.Error("black's move cleared white's skip marker")
	}

	b = b.After(NewMove(MustSquare("g1"), MustSquare("f3")))
	if _, ok := b.PawnSkip(White); ok {
		t.Error("white's next move kept white's skip marker")
	}
}

func TestPieceChars(t *testing.T) {
	for _, c := range []byte("pnbrqkPNBRQK") {
		p := PieceFromChar(c)
		if p.IsEmpty() {
			t.Fatalf("PieceFromChar(%c) is empty", c)
		}
		if p.Char() != c {
			t.Errorf("PieceFromChar(%c).Char() = %c", c, p.Char())
		}
	}
	if !PieceFromChar('x').IsEmpty() {
		t.Error("PieceFromChar('x') should be empty")
	}
	var zero Piece
	if !zero.IsEmpty() {
		t.Error("zero Piece should be empty")
	}
}
