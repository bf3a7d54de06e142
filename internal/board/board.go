package board

import "fmt"

// skipMarker records the square a pawn passed over on a double step.
type skipMarker struct {
	sq  Square
	set bool
}

// Board is an 8x8 grid of pieces plus one pawn-skip marker per color.
//
// A skip marker is set by a double pawn step and cleared at the start of that
// color's next move, so the opponent can capture en passant for exactly one ply.
// The zero Board is an empty board with no markers.
type Board struct {
	squares  [8][8]Piece
	pawnSkip [2]skipMarker
}

// New returns an empty board.
func New() *Board {
	return &Board{}
}

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Initial returns the standard starting position: black on rows 0-1,
// white on rows 6-7, all pieces unmoved.
func Initial() *Board {
	b := New()
	for col, pt := range backRank {
		b.squares[0][col] = NewPiece(pt, Black)
		b.squares[1][col] = NewPiece(Pawn, Black)
		b.squares[6][col] = NewPiece(Pawn, White)
		b.squares[7][col] = NewPiece(pt, White)
	}
	return b
}

// At returns the piece on sq. Squares off the board read as empty.
func (b *Board) At(sq Square) Piece {
	if !sq.Inside() {
		return NoPiece
	}
	return b.squares[sq.Row][sq.Col]
}

// Set places p on sq, replacing whatever was there.
func (b *Board) Set(sq Square, p Piece) {
	if !sq.Inside() {
		panic(fmt.Sprintf("board: set outside the board: %v", sq))
	}
	b.squares[sq.Row][sq.Col] = p
}

// Remove empties sq and returns its former content.
func (b *Board) Remove(sq Square) Piece {
	p := b.At(sq)
	if sq.Inside() {
		b.squares[sq.Row][sq.Col] = NoPiece
	}
	return p
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.At(sq).IsEmpty()
}

// PawnSkip returns the skip marker for c, if set.
func (b *Board) PawnSkip(c Color) (Square, bool) {
	if c >= NoColor || !b.pawnSkip[c].set {
		return NoSquare, false
	}
	return b.pawnSkip[c].sq, true
}

// SetPawnSkip records the square a pawn of color c just skipped over.
func (b *Board) SetPawnSkip(c Color, sq Square) {
	b.pawnSkip[c] = skipMarker{sq: sq, set: true}
}

// ClearPawnSkip removes the skip marker for c.
func (b *Board) ClearPawnSkip(c Color) {
	if c < NoColor {
		b.pawnSkip[c] = skipMarker{}
	}
}

// Copy returns an independent board with the same pieces but no skip markers.
// It is the copy legality probes run on.
func (b *Board) Copy() *Board {
	return &Board{squares: b.squares}
}

// Clone returns an independent board including skip markers, suitable for
// continuing play from the copy.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// After returns a clone of b with m played by the side owning the moving
// piece: that side's skip marker is cleared first, as at the start of a turn.
func (b *Board) After(m Move) *Board {
	child := b.Clone()
	child.ClearPawnSkip(b.At(m.From).Color)
	m.Execute(child)
	return child
}

// PiecePositions returns every occupied square in row-major order.
func (b *Board) PiecePositions() []Square {
	squares := make([]Square, 0, 32)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if !b.squares[row][col].IsEmpty() {
				squares = append(squares, Square{row, col})
			}
		}
	}
	return squares
}

// PiecePositionsFor returns the squares occupied by pieces of color c.
func (b *Board) PiecePositionsFor(c Color) []Square {
	squares := make([]Square, 0, 16)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.squares[row][col]
			if !p.IsEmpty() && p.Color == c {
				squares = append(squares, Square{row, col})
			}
		}
	}
	return squares
}

// FindPiece returns the first square in row-major order holding pt of color c.
func (b *Board) FindPiece(pt PieceType, c Color) (Square, bool) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if b.squares[row][col].Is(pt, c) {
				return Square{row, col}, true
			}
		}
	}
	return NoSquare, false
}

// KingSquare returns where the king of color c stands.
func (b *Board) KingSquare(c Color) (Square, bool) {
	return b.FindPiece(King, c)
}

// String returns a visual representation of the board, rank 8 first.
func (b *Board) String() string {
	s := "\n"
	for row := 0; row < 8; row++ {
		s += fmt.Sprintf("%d  ", 8-row)
		for col := 0; col < 8; col++ {
			p := b.squares[row][col]
			if p.IsEmpty() {
				s += ". "
			} else {
				s += p.String() + " "
			}
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n"
	return s
}
