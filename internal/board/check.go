package board

// IsInCheck reports whether any enemy piece can capture the king of color c.
// A side without a king is never in check.
func (b *Board) IsInCheck(c Color) bool {
	for _, sq := range b.PiecePositionsFor(c.Other()) {
		if b.CanCaptureKingFrom(sq) {
			return true
		}
	}
	return false
}

// CastlingRights represents the castling options still potentially available.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

func castleFlag(c Color, kingSide bool) CastlingRights {
	switch {
	case c == White && kingSide:
		return WhiteKingSideCastle
	case c == White:
		return WhiteQueenSideCastle
	case kingSide:
		return BlackKingSideCastle
	default:
		return BlackQueenSideCastle
	}
}

// String returns the rights as "KQkq" letters, or "-" when none remain.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle returns true if the given side keeps the right in that direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	return cr&castleFlag(c, kingSide) != 0
}

// HasCastleRight reports the potential right to castle: an unmoved king on its
// home square and an unmoved rook of the same color in the corner. Whether the
// path is clear or safe right now does not matter.
func (b *Board) HasCastleRight(c Color, kingSide bool) bool {
	row := c.homeRow()
	king := b.At(Square{row, 4})
	if !king.Is(King, c) || king.Moved {
		return false
	}
	corner := 7
	if !kingSide {
		corner = 0
	}
	rook := b.At(Square{row, corner})
	return rook.Is(Rook, c) && !rook.Moved
}

// CastlingRights collects the potential castling rights of both colors.
func (b *Board) CastlingRights() CastlingRights {
	cr := NoCastling
	for _, c := range [2]Color{White, Black} {
		for _, kingSide := range [2]bool{true, false} {
			if b.HasCastleRight(c, kingSide) {
				cr |= castleFlag(c, kingSide)
			}
		}
	}
	return cr
}

// EnPassantTarget returns the opponent's skip square when color c has a legal
// en passant capture onto it.
func (b *Board) EnPassantTarget(c Color) (Square, bool) {
	skip, ok := b.PawnSkip(c.Other())
	if !ok {
		return NoSquare, false
	}
	// Capturing pawns stand one row behind the skip square from c's side.
	behind := c.forward().Scale(-1)
	for _, side := range [2]Direction{East, West} {
		from := skip.Add(behind.Add(side))
		if !b.At(from).Is(Pawn, c) {
			continue
		}
		if NewEnPassant(from, skip).IsLegal(b) {
			return skip, true
		}
	}
	return NoSquare, false
}

// CanCaptureEnPassant reports whether color c can legally capture en passant.
func (b *Board) CanCaptureEnPassant(c Color) bool {
	_, ok := b.EnPassantTarget(c)
	return ok
}
