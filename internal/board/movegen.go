package board

// pieceRules is the per-kind behavior: candidate generation and the narrower
// "could this piece take the enemy king" test used by check detection.
type pieceRules struct {
	candidates  func(b *Board, from Square, p Piece) []Move
	attacksKing func(b *Board, from Square, p Piece) bool
}

var rules [King + 1]pieceRules

func init() {
	rules = [King + 1]pieceRules{
		Pawn:   {candidates: pawnMoves, attacksKing: pawnAttacksKing},
		Knight: {candidates: knightMoves, attacksKing: candidatesReachKing(knightMoves)},
		Bishop: {candidates: sliderMoves(bishopDirections), attacksKing: candidatesReachKing(sliderMoves(bishopDirections))},
		Rook:   {candidates: sliderMoves(rookDirections), attacksKing: candidatesReachKing(sliderMoves(rookDirections))},
		Queen:  {candidates: sliderMoves(queenDirections), attacksKing: candidatesReachKing(sliderMoves(queenDirections))},
		King:   {candidates: kingMoves, attacksKing: kingAttacksKing},
	}
}

// MoveCandidates returns the moves the piece on from could make ignoring
// whether its own king would be left in check. An empty square yields nil.
func (b *Board) MoveCandidates(from Square) []Move {
	p := b.At(from)
	if p.IsEmpty() {
		return nil
	}
	return rules[p.Type].candidates(b, from, p)
}

// CanCaptureKingFrom reports whether the piece on from attacks the enemy king.
// Pawns attack only diagonally and kings only their adjacent squares.
func (b *Board) CanCaptureKingFrom(from Square) bool {
	p := b.At(from)
	if p.IsEmpty() {
		return false
	}
	return rules[p.Type].attacksKing(b, from, p)
}

// LegalMoves returns the candidates of the piece on from that pass the
// legality test. It does not consider whose turn it is.
func (b *Board) LegalMoves(from Square) []Move {
	candidates := b.MoveCandidates(from)
	legal := candidates[:0]
	for _, m := range candidates {
		if m.IsLegal(b) {
			legal = append(legal, m)
		}
	}
	return legal
}

// LegalMovesFor returns every legal move of color c in row-major origin order.
func (b *Board) LegalMovesFor(c Color) []Move {
	var moves []Move
	for _, sq := range b.PiecePositionsFor(c) {
		moves = append(moves, b.LegalMoves(sq)...)
	}
	return moves
}

// HasLegalMove reports whether color c has at least one legal move.
func (b *Board) HasLegalMove(c Color) bool {
	for _, sq := range b.PiecePositionsFor(c) {
		for _, m := range b.MoveCandidates(sq) {
			if m.IsLegal(b) {
				return true
			}
		}
	}
	return false
}

// canLand reports whether a piece of color c may finish on sq: on the board
// and not occupied by a friendly piece.
func (b *Board) canLand(sq Square, c Color) bool {
	if !sq.Inside() {
		return false
	}
	q := b.At(sq)
	return q.IsEmpty() || q.Color != c
}

func candidatesReachKing(gen func(*Board, Square, Piece) []Move) func(*Board, Square, Piece) bool {
	return func(b *Board, from Square, p Piece) bool {
		for _, m := range gen(b, from, p) {
			if b.At(m.To).Is(King, p.Color.Other()) {
				return true
			}
		}
		return false
	}
}

func sliderMoves(dirs []Direction) func(*Board, Square, Piece) []Move {
	return func(b *Board, from Square, p Piece) []Move {
		var moves []Move
		for _, d := range dirs {
			for to := from.Add(d); to.Inside(); to = to.Add(d) {
				q := b.At(to)
				if q.IsEmpty() {
					moves = append(moves, NewMove(from, to))
					continue
				}
				if q.Color != p.Color {
					moves = append(moves, NewMove(from, to))
				}
				break
			}
		}
		return moves
	}
}

func knightMoves(b *Board, from Square, p Piece) []Move {
	moves := make([]Move, 0, 8)
	for _, d := range knightSteps {
		if to := from.Add(d); b.canLand(to, p.Color) {
			moves = append(moves, NewMove(from, to))
		}
	}
	return moves
}

func kingSteps(b *Board, from Square, p Piece) []Move {
	moves := make([]Move, 0, 10)
	for _, d := range queenDirections {
		if to := from.Add(d); b.canLand(to, p.Color) {
			moves = append(moves, NewMove(from, to))
		}
	}
	return moves
}

func kingMoves(b *Board, from Square, p Piece) []Move {
	moves := kingSteps(b, from, p)
	// Only a king on its home square can castle, whatever its moved flag says.
	if p.Moved || from != (Square{p.Color.homeRow(), 4}) {
		return moves
	}
	if castlePathClear(b, from, p.Color, true) {
		moves = append(moves, NewCastle(from, true))
	}
	if castlePathClear(b, from, p.Color, false) {
		moves = append(moves, NewCastle(from, false))
	}
	return moves
}

// castlePathClear checks the unmoved rook in the corner and the empty squares
// between it and the king. Safety of the king's path is left to IsLegal.
func castlePathClear(b *Board, kingFrom Square, c Color, kingSide bool) bool {
	step, corner := East, 7
	if !kingSide {
		step, corner = West, 0
	}
	rook := b.At(Square{kingFrom.Row, corner})
	if !rook.Is(Rook, c) || rook.Moved {
		return false
	}
	for sq := kingFrom.Add(step); sq.Col != corner; sq = sq.Add(step) {
		if !sq.Inside() || !b.IsEmpty(sq) {
			return false
		}
	}
	return true
}

func kingAttacksKing(b *Board, from Square, p Piece) bool {
	for _, m := range kingSteps(b, from, p) {
		if b.At(m.To).Is(King, p.Color.Other()) {
			return true
		}
	}
	return false
}

func pawnMoves(b *Board, from Square, p Piece) []Move {
	var moves []Move
	fwd := p.Color.forward()

	if one := from.Add(fwd); one.Inside() && b.IsEmpty(one) {
		if one.Row == 0 || one.Row == 7 {
			moves = appendPromotions(moves, from, one)
		} else {
			moves = append(moves, NewMove(from, one))
		}
		if two := one.Add(fwd); !p.Moved && two.Inside() && b.IsEmpty(two) {
			moves = append(moves, NewDoublePawn(from, two))
		}
	}

	skip, hasSkip := b.PawnSkip(p.Color.Other())
	for _, side := range [2]Direction{East, West} {
		to := from.Add(fwd.Add(side))
		if !to.Inside() {
			continue
		}
		if hasSkip && to == skip {
			moves = append(moves, NewEnPassant(from, to))
			continue
		}
		if q := b.At(to); !q.IsEmpty() && q.Color != p.Color {
			if to.Row == 0 || to.Row == 7 {
				moves = appendPromotions(moves, from, to)
			} else {
				moves = append(moves, NewMove(from, to))
			}
		}
	}
	return moves
}

func appendPromotions(moves []Move, from, to Square) []Move {
	for _, pt := range PromotionTypes {
		moves = append(moves, NewPromotion(from, to, pt))
	}
	return moves
}

func pawnAttacksKing(b *Board, from Square, p Piece) bool {
	fwd := p.Color.forward()
	for _, side := range [2]Direction{East, West} {
		if b.At(from.Add(fwd.Add(side))).Is(King, p.Color.Other()) {
			return true
		}
	}
	return false
}
