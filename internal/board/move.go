package board

import "fmt"

// MoveKind selects how a move is executed and checked for legality.
type MoveKind uint8

const (
	Normal MoveKind = iota
	DoublePawn
	EnPassant
	CastleKingSide
	CastleQueenSide
	Promotion
)

// String returns the kind name.
func (k MoveKind) String() string {
	switch k {
	case Normal:
		return "normal"
	case DoublePawn:
		return "double-pawn"
	case EnPassant:
		return "en-passant"
	case CastleKingSide:
		return "castle-kingside"
	case CastleQueenSide:
		return "castle-queenside"
	case Promotion:
		return "promotion"
	default:
		return "unknown"
	}
}

// Move is a from/to pair tagged with its kind. For castling moves From and To
// are the king's squares; Promo is only meaningful for Promotion moves.
// Moves are comparable values.
type Move struct {
	Kind  MoveKind
	From  Square
	To    Square
	Promo PieceType
}

// NoMove is the zero move; it is never generated.
var NoMove = Move{From: NoSquare, To: NoSquare}

// NewMove creates a normal move.
func NewMove(from, to Square) Move {
	return Move{Kind: Normal, From: from, To: to}
}

// NewDoublePawn creates a two-square pawn advance.
func NewDoublePawn(from, to Square) Move {
	return Move{Kind: DoublePawn, From: from, To: to}
}

// NewEnPassant creates an en passant capture. to is the skipped square.
func NewEnPassant(from, to Square) Move {
	return Move{Kind: EnPassant, From: from, To: to}
}

// NewPromotion creates a promotion move.
func NewPromotion(from, to Square, promo PieceType) Move {
	return Move{Kind: Promotion, From: from, To: to, Promo: promo}
}

// NewCastle creates a castling move for the king standing on kingFrom.
func NewCastle(kingFrom Square, kingSide bool) Move {
	if kingSide {
		return Move{Kind: CastleKingSide, From: kingFrom, To: kingFrom.Add(East.Scale(2))}
	}
	return Move{Kind: CastleQueenSide, From: kingFrom, To: kingFrom.Add(West.Scale(2))}
}

// IsCastle reports whether m is a castling move.
func (m Move) IsCastle() bool {
	return m.Kind == CastleKingSide || m.Kind == CastleQueenSide
}

// CaptureSquare is where a captured piece would stand. For en passant that is
// beside the moving pawn: (From.Row, To.Col).
func (m Move) CaptureSquare() Square {
	if m.Kind == EnPassant {
		return Square{Row: m.From.Row, Col: m.To.Col}
	}
	return m.To
}

// RookSquares returns the rook's origin and destination for a castling move.
func (m Move) RookSquares() (from, to Square, ok bool) {
	row := m.From.Row
	switch m.Kind {
	case CastleKingSide:
		return Square{row, 7}, Square{row, 5}, true
	case CastleQueenSide:
		return Square{row, 0}, Square{row, 3}, true
	default:
		return NoSquare, NoSquare, false
	}
}

// IsCapture reports whether m removes an enemy piece from b.
func (m Move) IsCapture(b *Board) bool {
	if m.IsCastle() {
		return false
	}
	return !b.IsEmpty(m.CaptureSquare())
}

// Execute applies m to b and reports whether it was a capture or a pawn move,
// the events that reset the no-progress clock. Execute trusts its caller: the
// move must have been generated for b.
func (m Move) Execute(b *Board) bool {
	switch m.Kind {
	case DoublePawn:
		mover := b.At(m.From)
		executeNormal(b, m.From, m.To)
		b.SetPawnSkip(mover.Color, Square{Row: (m.From.Row + m.To.Row) / 2, Col: m.From.Col})
		return true
	case EnPassant:
		executeNormal(b, m.From, m.To)
		b.Remove(m.CaptureSquare())
		return true
	case CastleKingSide, CastleQueenSide:
		rookFrom, rookTo, _ := m.RookSquares()
		executeNormal(b, m.From, m.To)
		executeNormal(b, rookFrom, rookTo)
		return false
	case Promotion:
		mover := b.Remove(m.From)
		b.Set(m.To, Piece{Type: m.Promo, Color: mover.Color, Moved: true})
		return true
	default:
		return executeNormal(b, m.From, m.To)
	}
}

func executeNormal(b *Board, from, to Square) bool {
	mover := b.Remove(from)
	captured := !b.IsEmpty(to)
	mover.Moved = true
	b.Set(to, mover)
	return captured || mover.Type == Pawn
}

// IsLegal reports whether playing m on b leaves the mover's king safe.
//
// The probe runs on a Copy, which drops skip markers, so it never alters b.
// Castling is stricter: the king may not castle out of check, and it walks
// toward its destination one square at a time and must be safe after every step.
func (m Move) IsLegal(b *Board) bool {
	mover := b.At(m.From)
	if mover.IsEmpty() {
		return false
	}
	if m.IsCastle() {
		return castleIsLegal(b, m, mover.Color)
	}
	probe := b.Copy()
	m.Execute(probe)
	return !probe.IsInCheck(mover.Color)
}

func castleIsLegal(b *Board, m Move, c Color) bool {
	rookFrom, _, _ := m.RookSquares()
	if rook := b.At(rookFrom); !rook.Is(Rook, c) || rook.Moved {
		return false
	}
	if b.IsInCheck(c) {
		return false
	}

	step := East
	if m.Kind == CastleQueenSide {
		step = West
	}
	probe := b.Copy()
	for sq := m.From; sq != m.To; sq = sq.Add(step) {
		executeNormal(probe, sq, sq.Add(step))
		if probe.IsInCheck(c) {
			return false
		}
	}
	return true
}

// String returns the move in coordinate form (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Kind == Promotion {
		s += string(m.Promo.Char())
	}
	return s
}

// ParseMove resolves a coordinate-form move (e.g., "e1g1", "a7a8q") against the
// candidates of the piece on its origin square in b.
func ParseMove(s string, b *Board) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NoMove, fmt.Errorf("invalid move string: %q", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	promo := NoPieceType
	if len(s) == 5 {
		promo = PieceFromChar(s[4]).Type
		if promo == NoPieceType || promo == Pawn || promo == King {
			return NoMove, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
	}

	if b.IsEmpty(from) {
		return NoMove, fmt.Errorf("no piece at %s", from)
	}
	for _, m := range b.MoveCandidates(from) {
		if m.To == to && m.Promo == promo {
			return m, nil
		}
	}
	return NoMove, fmt.Errorf("no such move for the piece on %s: %s", from, s)
}
