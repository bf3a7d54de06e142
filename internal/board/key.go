package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// InitialKey is the position key of the standard starting position with white
// to move.
const InitialKey = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"

// ErrInvalidKey is wrapped by every position key decoding error.
var ErrInvalidKey = errors.New("invalid position key")

// EncodeKey returns the position key used to detect repetitions: piece
// placement, side to move, castling rights and en passant target, separated by
// single spaces. The en passant target only appears when side can actually
// capture en passant.
func EncodeKey(b *Board, side Color) string {
	var sb strings.Builder
	sb.WriteString(EncodePlacement(b))

	sb.WriteByte(' ')
	if side == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(b.CastlingRights().String())

	sb.WriteByte(' ')
	if target, ok := b.EnPassantTarget(side); ok {
		sb.WriteString(target.String())
	} else {
		sb.WriteByte('-')
	}

	return sb.String()
}

// EncodePlacement returns the piece placement field: rows from row 0 (rank 8)
// down, '/' between rows, runs of empty squares as digits.
func EncodePlacement(b *Board) string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			p := b.squares[row][col]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// DecodePlacement parses a placement field. Pieces standing where the initial
// layout has the same piece are unmoved; everything else is marked moved.
func DecodePlacement(placement string) (*Board, error) {
	rows := strings.Split(placement, "/")
	if len(rows) != 8 {
		return nil, fmt.Errorf("%w: need 8 rows, got %d", ErrInvalidKey, len(rows))
	}

	b := New()
	initial := Initial()
	for row, rowStr := range rows {
		col := 0
		for i := 0; i < len(rowStr); i++ {
			c := rowStr[i]
			if col > 7 {
				return nil, fmt.Errorf("%w: too many squares in rank %d", ErrInvalidKey, 8-row)
			}
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			p := PieceFromChar(c)
			if p.IsEmpty() {
				return nil, fmt.Errorf("%w: invalid piece character: %c", ErrInvalidKey, c)
			}
			sq := Square{row, col}
			home := initial.At(sq)
			p.Moved = !home.Is(p.Type, p.Color)
			b.Set(sq, p)
			col++
		}
		if col != 8 {
			return nil, fmt.Errorf("%w: invalid number of squares in rank %d: got %d", ErrInvalidKey, 8-row, col)
		}
	}
	return b, nil
}

// DecodeKey parses a position key into a board and the side to move. Trailing
// move counters, as found in FEN strings, are accepted and ignored.
//
// Castling letters decide whether kings and corner rooks count as unmoved, and
// an en passant target becomes the skip marker of the side that just moved.
func DecodeKey(key string) (*Board, Color, error) {
	parts := strings.Fields(key)
	if len(parts) < 4 || len(parts) > 6 {
		return nil, NoColor, fmt.Errorf("%w: need 4 fields, got %d", ErrInvalidKey, len(parts))
	}

	b, err := DecodePlacement(parts[0])
	if err != nil {
		return nil, NoColor, err
	}

	var side Color
	switch parts[1] {
	case "w":
		side = White
	case "b":
		side = Black
	default:
		return nil, NoColor, fmt.Errorf("%w: invalid side to move: %s", ErrInvalidKey, parts[1])
	}

	rights, err := parseCastlingRights(parts[2])
	if err != nil {
		return nil, NoColor, err
	}
	if err := applyCastlingRights(b, rights); err != nil {
		return nil, NoColor, err
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, NoColor, fmt.Errorf("%w: invalid en passant square: %s", ErrInvalidKey, parts[3])
		}
		mover := side.Other()
		// The skipped square sits on row 5 after a white double step and
		// row 2 after a black one.
		wantRow := 5
		if mover == Black {
			wantRow = 2
		}
		if sq.Row != wantRow {
			return nil, NoColor, fmt.Errorf("%w: en passant square %s impossible with %s to move", ErrInvalidKey, sq, side)
		}
		// The pawn stands one step past the skipped square and both the
		// skipped square and its origin are empty.
		pawnSq := sq.Add(mover.forward())
		originSq := sq.Add(mover.forward().Scale(-1))
		if !b.At(pawnSq).Is(Pawn, mover) || !b.IsEmpty(sq) || !b.IsEmpty(originSq) {
			return nil, NoColor, fmt.Errorf("%w: en passant square %s without a %s pawn that just double-stepped", ErrInvalidKey, sq, mover)
		}
		b.SetPawnSkip(mover, sq)
	}

	return b, side, nil
}

func parseCastlingRights(s string) (CastlingRights, error) {
	if s == "-" {
		return NoCastling, nil
	}
	cr := NoCastling
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'K':
			cr |= WhiteKingSideCastle
		case 'Q':
			cr |= WhiteQueenSideCastle
		case 'k':
			cr |= BlackKingSideCastle
		case 'q':
			cr |= BlackQueenSideCastle
		default:
			return NoCastling, fmt.Errorf("%w: invalid castling character: %c", ErrInvalidKey, s[i])
		}
	}
	return cr, nil
}

// applyCastlingRights sets the moved flags of kings and corner rooks so that
// b.CastlingRights() reports exactly cr.
func applyCastlingRights(b *Board, cr CastlingRights) error {
	for _, c := range [2]Color{White, Black} {
		row := c.homeRow()
		kingSq := Square{row, 4}
		kingHome := b.At(kingSq).Is(King, c)
		anyRight := false

		for _, kingSide := range [2]bool{true, false} {
			corner := Square{row, 7}
			if !kingSide {
				corner = Square{row, 0}
			}
			want := cr.CanCastle(c, kingSide)
			rook := b.At(corner)
			if want && (!kingHome || !rook.Is(Rook, c)) {
				return fmt.Errorf("%w: castling right %s without king and rook at home", ErrInvalidKey, castleFlag(c, kingSide))
			}
			if rook.Is(Rook, c) {
				rook.Moved = !want
				b.Set(corner, rook)
			}
			anyRight = anyRight || want
		}

		if kingHome {
			king := b.At(kingSq)
			king.Moved = !anyRight
			b.Set(kingSq, king)
		}
	}
	return nil
}
