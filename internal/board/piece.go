package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	NoColor
)

// Other returns the opposite color. NoColor has no opponent.
func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColor
	}
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// ParseColor accepts "white"/"w" and "black"/"b" in either case.
func ParseColor(s string) (Color, bool) {
	switch s {
	case "white", "White", "WHITE", "w", "W":
		return White, true
	case "black", "Black", "BLACK", "b", "B":
		return Black, true
	default:
		return NoColor, false
	}
}

// forward is the step a pawn of this color advances by.
func (c Color) forward() Direction {
	if c == White {
		return North
	}
	return South
}

// homeRow is the back rank row of the color.
func (c Color) homeRow() int {
	if c == White {
		return 7
	}
	return 0
}

// PieceType represents the kind of a chess piece. The zero value is NoPieceType
// so that a zero Piece reads as an empty square.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PromotionTypes lists the kinds a pawn may promote to, in generation order.
var PromotionTypes = [4]PieceType{Knight, Bishop, Rook, Queen}

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the key character for the piece type (lowercase).
func (pt PieceType) Char() byte {
	chars := []byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}
	if pt > King {
		return ' '
	}
	return chars[pt]
}

// Piece is a kind, a color and whether the piece has moved since the game began.
// Pieces are plain values: copying a Board copies its pieces.
type Piece struct {
	Type  PieceType
	Color Color
	Moved bool
}

// NoPiece is the content of an empty square.
var NoPiece = Piece{Type: NoPieceType, Color: NoColor}

// NewPiece creates an unmoved piece.
func NewPiece(pt PieceType, c Color) Piece {
	if pt == NoPieceType || pt > King || c >= NoColor {
		return NoPiece
	}
	return Piece{Type: pt, Color: c}
}

// IsEmpty reports whether p stands for an empty square.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

// Is reports whether p has the given kind and color, ignoring the moved flag.
func (p Piece) Is(pt PieceType, c Color) bool {
	return p.Type == pt && p.Color == c
}

// Char returns the key character: uppercase for white, lowercase for black.
func (p Piece) Char() byte {
	c := p.Type.Char()
	if p.Color == White && c != ' ' {
		return c - 'a' + 'A'
	}
	return c
}

// String returns the key character for the piece.
func (p Piece) String() string {
	return string(p.Char())
}

// PieceFromChar converts a key character to an unmoved Piece.
func PieceFromChar(c byte) Piece {
	color := Black
	if c >= 'A' && c <= 'Z' {
		color = White
		c = c - 'A' + 'a'
	}
	switch c {
	case 'p':
		return NewPiece(Pawn, color)
	case 'n':
		return NewPiece(Knight, color)
	case 'b':
		return NewPiece(Bishop, color)
	case 'r':
		return NewPiece(Rook, color)
	case 'q':
		return NewPiece(Queen, color)
	case 'k':
		return NewPiece(King, color)
	default:
		return NoPiece
	}
}
