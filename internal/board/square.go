// Package board implements the chess rules on an 8x8 mailbox board: per-kind
// move generation, move execution and legality testing.
package board

import "fmt"

// Square is a (row, column) coordinate. Row 0 is the 8th rank (black's back
// rank) and column 0 is the a-file. Squares off the board are representable;
// use Inside before reading the board.
type Square struct {
	Row, Col int
}

// NoSquare is a square that never lies on the board.
var NoSquare = Square{Row: -1, Col: -1}

// Direction is a (row delta, column delta) step.
type Direction struct {
	Rows, Cols int
}

// Compass directions. North points toward row 0.
var (
	North     = Direction{-1, 0}
	South     = Direction{1, 0}
	East      = Direction{0, 1}
	West      = Direction{0, -1}
	NorthEast = North.Add(East)
	NorthWest = North.Add(West)
	SouthEast = South.Add(East)
	SouthWest = South.Add(West)
)

var (
	rookDirections   = []Direction{North, South, East, West}
	bishopDirections = []Direction{NorthEast, NorthWest, SouthEast, SouthWest}
	queenDirections  = append(append([]Direction{}, rookDirections...), bishopDirections...)
	knightSteps      = []Direction{
		North.Scale(2).Add(East), North.Scale(2).Add(West),
		South.Scale(2).Add(East), South.Scale(2).Add(West),
		East.Scale(2).Add(North), East.Scale(2).Add(South),
		West.Scale(2).Add(North), West.Scale(2).Add(South),
	}
)

// Add composes two directions.
func (d Direction) Add(o Direction) Direction {
	return Direction{d.Rows + o.Rows, d.Cols + o.Cols}
}

// Scale multiplies a direction by n.
func (d Direction) Scale(n int) Direction {
	return Direction{d.Rows * n, d.Cols * n}
}

// Add offsets the square by d.
func (sq Square) Add(d Direction) Square {
	return Square{sq.Row + d.Rows, sq.Col + d.Cols}
}

// Inside reports whether sq lies on the 8x8 board.
func (sq Square) Inside() bool {
	return sq.Row >= 0 && sq.Row < 8 && sq.Col >= 0 && sq.Col < 8
}

// Color returns the square shade: White for light squares, Black for dark.
// a8 (row 0, col 0) is light.
func (sq Square) Color() Color {
	if (sq.Row+sq.Col)%2 == 0 {
		return White
	}
	return Black
}

// Rank returns the rank number 1-8 as used in algebraic notation.
func (sq Square) Rank() int {
	return 8 - sq.Row
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if !sq.Inside() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+sq.Col, sq.Rank())
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}

	col := int(s[0]) - 'a'
	rank := int(s[1]) - '0'

	sq := Square{Row: 8 - rank, Col: col}
	if !sq.Inside() {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}
	return sq, nil
}

// MustSquare is ParseSquare for literals known to be valid.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}
