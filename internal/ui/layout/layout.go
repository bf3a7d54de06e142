// Package layout maps board squares to pixels and back.
package layout

import "github.com/hailam/chessrules/internal/board"

// Geometry describes how the board is laid out on screen. Unflipped, white
// sits at the bottom: row 0 (rank 8) is drawn at the top.
type Geometry struct {
	SquareSize int
	Flipped    bool
}

// BoardSize returns the board side length in pixels.
func (g Geometry) BoardSize() int {
	return 8 * g.SquareSize
}

// Origin returns the top-left pixel of sq.
func (g Geometry) Origin(sq board.Square) (x, y int) {
	row, col := sq.Row, sq.Col
	if g.Flipped {
		row, col = 7-row, 7-col
	}
	return col * g.SquareSize, row * g.SquareSize
}

// Center returns the center pixel of sq.
func (g Geometry) Center(sq board.Square) (x, y int) {
	x, y = g.Origin(sq)
	return x + g.SquareSize/2, y + g.SquareSize/2
}

// ToSquare returns the square under pixel (x, y), if any.
func (g Geometry) ToSquare(x, y int) (board.Square, bool) {
	if g.SquareSize <= 0 || x < 0 || y < 0 || x >= g.BoardSize() || y >= g.BoardSize() {
		return board.NoSquare, false
	}
	row, col := y/g.SquareSize, x/g.SquareSize
	if g.Flipped {
		row, col = 7-row, 7-col
	}
	return board.Square{Row: row, Col: col}, true
}
