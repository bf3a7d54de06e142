package board

// Counting is a tally of the pieces on a board by color and kind.
type Counting struct {
	counts [2][King + 1]int
	total  int
}

// Count returns the number of pieces of kind pt and color c.
func (m Counting) Count(c Color, pt PieceType) int {
	if c >= NoColor || pt > King {
		return 0
	}
	return m.counts[c][pt]
}

// Total returns the number of pieces on the board.
func (m Counting) Total() int {
	return m.total
}

// CountPieces tallies the pieces on b.
func (b *Board) CountPieces() Counting {
	var m Counting
	for _, sq := range b.PiecePositions() {
		p := b.At(sq)
		m.counts[p.Color][p.Type]++
		m.total++
	}
	return m
}

// InsufficientMaterial reports the dead positions recognised as draws: bare
// kings, a single minor piece against a bare king, and one bishop each where
// both bishops stand on squares of the same shade.
func (b *Board) InsufficientMaterial() bool {
	m := b.CountPieces()
	if m.Count(White, King) != 1 || m.Count(Black, King) != 1 {
		return false
	}

	switch m.Total() {
	case 2:
		return true
	case 3:
		return m.Count(White, Knight)+m.Count(Black, Knight) == 1 ||
			m.Count(White, Bishop)+m.Count(Black, Bishop) == 1
	case 4:
		if m.Count(White, Bishop) != 1 || m.Count(Black, Bishop) != 1 {
			return false
		}
		wb, _ := b.FindPiece(Bishop, White)
		bb, _ := b.FindPiece(Bishop, Black)
		return wb.Color() == bb.Color()
	default:
		return false
	}
}
