package game

import "github.com/hailam/chessrules/internal/board"

// EndReason says why a game finished.
type EndReason uint8

const (
	NoReason EndReason = iota
	Checkmate
	Stalemate
	FiftyMoveRule
	InsufficientMaterial
	ThreefoldRepetition
	Resignation
)

// String returns a human-readable reason.
func (r EndReason) String() string {
	switch r {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case FiftyMoveRule:
		return "fifty-move rule"
	case InsufficientMaterial:
		return "insufficient material"
	case ThreefoldRepetition:
		return "threefold repetition"
	case Resignation:
		return "resignation"
	default:
		return "none"
	}
}

// Result is the outcome of a finished game. Winner is board.NoColor for a draw.
type Result struct {
	Winner board.Color
	Reason EndReason
}

// Win creates a decisive result.
func Win(winner board.Color, reason EndReason) Result {
	return Result{Winner: winner, Reason: reason}
}

// Draw creates a drawn result.
func Draw(reason EndReason) Result {
	return Result{Winner: board.NoColor, Reason: reason}
}

// IsDraw reports whether nobody won.
func (r Result) IsDraw() bool {
	return r.Winner == board.NoColor
}

// String describes the result, e.g. "White wins by checkmate".
func (r Result) String() string {
	if r.IsDraw() {
		return "Draw by " + r.Reason.String()
	}
	return r.Winner.String() + " wins by " + r.Reason.String()
}
