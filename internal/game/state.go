// Package game runs a chess game on top of the board rules: whose turn it is,
// the no-progress clock, repetition counting and the end-of-game decision.
package game

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hailam/chessrules/internal/board"
)

// noProgressLimit is the number of half-moves without a capture or pawn move
// after which the game is drawn.
const noProgressLimit = 100

// State is a single game in progress. It is not safe for concurrent use; see
// Session for a locked wrapper.
type State struct {
	board   *board.Board
	current board.Color
	result  *Result

	halfMoveClock int
	plies         int
	key           string
	repetitions   map[string]int

	log zerolog.Logger
}

// Option configures a State.
type Option func(*State)

// WithLogger attaches a logger for move and game-end events.
func WithLogger(l zerolog.Logger) Option {
	return func(s *State) {
		s.log = l
	}
}

// New starts a game on b with start to move. The game takes ownership of b.
// A board that is already finished (no legal moves, or dead material) starts
// with its result set.
func New(start board.Color, b *board.Board, opts ...Option) *State {
	s := &State{
		board:       b,
		current:     start,
		repetitions: make(map[string]int),
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.key = board.EncodeKey(b, start)
	s.repetitions[s.key] = 1
	s.checkForGameOver()
	return s
}

// NewStandard starts a game from the initial position.
func NewStandard(opts ...Option) *State {
	return New(board.White, board.Initial(), opts...)
}

// FromKey starts a game from a position key.
func FromKey(key string, opts ...Option) (*State, error) {
	b, side, err := board.DecodeKey(key)
	if err != nil {
		return nil, fmt.Errorf("start game: %w", err)
	}
	return New(side, b, opts...), nil
}

// Board returns the live board. Callers must not modify it.
func (s *State) Board() *board.Board { return s.board }

// CurrentPlayer returns the side to move.
func (s *State) CurrentPlayer() board.Color { return s.current }

// HalfMoveClock returns the half-moves since the last capture or pawn move.
func (s *State) HalfMoveClock() int { return s.halfMoveClock }

// Plies returns the number of half-moves played.
func (s *State) Plies() int { return s.plies }

// PositionKey returns the key of the current position.
func (s *State) PositionKey() string { return s.key }

// Repetitions returns how often the current position has occurred since the
// last capture or pawn move.
func (s *State) Repetitions() int { return s.repetitions[s.key] }

// InCheck reports whether the side to move is in check.
func (s *State) InCheck() bool { return s.board.IsInCheck(s.current) }

// IsGameOver reports whether a result has been decided.
func (s *State) IsGameOver() bool { return s.result != nil }

// Result returns the result once the game is over.
func (s *State) Result() (Result, bool) {
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

// LegalMoves returns the legal moves of the piece on sq. It is empty when the
// square is empty, holds an opponent piece, or the game is over.
func (s *State) LegalMoves(sq board.Square) []board.Move {
	if s.result != nil {
		return nil
	}
	p := s.board.At(sq)
	if p.IsEmpty() || p.Color != s.current {
		return nil
	}
	return s.board.LegalMoves(sq)
}

// AllLegalMoves returns every legal move of the side to move.
func (s *State) AllLegalMoves() []board.Move {
	if s.result != nil {
		return nil
	}
	return s.board.LegalMovesFor(s.current)
}

// FindMove looks up the legal move from one square to another. promo selects
// the promotion piece and is ignored for other moves. A castle may be given
// either as the king's two-square step or as the king moving onto its rook.
func (s *State) FindMove(from, to board.Square, promo board.PieceType) (board.Move, bool) {
	for _, m := range s.LegalMoves(from) {
		target := m.To
		if m.IsCastle() {
			if rookFrom, _, _ := m.RookSquares(); rookFrom == to {
				target = to
			}
		}
		if target != to {
			continue
		}
		if m.Kind == board.Promotion && m.Promo != promo {
			continue
		}
		return m, true
	}
	return board.NoMove, false
}

// TryMove plays m if it is legal for the side to move.
func (s *State) TryMove(m board.Move) error {
	if s.result != nil {
		return ErrGameOver
	}
	if p := s.board.At(m.From); !p.IsEmpty() && p.Color != s.current {
		return fmt.Errorf("%w: %s", ErrNotYourTurn, m)
	}
	if !s.isLegal(m) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	s.play(m)
	return nil
}

// MakeMove plays m. It panics if the game is over or m is not one of the
// legal moves of the side to move; use TryMove for unchecked input.
func (s *State) MakeMove(m board.Move) {
	if err := s.TryMove(m); err != nil {
		panic(fmt.Sprintf("game: MakeMove: %v", err))
	}
}

// Resign ends the game with the opponent of c as winner.
func (s *State) Resign(c board.Color) error {
	if s.result != nil {
		return ErrGameOver
	}
	s.finish(Win(c.Other(), Resignation))
	return nil
}

func (s *State) isLegal(m board.Move) bool {
	for _, lm := range s.LegalMoves(m.From) {
		if lm == m {
			return true
		}
	}
	return false
}

func (s *State) play(m board.Move) {
	mover := s.current
	s.board.ClearPawnSkip(mover)

	if m.Execute(s.board) {
		s.halfMoveClock = 0
		clear(s.repetitions)
	} else {
		s.halfMoveClock++
	}

	s.current = mover.Other()
	s.plies++
	s.key = board.EncodeKey(s.board, s.current)
	s.repetitions[s.key]++

	s.log.Debug().
		Str("move", m.String()).
		Str("side", mover.String()).
		Int("halfmove_clock", s.halfMoveClock).
		Str("key", s.key).
		Msg("move played")

	s.checkForGameOver()
}

// checkForGameOver decides the result, in priority order: no legal moves
// (checkmate or stalemate), insufficient material, the fifty-move rule, then
// threefold repetition.
func (s *State) checkForGameOver() {
	switch {
	case !s.board.HasLegalMove(s.current):
		if s.board.IsInCheck(s.current) {
			s.finish(Win(s.current.Other(), Checkmate))
		} else {
			s.finish(Draw(Stalemate))
		}
	case s.board.InsufficientMaterial():
		s.finish(Draw(InsufficientMaterial))
	case s.halfMoveClock >= noProgressLimit:
		s.finish(Draw(FiftyMoveRule))
	case s.repetitions[s.key] >= 3:
		s.finish(Draw(ThreefoldRepetition))
	}
}

func (s *State) finish(r Result) {
	s.result = &r
	ev := s.log.Info().Str("reason", r.Reason.String()).Int("plies", s.plies)
	if !r.IsDraw() {
		ev = ev.Str("winner", r.Winner.String())
	}
	ev.Msg("game over")
}
