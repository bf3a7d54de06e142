package game

import "errors"

var (
	ErrGameOver     = errors.New("game is over")
	ErrIllegalMove  = errors.New("illegal move")
	ErrNotYourTurn  = errors.New("not your turn")
	ErrGameNotFound = errors.New("game not found")
)
