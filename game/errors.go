package game

import "errors"

var (
	// ErrInvalidMove is returned when the target cell is occupied, off the board
	// or captures nothing. It is never fatal, the caller picks another move.
	ErrInvalidMove = errors.New("invalid move")

	ErrOffBoard = errors.New("position off board")
)
