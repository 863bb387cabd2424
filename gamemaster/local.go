package gamemaster

import (
	"errors"
	"fmt"
	"othello/game"
)

var ErrGameOver = errors.New("game is over - no moves allowed")

// Update records one accepted move
type Update struct {
	Step     int
	Tile     game.Tile
	Position game.Position
	Captured []game.Position
	Passed   bool // The opponent had no reply and the same side moves again
	Hash     game.StateHash
}

// Session holds the board of one game and enforces turn order. A side
// without a legal move passes; when neither side can move the game is over.
type Session struct {
	board   game.Board
	turn    game.Tile
	over    bool
	history []Update
}

// NewLocalSession starts a game from the canonical position with black to move
func NewLocalSession() *Session {
	return NewSession(game.Black)
}

func NewSession(first game.Tile) *Session {
	return NewSessionFrom(game.NewBoard(), first)
}

// NewSessionFrom resumes play on an arbitrary board
func NewSessionFrom(b game.Board, turn game.Tile) *Session {
	if turn != game.Black && turn != game.White {
		panic("session needs black or white to move")
	}
	s := &Session{board: b, turn: turn}
	if !s.board.HasMoves(turn) {
		if s.board.HasMoves(turn.Opponent()) {
			s.turn = turn.Opponent()
		} else {
			s.over = true
		}
	}
	return s
}

// Play applies a move for the side to move
func (s *Session) Play(pos game.Position) (Update, error) {
	if s.over {
		return Update{}, ErrGameOver
	}

	captured, err := s.board.MakeMove(s.turn, pos.X, pos.Y)
	if err != nil {
		return Update{}, fmt.Errorf("illegal move: %w", err)
	}

	u := Update{
		Step:     len(s.history) + 1,
		Tile:     s.turn,
		Position: pos,
		Captured: captured,
		Hash:     s.board.Hash(),
	}

	next := s.turn.Opponent()
	switch {
	case s.board.HasMoves(next):
		s.turn = next
	case s.board.HasMoves(s.turn):
		u.Passed = true
	default:
		s.over = true
	}

	s.history = append(s.history, u)
	return u, nil
}

// Turn returns the side to move, Empty once the game is over
func (s *Session) Turn() game.Tile {
	if s.over {
		return game.Empty
	}
	return s.turn
}

func (s *Session) Over() bool {
	return s.over
}

// Board returns a copy of the current board
func (s *Session) Board() game.Board {
	return s.board
}

func (s *Session) Score() game.Score {
	return s.board.Score()
}

// Winner returns the side with more tiles, Empty on a tie or while playing
func (s *Session) Winner() game.Tile {
	if !s.over {
		return game.Empty
	}
	score := s.board.Score()
	switch {
	case score.Black > score.White:
		return game.Black
	case score.White > score.Black:
		return game.White
	default:
		return game.Empty
	}
}

func (s *Session) LegalMoves() []game.Position {
	if s.over {
		return nil
	}
	moves, _, _ := s.board.ValidMoves(s.turn)
	return moves
}

func (s *Session) History() []Update {
	history := make([]Update, len(s.history))
	copy(history, s.history)
	return history
}
