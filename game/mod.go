package game

import "fmt"

const Size = 8 // Board width and height

// Tile is the state of a single board cell
type Tile uint8

const (
	Empty Tile = iota
	Black
	White
)

// Opponent returns the other colour. Empty has no opponent and maps to itself.
func (t Tile) Opponent() Tile {
	switch t {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (t Tile) String() string {
	switch t {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// Position is a cell coordinate, x is the column and y the row
type Position struct {
	X int
	Y int
}

// String formats the position in algebraic notation, e.g. "d3" for (3, 2)
func (p Position) String() string {
	if !IsOnBoard(p.X, p.Y) {
		return fmt.Sprintf("(%d,%d)", p.X, p.Y)
	}
	return fmt.Sprintf("%c%d", 'a'+p.X, p.Y+1)
}

// ParsePosition is the inverse of Position.String
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrOffBoard, s)
	}
	col, row := s[0], s[1]
	if col >= 'A' && col <= 'H' {
		col += 'a' - 'A'
	}
	x, y := int(col)-'a', int(row)-'1'
	if !IsOnBoard(x, y) {
		return Position{}, fmt.Errorf("%w: %q", ErrOffBoard, s)
	}
	return Position{X: x, Y: y}, nil
}

// Score holds tile counts per colour. It is always derived from a board.
type Score struct {
	Black int
	White int
}

func (s Score) Of(tile Tile) int {
	switch tile {
	case Black:
		return s.Black
	case White:
		return s.White
	default:
		return 0
	}
}

type StateHash uint64

// Evaluates a position from ai's perspective, positive values favour ai.
// aiMoves are the legal moves enumerated at the node being scored.
type Evaluate func(b *Board, ai Tile, aiMoves []Position) int
