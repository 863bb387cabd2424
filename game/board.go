package game

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Board is indexed [x][y]. It is a plain value so assigning it clones it.
type Board [Size][Size]Tile

var directions = [8]Position{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

// NewBoard returns the canonical starting position
func NewBoard() Board {
	var b Board
	b.Reset()
	return b
}

// Reset blanks the board and places the four centre tiles
func (b *Board) Reset() {
	*b = Board{}
	b[3][3] = White
	b[3][4] = Black
	b[4][3] = Black
	b[4][4] = White
}

func IsOnBoard(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}

// At returns the tile at (x, y), Empty when off the board
func (b *Board) At(x, y int) Tile {
	if !IsOnBoard(x, y) {
		return Empty
	}
	return b[x][y]
}

// IsValidMove reports the tiles that placing tile at (x, y) would capture.
// The board is not modified.
func (b *Board) IsValidMove(tile Tile, x, y int) ([]Position, bool) {
	if !IsOnBoard(x, y) || b[x][y] != Empty {
		return nil, false
	}
	other := tile.Opponent()

	var captured []Position
	for _, d := range directions {
		cx, cy := x+d.X, y+d.Y
		if !IsOnBoard(cx, cy) || b[cx][cy] != other {
			continue
		}
		for IsOnBoard(cx, cy) && b[cx][cy] == other {
			cx += d.X
			cy += d.Y
		}
		if !IsOnBoard(cx, cy) || b[cx][cy] != tile {
			continue
		}
		// Walk back towards the start collecting the run
		for {
			cx -= d.X
			cy -= d.Y
			if cx == x && cy == y {
				break
			}
			captured = append(captured, Position{cx, cy})
		}
	}

	if len(captured) == 0 {
		return nil, false
	}
	return captured, true
}

// MakeMove places tile at (x, y) and flips every captured tile. On an invalid
// move the board is left untouched and ErrInvalidMove is returned.
func (b *Board) MakeMove(tile Tile, x, y int) ([]Position, error) {
	captured, ok := b.IsValidMove(tile, x, y)
	if !ok {
		return nil, fmt.Errorf("%w: %s at %s", ErrInvalidMove, tile, Position{x, y})
	}

	b[x][y] = tile
	for _, p := range captured {
		b[p.X][p.Y] = tile
	}
	return captured, nil
}

// ValidMoves scans the board row by row (y outer, x inner) and returns every
// legal move for tile together with its capture count. special is set when any
// legal move lands on a corner, C-square or X-square.
func (b *Board) ValidMoves(tile Tile) (moves []Position, captures []int, special bool) {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			captured, ok := b.IsValidMove(tile, x, y)
			if !ok {
				continue
			}
			moves = append(moves, Position{x, y})
			captures = append(captures, len(captured))
			if !special && IsSpecial(x, y) {
				special = true
			}
		}
	}
	return moves, captures, special
}

// HasMoves is a cheaper ValidMoves for callers that only need to know
// whether tile must pass.
func (b *Board) HasMoves(tile Tile) bool {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if _, ok := b.IsValidMove(tile, x, y); ok {
				return true
			}
		}
	}
	return false
}

func (b *Board) Count(tile Tile) int {
	n := 0
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if b[x][y] == tile {
				n++
			}
		}
	}
	return n
}

func (b *Board) Score() Score {
	return Score{Black: b.Count(Black), White: b.Count(White)}
}

func (b *Board) Full() bool {
	return b.Count(Empty) == 0
}

func (b *Board) Hash() StateHash {
	var cells [Size * Size]byte
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			cells[x*Size+y] = byte(b[x][y])
		}
	}
	hasher := fnv.New64a()
	hasher.Write(cells[:])
	return StateHash(hasher.Sum64())
}

func (b *Board) String() string {
	return b.Render(nil)
}

// Render draws the board as text. Cells listed in hints are marked with '*'.
func (b *Board) Render(hints []Position) string {
	marked := make(map[Position]bool, len(hints))
	for _, h := range hints {
		marked[h] = true
	}

	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for y := 0; y < Size; y++ {
		fmt.Fprintf(&sb, "%d", y+1)
		for x := 0; x < Size; x++ {
			sb.WriteByte(' ')
			switch {
			case b[x][y] == Black:
				sb.WriteByte('X')
			case b[x][y] == White:
				sb.WriteByte('O')
			case marked[Position{x, y}]:
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
