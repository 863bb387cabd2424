package game

// Special squares, shown for the top-left quadrant (the rest is mirrored):
//
//	  0 1 2
//	0 K C .
//	1 C X .
//	2 . . .
//
// K corner, C C-square, X X-square. Edges are the remaining border cells.

func IsCorner(x, y int) bool {
	return (x == 0 || x == Size-1) && (y == 0 || y == Size-1)
}

// IsEdge reports border cells that are not corners
func IsEdge(x, y int) bool {
	if IsCorner(x, y) {
		return false
	}
	return x == 0 || y == 0 || x == Size-1 || y == Size-1
}

func IsCSquare(x, y int) bool {
	switch {
	case (y == 0 || y == Size-1) && (x == 1 || x == Size-2):
		return true
	case (x == 0 || x == Size-1) && (y == 1 || y == Size-2):
		return true
	}
	return false
}

func IsXSquare(x, y int) bool {
	return (x == 1 || x == Size-2) && (y == 1 || y == Size-2)
}

// IsSpecial is true for corners, C-squares and X-squares
func IsSpecial(x, y int) bool {
	return IsCorner(x, y) || IsCSquare(x, y) || IsXSquare(x, y)
}

// cornerAround reports whether any corner adjacent to (x, y) holds tile
func (b *Board) cornerAround(x, y int, tile Tile) bool {
	for _, d := range directions {
		nx, ny := x+d.X, y+d.Y
		if IsOnBoard(nx, ny) && IsCorner(nx, ny) && b[nx][ny] == tile {
			return true
		}
	}
	return false
}
