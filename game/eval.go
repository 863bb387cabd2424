package game

// EvaluatePositional scores the board from ai's perspective using mobility,
// square weights and how surrounded each cell is.
func EvaluatePositional(b *Board, ai Tile, aiMoves []Position) int {
	opponent := ai.Opponent()
	opponentMoves, _, _ := b.ValidMoves(opponent)

	value := valueOfOpponentMoves(len(opponentMoves))
	value += valueOfPossibleMoves(len(aiMoves))

	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			// Applies to every cell, including empty and opponent cells
			value += b.surroundedBy(x, y, ai)

			switch b[x][y] {
			case ai:
				value += ownSquareValue(b, x, y, ai)
			case opponent:
				value += opponentSquareValue(x, y)
			}
		}
	}
	return value
}

// The more moves ai has the better
func valueOfPossibleMoves(n int) int {
	switch {
	case n == 0:
		return -50
	case n == 1:
		return -10
	case n <= 5:
		return 10
	case n <= 10:
		return 20
	default:
		return 50
	}
}

// The fewer moves the opponent has the better
func valueOfOpponentMoves(n int) int {
	switch {
	case n == 0:
		return 50
	case n == 1:
		return 10
	case n <= 5:
		return 10
	case n <= 10:
		return -10
	default:
		return -50
	}
}

func ownSquareValue(b *Board, x, y int, ai Tile) int {
	value := 1
	if IsCorner(x, y) {
		value += 100
	}
	if IsEdge(x, y) {
		value += 20
	}
	if IsCSquare(x, y) {
		if b.cornerAround(x, y, ai) {
			value += 20
		} else {
			value -= 50
		}
	}
	if IsXSquare(x, y) {
		if b.cornerAround(x, y, ai) {
			value += 20
		} else {
			value -= 90
		}
	}
	return value
}

// Opponent C and X bonuses do not depend on who holds the corner
func opponentSquareValue(x, y int) int {
	value := -1
	if IsCorner(x, y) {
		value -= 100
	}
	if IsEdge(x, y) {
		value -= 10
	}
	if IsCSquare(x, y) {
		value += 50
	}
	if IsXSquare(x, y) {
		value += 90
	}
	return value
}

// surroundedBy rewards on-board neighbours held by tile (+5) and penalises
// every other on-board neighbour, opponent or empty (-2).
func (b *Board) surroundedBy(x, y int, tile Tile) int {
	value := 0
	for _, d := range directions {
		nx, ny := x+d.X, y+d.Y
		if !IsOnBoard(nx, ny) {
			continue
		}
		if b[nx][ny] == tile {
			value += 5
		} else {
			value -= 2
		}
	}
	return value
}
