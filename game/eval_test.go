package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMobilityBuckets(t *testing.T) {
	own := map[int]int{0: -50, 1: -10, 2: 10, 5: 10, 6: 20, 10: 20, 11: 50, 20: 50}
	for n, want := range own {
		require.Equal(t, want, valueOfPossibleMoves(n), "own mobility %d", n)
	}

	opp := map[int]int{0: 50, 1: 10, 2: 10, 5: 10, 6: -10, 10: -10, 11: -50, 20: -50}
	for n, want := range opp {
		require.Equal(t, want, valueOfOpponentMoves(n), "opponent mobility %d", n)
	}
}

func TestSquarePredicates(t *testing.T) {
	corners, edges, cs, xs := 0, 0, 0, 0
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if IsCorner(x, y) {
				corners++
			}
			if IsEdge(x, y) {
				edges++
			}
			if IsCSquare(x, y) {
				cs++
			}
			if IsXSquare(x, y) {
				xs++
			}
		}
	}
	require.Equal(t, 4, corners)
	require.Equal(t, 24, edges)
	require.Equal(t, 8, cs)
	require.Equal(t, 4, xs)

	require.True(t, IsCSquare(1, 0))
	require.True(t, IsCSquare(0, 6))
	require.True(t, IsXSquare(6, 6))
	require.False(t, IsXSquare(2, 2))
	require.True(t, IsEdge(1, 0), "C-squares are also edges")
}

func TestSurroundedBy(t *testing.T) {
	t.Run("corner of an empty board", func(t *testing.T) {
		var b Board
		require.Equal(t, -6, b.surroundedBy(0, 0, Black))
	})

	t.Run("mixed neighbours", func(t *testing.T) {
		var b Board
		b[2][2] = Black
		b[3][2] = Black
		b[4][4] = White
		// 2 own neighbours, 6 other on-board neighbours
		require.Equal(t, 2*5-6*2, b.surroundedBy(3, 3, Black))
	})
}

func TestEvaluatePositional(t *testing.T) {
	t.Run("empty board", func(t *testing.T) {
		var b Board
		// +50 opponent has no moves, -50 ai has no moves, every on-board
		// neighbour of every cell is empty
		require.Equal(t, -840, EvaluatePositional(&b, Black, nil))
	})

	t.Run("start position", func(t *testing.T) {
		b := NewBoard()
		moves, _, _ := b.ValidMoves(Black)
		require.Equal(t, -708, EvaluatePositional(&b, Black, moves))

		moves, _, _ = b.ValidMoves(White)
		require.Equal(t, -708, EvaluatePositional(&b, White, moves))
	})

	t.Run("after the first move", func(t *testing.T) {
		b := NewBoard()
		_, err := b.MakeMove(Black, 3, 2)
		require.NoError(t, err)

		moves, _, _ := b.ValidMoves(Black)
		require.Equal(t, -593, EvaluatePositional(&b, Black, moves))

		moves, _, _ = b.ValidMoves(White)
		require.Equal(t, -767, EvaluatePositional(&b, White, moves))
	})

	t.Run("corner adjacency rewards C and X squares", func(t *testing.T) {
		var b Board
		b[0][0] = Black
		b[1][0] = Black
		b[1][1] = Black
		b[6][0] = White
		b[6][6] = White
		require.Equal(t, -437, EvaluatePositional(&b, Black, nil))
	})

	t.Run("does not modify the board", func(t *testing.T) {
		b := NewBoard()
		before := b
		EvaluatePositional(&b, White, nil)
		require.Equal(t, before, b)
	})
}
