package searcher

import (
	"othello/game"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func pos(x, y int) game.Position {
	return game.Position{X: x, Y: y}
}

func TestOrder(t *testing.T) {
	t.Run("sorts by captures, stable on ties", func(t *testing.T) {
		moves := []game.Position{pos(2, 2), pos(3, 2), pos(4, 2), pos(5, 2)}
		captures := []int{1, 3, 1, 2}
		rng := rand.New(rand.NewSource(1))

		got := Order(moves, captures, false, rng, 0)

		require.Equal(t, []game.Position{pos(3, 2), pos(5, 2), pos(2, 2), pos(4, 2)}, got)
		require.Equal(t, pos(2, 2), moves[0], "Input should not be modified")
	})

	t.Run("regroups special cells regardless of captures", func(t *testing.T) {
		moves := []game.Position{
			pos(1, 1), // X-square
			pos(1, 0), // C-square
			pos(3, 2),
			pos(0, 0), // corner
			pos(6, 7), // C-square
			pos(2, 5),
			pos(7, 7), // corner
		}
		captures := []int{9, 8, 1, 1, 5, 4, 2}
		rng := rand.New(rand.NewSource(1))

		got := Order(moves, captures, true, rng, 0)

		require.Equal(t, []game.Position{
			pos(7, 7), pos(0, 0), // corners by captures
			pos(2, 5), pos(3, 2), // others by captures
			pos(1, 0), pos(6, 7), // C-squares by captures
			pos(1, 1), // X-squares
		}, got)
	})

	t.Run("corner before others before C before X for any captures", func(t *testing.T) {
		moves := []game.Position{pos(6, 6), pos(0, 1), pos(4, 4), pos(7, 0), pos(1, 7), pos(2, 3)}
		rank := func(p game.Position) int {
			switch {
			case game.IsCorner(p.X, p.Y):
				return 0
			case game.IsCSquare(p.X, p.Y):
				return 2
			case game.IsXSquare(p.X, p.Y):
				return 3
			}
			return 1
		}
		rng := rand.New(rand.NewSource(11))
		for i := 0; i < 50; i++ {
			captures := rng.Perm(len(moves))
			got := Order(moves, captures, true, rng, 0)
			for j := 1; j < len(got); j++ {
				require.LessOrEqual(t, rank(got[j-1]), rank(got[j]), "captures %v: %v", captures, got)
			}
		}
	})

	t.Run("no regrouping without special flag", func(t *testing.T) {
		moves := []game.Position{pos(1, 1), pos(0, 0)}
		captures := []int{2, 1}
		got := Order(moves, captures, false, rand.New(rand.NewSource(1)), 0)
		require.Equal(t, moves, got)
	})

	t.Run("odds of one always shuffles", func(t *testing.T) {
		moves := make([]game.Position, 0, 20)
		captures := make([]int, 0, 20)
		for i := 0; i < 20; i++ {
			moves = append(moves, pos(i%8, i/8))
			captures = append(captures, 20-i)
		}
		sorted := Order(moves, captures, false, rand.New(rand.NewSource(3)), 0)

		shuffled := Order(moves, captures, false, rand.New(rand.NewSource(3)), 1)

		require.ElementsMatch(t, sorted, shuffled, "Shuffle should be a permutation")
		require.NotEqual(t, sorted, shuffled, "20 moves should not come back in sorted order")
	})

	t.Run("seeded shuffles repeat", func(t *testing.T) {
		moves := []game.Position{pos(2, 3), pos(3, 2), pos(4, 5), pos(5, 4)}
		captures := []int{1, 1, 1, 1}
		a := Order(moves, captures, false, rand.New(rand.NewSource(42)), 1)
		b := Order(moves, captures, false, rand.New(rand.NewSource(42)), 1)
		require.Equal(t, a, b)
	})

	t.Run("default odds mostly sort", func(t *testing.T) {
		moves := []game.Position{pos(2, 2), pos(3, 2), pos(4, 2)}
		captures := []int{1, 3, 2}
		want := []game.Position{pos(3, 2), pos(4, 2), pos(2, 2)}
		rng := rand.New(rand.NewSource(7))
		sorted := 0
		for i := 0; i < 1000; i++ {
			if got := Order(moves, captures, false, rng, ShuffleOdds); got[0] == want[0] && got[1] == want[1] {
				sorted++
			}
		}
		require.Greater(t, sorted, 950)
	})
}

func TestTruncate(t *testing.T) {
	moves := []game.Position{pos(0, 0), pos(1, 0), pos(2, 0), pos(3, 0), pos(4, 0)}
	require.Len(t, truncate(moves[:1]), 0)
	require.Len(t, truncate(moves[:2]), 1)
	require.Len(t, truncate(moves[:3]), 2)
	require.Len(t, truncate(moves[:5]), 3)
	require.Equal(t, moves[:3], truncate(moves))
}
