package searcher

import (
	"othello/game"
	"sort"

	"golang.org/x/exp/rand"
)

// Order returns moves best-first without modifying the input. With
// probability 1/odds the moves are instead returned in a random permutation
// so the computer does not always play the same game. odds <= 0 disables
// the permutation, odds == 1 forces it.
func Order(moves []game.Position, captures []int, special bool, rng *rand.Rand, odds int) []game.Position {
	ordered := make([]game.Position, len(moves))
	copy(ordered, moves)

	if odds > 0 && rng.Intn(odds) == 0 {
		rng.Shuffle(len(ordered), func(i, j int) {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		})
		return ordered
	}

	byCaptures := make([]int, len(moves))
	for i := range byCaptures {
		byCaptures[i] = i
	}
	sort.SliceStable(byCaptures, func(i, j int) bool {
		return captures[byCaptures[i]] > captures[byCaptures[j]]
	})
	for i, idx := range byCaptures {
		ordered[i] = moves[idx]
	}

	if special {
		ordered = regroup(ordered)
	}
	return ordered
}

// regroup keeps relative order inside each group: corners, other cells,
// C-squares, X-squares
func regroup(moves []game.Position) []game.Position {
	var corners, others, cs, xs []game.Position
	for _, m := range moves {
		switch {
		case game.IsCorner(m.X, m.Y):
			corners = append(corners, m)
		case game.IsCSquare(m.X, m.Y):
			cs = append(cs, m)
		case game.IsXSquare(m.X, m.Y):
			xs = append(xs, m)
		default:
			others = append(others, m)
		}
	}

	regrouped := make([]game.Position, 0, len(moves))
	regrouped = append(regrouped, corners...)
	regrouped = append(regrouped, others...)
	regrouped = append(regrouped, cs...)
	regrouped = append(regrouped, xs...)
	return regrouped
}

// truncate keeps the first floor(2n/3) moves
func truncate(moves []game.Position) []game.Position {
	return moves[:len(moves)*KeepNumerator/KeepDenominator]
}
