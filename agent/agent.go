package agent

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"golang.org/x/exp/rand"
)

type Agent interface {
	// FindMove returns a move for tile and the search metrics (if collected).
	// It is only called when tile has at least one legal move. An error ends
	// the game, e.g. when a human player quits.
	FindMove(b game.Board, tile game.Tile) (game.Position, metrics.SearchMetric, error)
}

type minimaxAgent struct {
	minimax *searcher.Minimax
}

// NewMinimaxAgent returns the computer player
func NewMinimaxAgent(minimax *searcher.Minimax) Agent {
	return minimaxAgent{minimax: minimax}
}

func (a minimaxAgent) FindMove(b game.Board, tile game.Tile) (game.Position, metrics.SearchMetric, error) {
	move, metric, _ := a.minimax.Search(b, tile)
	return move, metric, nil
}

type greedyAgent struct{}

// NewGreedyAgent returns an agent that captures as many tiles as possible,
// preferring the earliest move in scan order on ties.
func NewGreedyAgent() Agent {
	return greedyAgent{}
}

func (greedyAgent) FindMove(b game.Board, tile game.Tile) (game.Position, metrics.SearchMetric, error) {
	moves, captures, _ := b.ValidMoves(tile)
	best := -1
	var move game.Position
	for i, m := range moves {
		if captures[i] > best {
			best = captures[i]
			move = m
		}
	}
	return move, metrics.SearchMetric{}, nil
}

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays uniformly random legal moves
func NewRandomAgent(rng *rand.Rand) Agent {
	if rng == nil {
		panic("random agent needs a random source")
	}
	return &randomAgent{rng: rng}
}

func (a *randomAgent) FindMove(b game.Board, tile game.Tile) (game.Position, metrics.SearchMetric, error) {
	moves, _, _ := b.ValidMoves(tile)
	if len(moves) == 0 {
		return game.Position{}, metrics.SearchMetric{}, nil
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
