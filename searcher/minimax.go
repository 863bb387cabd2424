package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
	"time"

	"golang.org/x/exp/rand"
)

type Option func(m *Minimax)

// Minimax is a depth-limited minimax search with alpha-beta pruning. It is
// not safe for concurrent use since it owns its random source.
type Minimax struct {
	depth    int
	alpha    int
	beta     int
	odds     int
	rng      *rand.Rand
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithWindow sets the initial alpha-beta bounds
func WithWindow(alpha, beta int) Option {
	return func(m *Minimax) {
		if alpha < beta {
			m.alpha = alpha
			m.beta = beta
		}
	}
}

// WithShuffleOdds sets how often move ordering is replaced by a random
// permutation, once in odds draws. 0 disables it.
func WithShuffleOdds(odds int) Option {
	return func(m *Minimax) {
		if odds >= 0 {
			m.odds = odds
		}
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(m *Minimax) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *Minimax) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:    DefaultDepth,
		alpha:    Alpha,
		beta:     Beta,
		odds:     ShuffleOdds,
		evaluate: game.EvaluatePositional,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

// ComputerMove picks a move for ai with the default search settings. ok is
// false when ai has no legal move and must pass.
func ComputerMove(b game.Board, ai game.Tile) (move game.Position, ok bool) {
	return NewMinimax().FindMove(b, ai)
}

func (m *Minimax) FindMove(b game.Board, ai game.Tile) (game.Position, bool) {
	move, _, ok := m.Search(b, ai)
	return move, ok
}

// Search runs the search from ai's point of view on a copy of b and returns
// the chosen move with the search metrics.
func (m *Minimax) Search(b game.Board, ai game.Tile) (game.Position, metrics.SearchMetric, bool) {
	m.metrics.Start(m.depth)
	value, move, ok := m.search(&b, m.depth, m.alpha, m.beta, ai, ai)
	return move, m.metrics.Complete(value), ok
}

// search returns the bound maintained at this node and the move that set it.
// Moves are enumerated for mover but the evaluation is always from ai's
// perspective, so nodes where mover is ai maximize and the others minimize.
func (m *Minimax) search(b *game.Board, depth, alpha, beta int, mover, ai game.Tile) (int, game.Position, bool) {
	m.metrics.AddNode()

	moves, captures, special := b.ValidMoves(mover)
	if depth == 0 || len(moves) == 0 {
		m.metrics.AddLeaf()
		return m.evaluate(b, ai, moves), game.Position{}, false
	}

	ordered := Order(moves, captures, special, m.rng, m.odds)
	best := ordered[0]
	maximizing := mover == ai

	for _, move := range truncate(ordered) {
		child := *b
		// The candidate is placed with ai's tile at every node, including the
		// opponent's. When that placement is illegal the clone stays unchanged.
		_, _ = child.MakeMove(ai, move.X, move.Y)

		value, _, _ := m.search(&child, depth-1, alpha, beta, mover.Opponent(), ai)
		if maximizing {
			if value > alpha {
				alpha = value
				best = move
			}
		} else {
			if value < beta {
				beta = value
				best = move
			}
		}

		if alpha >= beta {
			m.metrics.AddCutoff()
			break
		}
	}

	if maximizing {
		return alpha, best, true
	}
	return beta, best, true
}
