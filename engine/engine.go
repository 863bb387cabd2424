package engine

import (
	"othello/experiments/metrics"
	"othello/game"
)

type Runner interface {
	// Run plays a game to completion and returns the winner (Empty on a tie)
	Run() (winner game.Tile, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

var _ Runner = (*Engine)(nil)
