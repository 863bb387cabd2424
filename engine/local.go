package engine

import (
	"fmt"
	"othello/agent"
	"othello/experiments/metrics"
	"othello/game"
	"othello/gamemaster"
	"othello/meta"
	"othello/utils"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

type Engine struct {
	Session  *gamemaster.Session
	Agents   map[game.Tile]agent.Agent
	maxTurns int
}

// WithSession continues an existing session instead of a new game
func WithSession(s *gamemaster.Session) Option {
	return func(e *Engine) {
		if s != nil {
			e.Session = s
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func LocalEngine(black, white agent.Agent, options ...Option) *Engine {
	if black == nil || white == nil {
		panic("need an agent for each colour")
	}

	e := &Engine{
		Session: gamemaster.NewLocalSession(),
		Agents: map[game.Tile]agent.Agent{
			game.Black: black,
			game.White: white,
		},
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until neither side can move.
func (e *Engine) Run() (game.Tile, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Session.Turn(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.Session.Turn())

	for turn := 1; !e.Session.Over() && turn <= e.maxTurns; turn++ {
		tile := e.Session.Turn()
		board := e.Session.Board()

		move, searchMetric, err := e.Agents[tile].FindMove(board, tile)
		if err != nil {
			return game.Empty, e.complete(gameMetric), moveMetrics, fmt.Errorf("%s agent: %w", tile, err)
		}

		legal := e.Session.LegalMoves()
		if !utils.Contains(legal, move) {
			log.Warn().Msgf("%s agent chose illegal move %s, playing %s instead", tile, move, legal[0])
			move = legal[0]
		}

		u, err := e.Session.Play(move)
		if err != nil {
			return game.Empty, e.complete(gameMetric), moveMetrics, err
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         u.Step,
			Player:       u.Tile,
			Position:     u.Position,
			Captured:     len(u.Captured),
			Passed:       u.Passed,
			Hash:         u.Hash,
			SearchMetric: searchMetric,
		})

		log.Debug().Msgf("move %d: %s plays %s capturing %d", u.Step, u.Tile, u.Position, len(u.Captured))
		if u.Passed {
			log.Info().Msgf("%s has no legal move and passes", tile.Opponent())
		}
	}

	if !e.Session.Over() {
		log.Warn().Msgf("stopped after %d turns without a result", e.maxTurns)
	}

	gameMetric = e.complete(gameMetric)
	if gameMetric.Winner == game.Empty {
		log.Info().Msgf("game over after %d moves: tie %+v", gameMetric.TotalMoves, gameMetric.Score)
	} else {
		log.Info().Msgf("game over after %d moves: %s wins %+v", gameMetric.TotalMoves, gameMetric.Winner, gameMetric.Score)
	}
	return gameMetric.Winner, gameMetric, moveMetrics, nil
}

func (e *Engine) complete(gameMetric metrics.GameMetric) metrics.GameMetric {
	gameMetric.Winner = e.Session.Winner()
	gameMetric.Score = e.Session.Score()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(e.Session.History())
	return gameMetric
}
