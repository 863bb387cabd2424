package experiments

import (
	"fmt"
	"othello/agent"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/searcher"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the games of a matchup from the first agent's point of view
type Summary struct {
	First      int // AgentConfig.ID
	Second     int // AgentConfig.ID
	Games      int
	Wins       int
	Draws      int
	Losses     int
	MeanMargin float64
	StdMargin  float64
}

type job struct {
	id      int // GameRecord.ID, from 1
	matchup int
	round   int
}

type result struct {
	record MatchGame
	moves  []metrics.MoveMetric
	err    error
}

// MatchGame is a finished game together with the matchup it belongs to
type MatchGame struct {
	metrics.GameRecord
	Matchup int
	Swapped bool // Second agent played black
}

// Run plays every matchup config.Games times on config.Workers goroutines,
// alternating colours, and writes the records under config.OutputDir. It
// returns a summary per matchup and the directory holding the records.
func Run(config meta.ExperimentConfig) ([]Summary, string, error) {
	if err := config.Validate(); err != nil {
		return nil, "", err
	}
	agents := make(map[int]metrics.AgentConfig, len(config.Agents))
	for _, a := range config.Agents {
		agents[a.ID] = a
	}

	log.Info().Msgf("starting %s experiment with %d matchups of %d games on %d workers...",
		config.Name, len(config.Matchups), config.Games, config.Workers)

	total := len(config.Matchups) * config.Games
	jobs := make(chan job, total)
	for mi := range config.Matchups {
		for i := 0; i < config.Games; i++ {
			jobs <- job{id: mi*config.Games + i + 1, matchup: mi, round: i}
		}
	}
	close(jobs)

	results := make([]result, total)
	var wg sync.WaitGroup
	for w := 0; w < min(config.Workers, total); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				m := config.Matchups[j.matchup]
				results[j.id-1] = runGame(j, agents[m.First], agents[m.Second], config.MaxTurns)
			}
		}()
	}
	wg.Wait()

	var records []MatchGame
	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	for _, r := range results {
		if r.err != nil {
			return nil, "", fmt.Errorf("game %d: %w", r.record.ID, r.err)
		}
		records = append(records, r.record)
		gameRecords = append(gameRecords, r.record.GameRecord)
		for _, mm := range r.moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: r.record.ID, MoveMetric: mm})
		}
	}

	log.Info().Msgf("completed %s experiment", config.Name)

	dir, err := store(config, gameRecords, moveRecords)
	if err != nil {
		return nil, "", err
	}

	summaries := Summarize(config.Matchups, records)
	for _, s := range summaries {
		log.Info().Msgf("agent %d vs agent %d: %d wins, %d draws, %d losses, margin %.1f ± %.1f",
			s.First, s.Second, s.Wins, s.Draws, s.Losses, s.MeanMargin, s.StdMargin)
	}
	return summaries, dir, nil
}

// runGame plays round of a matchup. The first agent is black on even rounds.
// Seeds are offset by the round so games differ but repeat across runs.
func runGame(j job, first, second metrics.AgentConfig, maxTurns int) result {
	black, white := first, second
	swapped := j.round%2 == 1
	if swapped {
		black, white = second, first
	}

	e := engine.LocalEngine(
		NewAgent(black, black.Seed+uint64(j.round)),
		NewAgent(white, white.Seed+uint64(j.round)),
		engine.WithMaxTurns(maxTurns),
	)
	_, gameMetric, moveMetrics, err := e.Run()

	return result{
		record: MatchGame{
			GameRecord: metrics.GameRecord{
				ID:         j.id,
				Black:      black.ID,
				White:      white.ID,
				GameMetric: gameMetric,
			},
			Matchup: j.matchup,
			Swapped: swapped,
		},
		moves: moveMetrics,
		err:   err,
	}
}

// NewAgent builds the agent described by config. Minimax agents collect
// search metrics.
func NewAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	switch config.Kind {
	case metrics.MinimaxAgent:
		return agent.NewMinimaxAgent(searcher.NewMinimax(
			searcher.WithDepth(config.Depth),
			searcher.WithShuffleOdds(meta.ShuffleOddsOf(config.ShuffleOdds)),
			searcher.WithSeed(seed),
			searcher.WithMetrics(),
		))
	case metrics.GreedyAgent:
		return agent.NewGreedyAgent()
	case metrics.RandomAgent:
		return agent.NewRandomAgent(rand.New(rand.NewSource(seed)))
	}
	panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
}

// Summarize counts results per matchup. Margins are from the first agent's
// point of view.
func Summarize(matchups []meta.Matchup, records []MatchGame) []Summary {
	margins := make([][]float64, len(matchups))
	summaries := make([]Summary, len(matchups))
	for i, m := range matchups {
		summaries[i] = Summary{First: m.First, Second: m.Second}
	}

	for _, r := range records {
		s := &summaries[r.Matchup]
		firstTile := game.Black
		margin := r.Margin()
		if r.Swapped {
			firstTile = game.White
			margin = -margin
		}

		s.Games++
		switch r.Winner {
		case game.Empty:
			s.Draws++
		case firstTile:
			s.Wins++
		default:
			s.Losses++
		}
		margins[r.Matchup] = append(margins[r.Matchup], float64(margin))
	}

	for i := range summaries {
		switch len(margins[i]) {
		case 0:
		case 1:
			summaries[i].MeanMargin = margins[i][0]
		default:
			summaries[i].MeanMargin, summaries[i].StdMargin = stat.MeanStdDev(margins[i], nil)
		}
	}
	return summaries
}

func store(config meta.ExperimentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(config.OutputDir, config.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(config.Agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
