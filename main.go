package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"othello/agent"
	"othello/engine"
	"othello/experiments"
	"othello/game"
	"othello/meta"
	"othello/player"
	"othello/searcher"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "play", "play, selfplay, experiment or profile")
	configPath := flag.String("config", "", "YAML config file")
	color := flag.String("color", "black", "Colour of the human player in play mode")
	depth := flag.Int("depth", 0, "Search depth override")
	seed := flag.Uint64("seed", 0, "Random seed override")
	logLevel := flag.String("log", "", "Log level override")
	flag.Parse()

	config := meta.Default()
	if *configPath != "" {
		var err error
		config, err = meta.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if *depth > 0 {
		config.Search.Depth = *depth
	}
	if *seed > 0 {
		config.Search.Seed = *seed
	}
	if *logLevel != "" {
		config.LogLevel = *logLevel
	}

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	switch *mode {
	case "play":
		err = play(config.Search, *color)
	case "selfplay":
		err = selfplay(config.Search)
	case "experiment":
		_, _, err = experiments.Run(config.Experiment)
	case "profile":
		experiments.ProfileSearch([]int{2, 4, 6, 8, config.Search.Depth}, 20, config.Search.Seed)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}

	if err != nil {
		log.Error().Err(err).Msgf("%s failed", *mode)
		os.Exit(1)
	}
}

func newMinimax(config meta.SearchConfig) *searcher.Minimax {
	options := []searcher.Option{
		searcher.WithDepth(config.Depth),
		searcher.WithShuffleOdds(meta.ShuffleOddsOf(config.ShuffleOdds)),
		searcher.WithMetrics(),
	}
	if config.Seed > 0 {
		options = append(options, searcher.WithSeed(config.Seed))
	}
	return searcher.NewMinimax(options...)
}

// play runs a human on the console against the computer
func play(config meta.SearchConfig, color string) error {
	human := player.NewConsole(os.Stdin, os.Stdout)
	computer := agent.NewMinimaxAgent(newMinimax(config))

	var e *engine.Engine
	switch color {
	case game.Black.String():
		e = engine.LocalEngine(human, computer)
	case game.White.String():
		e = engine.LocalEngine(computer, human)
	default:
		return fmt.Errorf("unknown colour %q", color)
	}

	winner, gameMetric, _, err := e.Run()
	if errors.Is(err, player.ErrQuit) {
		fmt.Println("bye")
		return nil
	}
	if err != nil {
		return err
	}

	b := e.Session.Board()
	fmt.Printf("\n%s", b.String())
	fmt.Printf("black %d, white %d\n", gameMetric.Score.Black, gameMetric.Score.White)
	switch winner {
	case game.Empty:
		fmt.Println("it's a tie")
	default:
		fmt.Printf("%s wins\n", winner)
	}
	return nil
}

// selfplay runs the computer against itself
func selfplay(config meta.SearchConfig) error {
	e := engine.LocalEngine(
		agent.NewMinimaxAgent(newMinimax(config)),
		agent.NewMinimaxAgent(newMinimax(config)),
	)
	_, _, moveMetrics, err := e.Run()
	if err != nil {
		return err
	}

	for _, mm := range moveMetrics {
		log.Info().Msgf("%d. %s %s: %d nodes, %d cutoffs, value %d in %s",
			mm.Step, mm.Player, mm.Position, mm.Nodes, mm.Cutoffs, mm.Value, mm.Duration)
	}
	return nil
}
