package meta

import (
	"errors"
	"fmt"
	"io"
	"os"
	"othello/experiments/metrics"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel   string           `yaml:"log_level"`
	Search     SearchConfig     `yaml:"search"`
	Experiment ExperimentConfig `yaml:"experiment"`
}

// SearchConfig configures the computer player. A zero seed seeds from the clock,
// shuffle odds follow ShuffleOddsOf.
type SearchConfig struct {
	Depth       int    `yaml:"depth"`
	ShuffleOdds int    `yaml:"shuffle_odds"`
	Seed        uint64 `yaml:"seed"`
}

type ExperimentConfig struct {
	Name      string                `yaml:"name"`
	Games     int                   `yaml:"games"` // Per matchup
	Workers   int                   `yaml:"workers"`
	MaxTurns  int                   `yaml:"max_turns"`
	OutputDir string                `yaml:"output_dir"`
	Agents    []metrics.AgentConfig `yaml:"agents"`
	Matchups  []Matchup             `yaml:"matchups"`
}

// Matchup pairs two agents by AgentConfig.ID. Colours alternate between games.
type Matchup struct {
	First  int `yaml:"first"`
	Second int `yaml:"second"`
}

func Default() Config {
	return Config{
		LogLevel: zerolog.LevelInfoValue,
		Search: SearchConfig{
			Depth:       SEARCH_DEPTH,
			ShuffleOdds: SHUFFLE_ODDS,
		},
		Experiment: ExperimentConfig{
			Name:      "selfplay",
			Games:     10,
			Workers:   1,
			MaxTurns:  MAX_TURNS,
			OutputDir: "results",
			Agents: []metrics.AgentConfig{
				{ID: 1, Kind: metrics.MinimaxAgent, Depth: 4, ShuffleOdds: SHUFFLE_ODDS, Seed: 1},
				{ID: 2, Kind: metrics.GreedyAgent},
				{ID: 3, Kind: metrics.RandomAgent, Seed: 3},
			},
			Matchups: []Matchup{
				{First: 1, Second: 2},
				{First: 1, Second: 3},
			},
		},
	}
}

// Load reads a YAML config on top of the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

func Decode(r io.Reader) (Config, error) {
	config := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if c.Search.Depth <= 0 {
		return fmt.Errorf("search depth must be positive, got %d", c.Search.Depth)
	}
	if c.Search.ShuffleOdds < NO_SHUFFLE {
		return fmt.Errorf("invalid shuffle odds %d", c.Search.ShuffleOdds)
	}
	return c.Experiment.Validate()
}

func (e ExperimentConfig) Validate() error {
	if e.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", e.Games)
	}
	if e.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", e.Workers)
	}
	if e.MaxTurns <= 0 {
		return fmt.Errorf("max turns must be positive, got %d", e.MaxTurns)
	}

	ids := make(map[int]bool, len(e.Agents))
	for _, a := range e.Agents {
		if ids[a.ID] {
			return fmt.Errorf("duplicate agent id %d", a.ID)
		}
		ids[a.ID] = true

		switch a.Kind {
		case metrics.MinimaxAgent:
			if a.Depth <= 0 || a.ShuffleOdds < NO_SHUFFLE {
				return fmt.Errorf("agent %d: invalid minimax depth %d or shuffle odds %d", a.ID, a.Depth, a.ShuffleOdds)
			}
		case metrics.GreedyAgent, metrics.RandomAgent:
		default:
			return fmt.Errorf("agent %d: unknown kind %q", a.ID, a.Kind)
		}
	}

	for _, m := range e.Matchups {
		if !ids[m.First] || !ids[m.Second] {
			return fmt.Errorf("matchup %d vs %d references an unknown agent", m.First, m.Second)
		}
	}
	return nil
}

// ShuffleOddsOf maps a configured shuffle odds to the searcher's: 0 keeps
// SHUFFLE_ODDS and NO_SHUFFLE disables shuffling.
func ShuffleOddsOf(configured int) int {
	switch {
	case configured == 0:
		return SHUFFLE_ODDS
	case configured < 0:
		return 0
	}
	return configured
}
