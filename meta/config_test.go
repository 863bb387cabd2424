package meta

import (
	"os"
	"othello/experiments/metrics"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	require.Equal(t, SEARCH_DEPTH, c.Search.Depth)
	require.Equal(t, SHUFFLE_ODDS, c.Search.ShuffleOdds)
	require.Equal(t, MAX_TURNS, c.Experiment.MaxTurns)
}

func TestDecode(t *testing.T) {
	t.Run("empty document keeps defaults", func(t *testing.T) {
		c, err := Decode(strings.NewReader(""))
		require.NoError(t, err)
		require.Equal(t, Default(), c)
	})

	t.Run("overrides given fields", func(t *testing.T) {
		doc := `
log_level: debug
search:
  depth: 6
  seed: 42
experiment:
  games: 4
  workers: 2
  agents:
    - {id: 7, kind: minimax, depth: 3, shuffle_odds: -1, seed: 9}
    - {id: 8, kind: random}
  matchups:
    - {first: 7, second: 8}
`
		c, err := Decode(strings.NewReader(doc))

		require.NoError(t, err)
		require.Equal(t, "debug", c.LogLevel)
		require.Equal(t, 6, c.Search.Depth)
		require.Equal(t, uint64(42), c.Search.Seed)
		require.Equal(t, SHUFFLE_ODDS, c.Search.ShuffleOdds, "Unset fields keep their default")
		require.Equal(t, 4, c.Experiment.Games)
		require.Equal(t, []metrics.AgentConfig{
			{ID: 7, Kind: metrics.MinimaxAgent, Depth: 3, ShuffleOdds: NO_SHUFFLE, Seed: 9},
			{ID: 8, Kind: metrics.RandomAgent},
		}, c.Experiment.Agents)
		require.Equal(t, []Matchup{{First: 7, Second: 8}}, c.Experiment.Matchups)
	})

	t.Run("minimax agent without shuffle odds keeps random ordering", func(t *testing.T) {
		doc := "experiment:\n  agents: [{id: 1, kind: minimax, depth: 2}]\n  matchups: []\n"

		c, err := Decode(strings.NewReader(doc))

		require.NoError(t, err)
		require.Equal(t, SHUFFLE_ODDS, ShuffleOddsOf(c.Experiment.Agents[0].ShuffleOdds))
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		_, err := Decode(strings.NewReader("search:\n  dept: 3\n"))
		require.Error(t, err)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		for name, doc := range map[string]string{
			"log level":     "log_level: loud\n",
			"depth":         "search:\n  depth: -1\n",
			"shuffle odds":  "search:\n  shuffle_odds: -2\n",
			"games":         "experiment:\n  games: 0\n",
			"agent kind":    "experiment:\n  agents: [{id: 1, kind: oracle}]\n  matchups: []\n",
			"duplicate id":  "experiment:\n  agents: [{id: 1, kind: greedy}, {id: 1, kind: random}]\n  matchups: []\n",
			"unknown agent": "experiment:\n  matchups: [{first: 1, second: 9}]\n",
			"minimax depth": "experiment:\n  agents: [{id: 1, kind: minimax}]\n  matchups: []\n",
			"agent odds":    "experiment:\n  agents: [{id: 1, kind: minimax, depth: 2, shuffle_odds: -2}]\n  matchups: []\n",
		} {
			_, err := Decode(strings.NewReader(doc))
			require.Error(t, err, name)
		}
	})
}

func TestShuffleOddsOf(t *testing.T) {
	require.Equal(t, SHUFFLE_ODDS, ShuffleOddsOf(0))
	require.Equal(t, 0, ShuffleOddsOf(NO_SHUFFLE))
	require.Equal(t, 1, ShuffleOddsOf(1))
	require.Equal(t, 37, ShuffleOddsOf(37))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  depth: 2\n"), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, c.Search.Depth)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
