package experiments

import (
	"othello/agent"
	"othello/game"
	"othello/gamemaster"
	"othello/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

// SearchProfile summarises the searches run at one depth
type SearchProfile struct {
	Depth          int
	Searches       int
	MeanNodes      float64
	StdNodes       float64
	MeanCutoffs    float64
	NodesPerSecond float64
}

// ProfileSearch measures search effort per depth on the same random midgame
// positions for every depth.
func ProfileSearch(depths []int, positions int, seed uint64) []SearchProfile {
	rng := rand.New(rand.NewSource(seed))
	boards, tiles := samplePositions(rng, positions)

	profiles := make([]SearchProfile, 0, len(depths))
	for _, depth := range depths {
		m := searcher.NewMinimax(
			searcher.WithDepth(depth),
			searcher.WithShuffleOdds(0),
			searcher.WithSeed(seed),
			searcher.WithMetrics(),
		)

		nodes := make([]float64, len(boards))
		cutoffs := make([]float64, len(boards))
		var seconds, total float64
		for i, b := range boards {
			_, metric, _ := m.Search(b, tiles[i])
			nodes[i] = float64(metric.Nodes)
			cutoffs[i] = float64(metric.Cutoffs)
			total += nodes[i]
			seconds += metric.Duration.Seconds()
		}

		p := SearchProfile{Depth: depth, Searches: len(boards)}
		if len(boards) > 1 {
			p.MeanNodes, p.StdNodes = stat.MeanStdDev(nodes, nil)
		} else if len(boards) == 1 {
			p.MeanNodes = nodes[0]
		}
		if len(boards) > 0 {
			p.MeanCutoffs = stat.Mean(cutoffs, nil)
		}
		if seconds > 0 {
			p.NodesPerSecond = total / seconds
		}
		profiles = append(profiles, p)

		log.Info().Msgf("depth %d: %.0f ± %.0f nodes, %.1f cutoffs, %.0f nodes/s",
			p.Depth, p.MeanNodes, p.StdNodes, p.MeanCutoffs, p.NodesPerSecond)
	}
	return profiles
}

// samplePositions plays random games and keeps positions where a side has a
// move, together with the side to move.
func samplePositions(rng *rand.Rand, n int) ([]game.Board, []game.Tile) {
	random := agent.NewRandomAgent(rng)
	boards := make([]game.Board, 0, n)
	tiles := make([]game.Tile, 0, n)

	for len(boards) < n {
		s := gamemaster.NewLocalSession()
		plies := 4 + rng.Intn(40)
		for i := 0; i < plies && !s.Over(); i++ {
			move, _, _ := random.FindMove(s.Board(), s.Turn())
			if _, err := s.Play(move); err != nil {
				break
			}
		}
		if s.Over() {
			continue
		}
		boards = append(boards, s.Board())
		tiles = append(tiles, s.Turn())
	}
	return boards, tiles
}
