package metrics

import (
	"othello/game"
	"time"
)

type SearchMetric struct {
	Depth    int
	Duration time.Duration
	Nodes    int
	Leaves   int
	Cutoffs  int
	Value    int // Root value returned by the search
}

type MoveMetric struct {
	Step     int
	Player   game.Tile
	Position game.Position
	Captured int
	Passed   bool // Opponent had to pass after this move
	Hash     game.StateHash
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Tile
	Winner         game.Tile // Empty on a tie
	Score          game.Score
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Margin is the disc difference from black's point of view
func (g GameMetric) Margin() int {
	return g.Score.Black - g.Score.White
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete(value int) SearchMetric
}

// collector belongs to a single search and is not safe for concurrent use
type collector struct {
	depth     int
	startTime time.Time
	nodes     int
	leaves    int
	cutoffs   int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.depth = depth
	m.startTime = time.Now()
	m.nodes = 0
	m.leaves = 0
	m.cutoffs = 0
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) Complete(value int) SearchMetric {
	return SearchMetric{
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    m.nodes,
		Leaves:   m.leaves,
		Cutoffs:  m.cutoffs,
		Value:    value,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)                 {}
func (m *dummyCollector) AddNode()                        {}
func (m *dummyCollector) AddLeaf()                        {}
func (m *dummyCollector) AddCutoff()                      {}
func (m *dummyCollector) Complete(value int) SearchMetric { return SearchMetric{Value: value} }
