package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Evaluator string
	TieBreak  string
	Duration  time.Duration
	Nodes     int
	Leaves    int
	Cutoffs   int
}

type MoveMetric struct {
	Step   int
	Player string
	Score  float64
	SearchMetric
}

type GameMetric struct {
	Game           string
	StartingPlayer string
	Winner         string // "" for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(evaluator, tieBreak string)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	evaluator string
	tieBreak  string
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	cutoffs   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(evaluator, tieBreak string) {
	m.startTime = time.Now()
	m.evaluator = evaluator
	m.tieBreak = tieBreak
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Evaluator: m.evaluator,
		TieBreak:  m.tieBreak,
		Duration:  time.Since(m.startTime),
		Nodes:     int(m.nodes.Load()),
		Leaves:    int(m.leaves.Load()),
		Cutoffs:   int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(evaluator, tieBreak string) {}
func (m *dummyCollector) AddNode()                         {}
func (m *dummyCollector) AddLeaf()                         {}
func (m *dummyCollector) AddCutoff()                       {}
func (m *dummyCollector) Complete() SearchMetric           { return SearchMetric{} }
