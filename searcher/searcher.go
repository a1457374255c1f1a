package searcher

import (
	"time"

	"gametree/experiments/metrics"
	"gametree/game"

	"golang.org/x/exp/rand"
)

type Option func(s *Searcher)

// Searcher evaluates game trees depth-first. A Searcher owns its random
// source and is not safe for concurrent use.
type Searcher struct {
	tieBreak TieBreak
	rng      *rand.Rand
	metrics  metrics.Collector
	last     metrics.SearchMetric
}

func WithTieBreak(tieBreak TieBreak) Option {
	return func(s *Searcher) {
		s.tieBreak = tieBreak
	}
}

// WithRand uses a caller-supplied random source for tie-breaking.
func WithRand(rng *rand.Rand) Option {
	return func(s *Searcher) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithSeed makes random tie-breaking reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Searcher) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func New(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		tieBreak: LastTieWins,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return s
}

func (s *Searcher) TieBreak() TieBreak {
	return s.tieBreak
}

// Metrics returns the counters of the last evaluation. They are empty unless
// the Searcher was built WithMetrics.
func (s *Searcher) Metrics() metrics.SearchMetric {
	return s.last
}

// EvaluateTree runs minimax from board at the given ply. A nil rng selects a
// freshly seeded source.
func EvaluateTree(board game.Board, ply int, rng *rand.Rand, options ...Option) (game.Move, float64) {
	return New(append(options, WithRand(rng))...).EvaluateTree(board, ply)
}

// EvaluateTreeAlphaBeta runs alpha-beta from board within [alpha, beta].
func EvaluateTreeAlphaBeta(board game.OpposedBoard, ply int, alpha, beta float64, rng *rand.Rand, options ...Option) (game.Move, float64) {
	return New(append(options, WithRand(rng))...).EvaluateTreeAlphaBeta(board, ply, alpha, beta)
}
