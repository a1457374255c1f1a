package agent

import (
	"gametree/experiments/metrics"
	"gametree/game"
)

type Agent interface {
	// FindMove returns the chosen move, its value from the mover's frame and
	// the search metrics (if collected).
	FindMove(board game.Board) (game.Move, float64, metrics.SearchMetric)
}
