package engine

import "gametree/experiments/metrics"

const MaxMoves = 10000

type Engine interface {
	// Run plays a game till it is decided, the side to move is stuck or a max number of moves is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
