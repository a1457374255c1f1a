package agent

import (
	"gametree/experiments/metrics"
	"gametree/game"
	"gametree/searcher"

	"github.com/rs/zerolog/log"
)

type minimaxAgent struct {
	searcher *searcher.Searcher
}

// NewMinimaxAgent returns an agent that searches the full tree.
func NewMinimaxAgent(s *searcher.Searcher) Agent {
	return minimaxAgent{searcher: s}
}

func (a minimaxAgent) FindMove(board game.Board) (game.Move, float64, metrics.SearchMetric) {
	move, value := a.searcher.EvaluateTree(rebase(board), 0)
	return move, value, a.searcher.Metrics()
}

type alphaBetaAgent struct {
	searcher *searcher.Searcher
}

// NewAlphaBetaAgent returns an agent that prunes. Boards that are not strictly
// two-player are searched with minimax instead.
func NewAlphaBetaAgent(s *searcher.Searcher) Agent {
	return alphaBetaAgent{searcher: s}
}

func (a alphaBetaAgent) FindMove(board game.Board) (game.Move, float64, metrics.SearchMetric) {
	board = rebase(board)
	opposed, ok := board.(game.OpposedBoard)
	if !ok {
		log.Warn().Msgf("%T is not a two-player board, falling back to minimax", board)
		move, value := a.searcher.EvaluateTree(board, 0)
		return move, value, a.searcher.Metrics()
	}
	move, value := a.searcher.EvaluateTreeOpposed(opposed, 0)
	return move, value, a.searcher.Metrics()
}

// rebase scores the position from the side to move, so the agent always
// maximizes for the player it plays for.
func rebase(board game.Board) game.Board {
	if r, ok := board.(game.Rebaser); ok && board.CurrentPlayer() != board.VantagePoint() {
		return r.Rebase()
	}
	return board
}
