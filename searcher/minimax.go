package searcher

import (
	"gametree/game"

	"github.com/rs/zerolog/log"
)

// EvaluateTree returns the best move from board and its value in the board's
// CurrentPlayer frame. It works for any opposition model: each node folds its
// children by max or min according to its own Maximize.
func (s *Searcher) EvaluateTree(board game.Board, ply int) (game.Move, float64) {
	s.metrics.Start("minimax", s.tieBreak.String())
	move, value := s.minimax(board, ply)
	s.last = s.metrics.Complete()

	log.Debug().
		Str("player", board.CurrentPlayer()).
		Int("ply", ply).
		Float64("value", value).
		Int("nodes", s.last.Nodes).
		Msgf("minimax chose move %v", move)
	return move, value
}

func (s *Searcher) minimax(board game.Board, ply int) (game.Move, float64) {
	s.metrics.AddNode()

	if !board.ContinueEvaluatingTree(ply) {
		s.metrics.AddLeaf()
		return nil, board.HeuristicScore()
	}

	moves := board.Moves()
	if len(moves) == 0 { // Stuck without being flagged terminal
		s.metrics.AddLeaf()
		return nil, board.HeuristicScore()
	}

	best := newTies(s.tieBreak, board.Maximize())
	for _, move := range moves {
		_, value := s.minimax(board.ApplyMove(move), ply+1)
		best.offer(move, value)
	}
	return best.pick(s.rng)
}
