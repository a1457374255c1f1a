package searcher

import (
	"math"

	"gametree/game"

	"github.com/rs/zerolog/log"
)

// EvaluateTreeOpposed runs alpha-beta with the widest possible window.
func (s *Searcher) EvaluateTreeOpposed(board game.OpposedBoard, ply int) (game.Move, float64) {
	return s.EvaluateTreeAlphaBeta(board, ply, math.Inf(-1), math.Inf(1))
}

// EvaluateTreeAlphaBeta returns the same value as EvaluateTree for a strictly
// two-player board while skipping subtrees that cannot affect the result.
// Every child produced during the search is checked against the opposition
// invariant; a breach panics with game.ErrOppositionViolated.
func (s *Searcher) EvaluateTreeAlphaBeta(board game.OpposedBoard, ply int, alpha, beta float64) (game.Move, float64) {
	s.metrics.Start("alphabeta", s.tieBreak.String())
	move, value := s.alphaBeta(board, ply, alpha, beta, true)
	s.last = s.metrics.Complete()

	log.Debug().
		Str("player", board.CurrentPlayer()).
		Int("ply", ply).
		Float64("value", value).
		Int("nodes", s.last.Nodes).
		Int("cutoffs", s.last.Cutoffs).
		Msgf("alpha-beta chose move %v", move)
	return move, value
}

// alphaBeta is fail-soft: a value outside (alpha, beta) is a bound on the
// true value. Only the top-level node records ties, since no caller observes
// the move chosen below it. There each child is searched one ulp wider than
// the window and only a value strictly past a bound cuts off, so every sibling
// tied with the best, including an infinite one, is exact and offered as a tie.
func (s *Searcher) alphaBeta(board game.OpposedBoard, ply int, alpha, beta float64, root bool) (game.Move, float64) {
	s.metrics.AddNode()

	if !board.ContinueEvaluatingTree(ply) {
		s.metrics.AddLeaf()
		return nil, board.HeuristicScore()
	}

	moves := board.Moves()
	if len(moves) == 0 {
		s.metrics.AddLeaf()
		return nil, board.HeuristicScore()
	}

	maximize := board.Maximize()
	var tied ties
	if root {
		tied = newTies(s.tieBreak, maximize)
	}

	var bestMove game.Move
	best := worst(maximize)
	for i, move := range moves {
		child := opposedChild(board, move)

		lo, hi := alpha, beta
		if root {
			// One ulp of slack keeps siblings equal to the running best exact
			// instead of failing low onto it.
			lo = math.Nextafter(alpha, math.Inf(-1))
			hi = math.Nextafter(beta, math.Inf(1))
		}
		_, value := s.alphaBeta(child, ply+1, lo, hi, false)

		if root {
			tied.offer(move, value)
		}

		if maximize {
			if i == 0 || value > best {
				best, bestMove = value, move
			}
			alpha = math.Max(alpha, value)
			if best > beta || best == beta && !root {
				s.prune(i, len(moves))
				break
			}
		} else {
			if i == 0 || value < best {
				best, bestMove = value, move
			}
			beta = math.Min(beta, value)
			if best < alpha || best == alpha && !root {
				s.prune(i, len(moves))
				break
			}
		}
	}

	if root {
		return tied.pick(s.rng)
	}
	return bestMove, best
}

// prune records a cutoff when siblings after the i-th are skipped.
func (s *Searcher) prune(i, n int) {
	if i < n-1 {
		s.metrics.AddCutoff()
	}
}

// opposedChild applies move and checks that the turn passed to the other
// player with the fold direction flipped.
func opposedChild(parent game.OpposedBoard, move game.Move) game.OpposedBoard {
	next := parent.ApplyMove(move)
	child, ok := next.(game.OpposedBoard)
	if !ok {
		game.Violation(game.ErrOppositionViolated, "move %v from %q produced a %T, not a two-player board", move, parent.VantagePoint(), next)
	}

	players := parent.Players()
	if parent.VantagePoint() != players[0] && parent.VantagePoint() != players[1] {
		game.Violation(game.ErrOppositionViolated, "vantage point %q is not one of %v", parent.VantagePoint(), players)
	}
	if want := game.Opponent(players, parent.VantagePoint()); child.VantagePoint() != want {
		game.Violation(game.ErrOppositionViolated, "move %v passed the turn from %q to %q, want %q", move, parent.VantagePoint(), child.VantagePoint(), want)
	}
	if child.Maximize() == parent.Maximize() {
		game.Violation(game.ErrOppositionViolated, "move %v kept maximize=%t for %q", move, parent.Maximize(), child.VantagePoint())
	}
	return child
}
