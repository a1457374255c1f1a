package engine

import (
	"testing"

	"gametree/game/pawns"
	"gametree/game/tictactoe"
	"gametree/searcher"
	"gametree/searcher/agent"

	"github.com/stretchr/testify/require"
)

func TestLocalEngine(t *testing.T) {
	t.Run("perfect tic-tac-toe ends in a draw", func(t *testing.T) {
		players := []string{tictactoe.X, tictactoe.O}
		agents := []agent.Agent{
			agent.NewAlphaBetaAgent(searcher.New(searcher.WithMetrics())),
			agent.NewMinimaxAgent(searcher.New(searcher.WithMetrics())),
		}
		e := NewLocalEngine("tictactoe", tictactoe.New(0), players, agents)

		winner, gameMetric, moveMetrics := e.Run()

		require.Empty(t, winner, "Perfect play should draw")
		require.Equal(t, 9, gameMetric.TotalMoves)
		require.Equal(t, tictactoe.X, gameMetric.StartingPlayer)
		require.Len(t, moveMetrics, 9)
		require.Equal(t, "alphabeta", moveMetrics[0].Evaluator)
		require.Equal(t, tictactoe.O, moveMetrics[1].Player)
		require.Equal(t, "minimax", moveMetrics[1].Evaluator)
		for _, m := range moveMetrics {
			require.Equal(t, 0.0, m.Score, "Every move should keep the draw")
		}
		require.Len(t, e.History, 9)
		require.NotZero(t, e.History[0].Hash)
	})

	t.Run("black wins hexapawn", func(t *testing.T) {
		board, err := pawns.New(3, 3, 0)
		require.NoError(t, err)
		players := []string{pawns.White, pawns.Black}
		agents := []agent.Agent{
			agent.NewAlphaBetaAgent(searcher.New()),
			agent.NewAlphaBetaAgent(searcher.New()),
		}

		winner, gameMetric, _ := NewLocalEngine("hexapawn", board, players, agents).Run()

		require.Equal(t, pawns.Black, winner)
		require.Equal(t, pawns.Black, gameMetric.Winner)
	})

	t.Run("stopping at the move limit", func(t *testing.T) {
		players := []string{tictactoe.X, tictactoe.O}
		agents := []agent.Agent{
			agent.NewAlphaBetaAgent(searcher.New()),
			agent.NewAlphaBetaAgent(searcher.New()),
		}
		e := NewLocalEngine("tictactoe", tictactoe.New(2), players, agents)
		e.MaxMoves = 3

		_, gameMetric, _ := e.Run()

		require.Equal(t, 3, gameMetric.TotalMoves)
	})

	t.Run("panicking on mismatched agents", func(t *testing.T) {
		require.Panics(t, func() {
			NewLocalEngine("tictactoe", tictactoe.New(0), []string{tictactoe.X}, nil)
		})
	})

	t.Run("panicking without an agent for the side to move", func(t *testing.T) {
		e := NewLocalEngine("tictactoe", tictactoe.New(0), []string{tictactoe.O}, []agent.Agent{agent.NewMinimaxAgent(searcher.New())})

		require.Panics(t, func() { e.Run() })
	})
}
