package agent

import (
	"testing"

	"gametree/game"
	"gametree/game/tictactoe"
	"gametree/searcher"

	"github.com/stretchr/testify/require"
)

// plainBoard hides the two-player capability of the board it wraps.
type plainBoard struct {
	game.Board
}

func TestAgents(t *testing.T) {
	board, err := tictactoe.Parse("XX. OO. X.O", 0)
	require.NoError(t, err)

	t.Run("minimax agent", func(t *testing.T) {
		move, value, metric := NewMinimaxAgent(searcher.New(searcher.WithMetrics())).FindMove(board)

		require.Equal(t, 2, move.(tictactoe.Move).Cell)
		require.Equal(t, 1.0, value)
		require.Equal(t, "minimax", metric.Evaluator)
	})

	t.Run("alpha-beta agent", func(t *testing.T) {
		move, value, metric := NewAlphaBetaAgent(searcher.New(searcher.WithMetrics())).FindMove(board)

		require.Equal(t, 2, move.(tictactoe.Move).Cell)
		require.Equal(t, 1.0, value)
		require.Equal(t, "alphabeta", metric.Evaluator)
	})

	t.Run("alpha-beta agent falls back on boards without opposition", func(t *testing.T) {
		move, value, metric := NewAlphaBetaAgent(searcher.New(searcher.WithMetrics())).FindMove(plainBoard{board})

		require.Equal(t, 2, move.(tictactoe.Move).Cell)
		require.Equal(t, 1.0, value)
		require.Equal(t, "minimax", metric.Evaluator)
	})

	t.Run("searching from the side to move", func(t *testing.T) {
		// O to move but scored from X's frame
		oToMove := board.ApplyMove(board.Moves()[1])
		require.Equal(t, tictactoe.X, oToMove.CurrentPlayer())

		_, value, _ := NewAlphaBetaAgent(searcher.New()).FindMove(oToMove)

		require.Equal(t, 0.0, value, "O should hold the draw from its own frame")
	})
}
