package tictactoe

import (
	"errors"
	"testing"

	"gametree/game"
	"gametree/searcher"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, cells string) *Board {
	t.Helper()
	b, err := Parse(cells, 0)
	require.NoError(t, err)
	return b
}

func TestPerfectPlayDraws(t *testing.T) {
	t.Run("minimax from the empty board", func(t *testing.T) {
		move, value := searcher.New().EvaluateTree(New(0), 0)

		require.Equal(t, 0.0, value, "Perfect play should draw")
		require.NotNil(t, move)
	})

	t.Run("alpha-beta from the empty board", func(t *testing.T) {
		full := searcher.New(searcher.WithMetrics())
		pruned := searcher.New(searcher.WithMetrics())

		_, want := full.EvaluateTree(New(0), 0)
		_, got := pruned.EvaluateTreeOpposed(New(0), 0)

		require.Equal(t, want, got)
		require.Equal(t, 549946, full.Metrics().Nodes, "Minimax should visit the whole game tree")
		require.Less(t, pruned.Metrics().Nodes, full.Metrics().Nodes/5)
	})
}

func TestFindingWins(t *testing.T) {
	t.Run("completing a row", func(t *testing.T) {
		b := mustParse(t, "XX. OO. X.O")

		move, value := searcher.New().EvaluateTreeOpposed(b, 0)

		require.Equal(t, 1.0, value)
		require.Equal(t, 2, move.(Move).Cell, "Only the row completes in time")
	})

	t.Run("holding against opposite corners", func(t *testing.T) {
		b := mustParse(t, "X.. .O. ..X")

		_, value := searcher.New().EvaluateTreeOpposed(b, 0)

		require.Equal(t, O, b.CurrentPlayer())
		require.Equal(t, 0.0, value, "O holds with an edge reply")
	})

	t.Run("forking after an edge reply", func(t *testing.T) {
		b := mustParse(t, "XO. ... ...")

		_, value := searcher.New().EvaluateTree(b, 0)
		require.Equal(t, 1.0, value, "X wins after O answers a corner on the edge")

		rebased := b.ApplyMove(Move{rules: b.rules, Cell: 4}).(*Board).Rebase()
		_, value = searcher.New().EvaluateTreeOpposed(rebased.(*Board), 0)
		require.Equal(t, -1.0, value, "O should be lost from its own frame")
	})
}

func TestBoard(t *testing.T) {
	t.Run("detecting a winner", func(t *testing.T) {
		b := mustParse(t, "XXX OO. ...")

		require.Equal(t, X, b.Winner())
		require.Empty(t, b.Moves(), "Decided game should have no moves")
		require.False(t, b.ContinueEvaluatingTree(0))
		require.Equal(t, O, b.CurrentPlayer())
		require.Equal(t, -1.0, b.HeuristicScore(), "Score should be in O's frame")
		require.Equal(t, b.HeuristicScore(), b.HeuristicScore())
	})

	t.Run("detecting a draw", func(t *testing.T) {
		b := mustParse(t, "XOX XOO OXX")

		require.Empty(t, b.Winner())
		require.True(t, b.Full())
		require.False(t, b.ContinueEvaluatingTree(0))
		require.Equal(t, 0.0, b.HeuristicScore())
	})

	t.Run("applying a move builds a new board", func(t *testing.T) {
		b := New(0)
		child := b.ApplyMove(b.Moves()[4]).(*Board)

		require.Equal(t, "....X....\n", flat(child))
		require.Equal(t, ".........\n", flat(b), "Parent should not change")
		require.Equal(t, O, child.VantagePoint())
		require.Equal(t, X, child.CurrentPlayer())
		require.False(t, child.Maximize())
	})

	t.Run("stopping at the ply limit", func(t *testing.T) {
		b := New(2)

		require.True(t, b.ContinueEvaluatingTree(1))
		require.False(t, b.ContinueEvaluatingTree(2))
	})

	t.Run("rejecting bad moves", func(t *testing.T) {
		cases := []struct {
			name   string
			move   game.Move
			target error
		}{
			{"unknown kind", 4, game.ErrUnknownMove},
			{"other game", New(0).Moves()[0], game.ErrForeignMove},
		}
		for _, c := range cases {
			b := New(0)
			func() {
				defer func() {
					err, ok := recover().(error)
					require.True(t, ok, c.name)
					require.True(t, errors.Is(err, c.target), c.name)
				}()
				b.ApplyMove(c.move)
			}()
		}

		b := New(0)
		taken := b.Moves()[0]
		child := b.ApplyMove(taken)
		defer func() {
			err, ok := recover().(error)
			require.True(t, ok)
			require.True(t, errors.Is(err, game.ErrIllegalMove))
		}()
		child.ApplyMove(Move{rules: b.rules, Cell: taken.(Move).Cell})
	})

	t.Run("parsing invalid boards", func(t *testing.T) {
		_, err := Parse("XX", 0)
		require.Error(t, err)

		_, err = Parse("XXX X.. ...", 0)
		require.Error(t, err, "X cannot be four marks ahead")

		_, err = Parse("XQ. ... ...", 0)
		require.Error(t, err)
	})
}

func TestHash(t *testing.T) {
	t.Run("equal under rotation and reflection", func(t *testing.T) {
		corners := []string{"X.. ... ...", "..X ... ...", "... ... X..", "... ... ..X"}
		want := mustParse(t, corners[0]).Hash()
		for _, c := range corners[1:] {
			require.Equal(t, want, mustParse(t, c).Hash(), c)
		}
	})

	t.Run("distinct for different positions", func(t *testing.T) {
		require.NotEqual(t, mustParse(t, "X.. ... ...").Hash(), mustParse(t, ".X. ... ...").Hash())
		require.NotEqual(t, mustParse(t, "X.. ... ...").Hash(), mustParse(t, "....X....").Hash())
	})

	t.Run("distinct for the side to move", func(t *testing.T) {
		b := New(0)
		require.NotEqual(t, b.Hash(), b.ApplyMove(b.Moves()[4]).(*Board).Hash())
	})
}

func flat(b *Board) string {
	s := b.String()
	out := []byte{}
	for i := 0; i < len(s); i++ {
		if s[i] != '\n' {
			out = append(out, s[i])
		}
	}
	return string(out) + "\n"
}
