// Package tictactoe is 3x3 noughts and crosses. X moves first.
package tictactoe

import (
	"fmt"
	"strings"

	"gametree/game"
)

const (
	X     = "X"
	O     = "O"
	Size  = 3
	Cells = Size * Size
	empty = '.'
)

var players = [2]string{X, O}

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// rules is shared by every board of one game, so moves can be traced back to it.
type rules struct {
	maxPly int
}

type Move struct {
	rules *rules
	Cell  int
}

func (m Move) String() string {
	return fmt.Sprintf("%d,%d", m.Cell/Size, m.Cell%Size)
}

type Board struct {
	game.Perspective
	rules  *rules
	cells  [Cells]byte
	winner string
	score  game.CachedScore
}

// New returns an empty board with X to move. A positive maxPly stops the
// search at that depth.
func New(maxPly int) *Board {
	b := &Board{
		Perspective: game.Perspective{Current: X, Vantage: X},
		rules:       &rules{maxPly: maxPly},
	}
	for i := range b.cells {
		b.cells[i] = empty
	}
	return b
}

// Parse reads nine cells row by row ("X", "O" or "."), ignoring whitespace.
// The side to move follows from the mark counts.
func Parse(cells string, maxPly int) (*Board, error) {
	cells = strings.Join(strings.Fields(cells), "")
	if len(cells) != Cells {
		return nil, fmt.Errorf("tic-tac-toe board needs %d cells, got %d", Cells, len(cells))
	}

	b := New(maxPly)
	xs, os := 0, 0
	for i := 0; i < Cells; i++ {
		switch cells[i] {
		case 'X', 'x':
			b.cells[i] = 'X'
			xs++
		case 'O', 'o':
			b.cells[i] = 'O'
			os++
		case '.', '_', '-':
		default:
			return nil, fmt.Errorf("unexpected cell %q at %d", cells[i], i)
		}
	}
	if xs != os && xs != os+1 {
		return nil, fmt.Errorf("impossible mark counts: %d X and %d O", xs, os)
	}

	if xs > os {
		b.Perspective = game.Perspective{Current: O, Vantage: O}
	}
	b.winner = b.findWinner()
	return b, nil
}

func (b *Board) Players() [2]string {
	return players
}

func (b *Board) Winner() string {
	return b.winner
}

func (b *Board) Full() bool {
	for _, c := range b.cells {
		if c == empty {
			return false
		}
	}
	return true
}

func (b *Board) Moves() []game.Move {
	if b.winner != "" {
		return nil
	}
	moves := []game.Move{}
	for i, c := range b.cells {
		if c == empty {
			moves = append(moves, Move{rules: b.rules, Cell: i})
		}
	}
	return moves
}

// HeuristicScore is 1 for a win of the current player, -1 for a loss and 0 otherwise.
func (b *Board) HeuristicScore() float64 {
	return b.score.Get(func() float64 {
		switch b.winner {
		case "":
			return 0
		case b.Current:
			return 1
		default:
			return -1
		}
	})
}

func (b *Board) ApplyMove(move game.Move) game.Board {
	m, ok := move.(Move)
	if !ok {
		game.Violation(game.ErrUnknownMove, "%T is not a tic-tac-toe move", move)
	}
	if m.rules != b.rules {
		game.Violation(game.ErrForeignMove, "move %v was generated by another tic-tac-toe game", m)
	}
	if m.Cell < 0 || m.Cell >= Cells || b.cells[m.Cell] != empty || b.winner != "" {
		game.Violation(game.ErrIllegalMove, "cannot mark %v", m)
	}

	next := &Board{
		Perspective: b.Pass(game.Opponent(players, b.Vantage)),
		rules:       b.rules,
		cells:       b.cells,
	}
	next.cells[m.Cell] = b.Vantage[0]
	next.winner = next.findWinner()
	return next
}

func (b *Board) ContinueEvaluatingTree(ply int) bool {
	if b.winner != "" || b.Full() {
		return false
	}
	return b.rules.maxPly <= 0 || ply < b.rules.maxPly
}

// Rebase scores the same position from the side to move.
func (b *Board) Rebase() game.Board {
	return &Board{
		Perspective: b.Perspective.Rebase(),
		rules:       b.rules,
		cells:       b.cells,
		winner:      b.winner,
	}
}

func (b *Board) findWinner() string {
	for _, line := range lines {
		c := b.cells[line[0]]
		if c != empty && c == b.cells[line[1]] && c == b.cells[line[2]] {
			return string(c)
		}
	}
	return ""
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		sb.Write(b.cells[r*Size : (r+1)*Size])
		sb.WriteByte('\n')
	}
	return sb.String()
}
