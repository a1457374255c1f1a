// Package pawns is hexapawn generalized to a small grid. Each side starts with
// a full row of pawns on its home rank. A pawn steps straight forward onto an
// empty square or diagonally forward onto an enemy pawn, capturing it. A side
// wins by reaching the far rank, by capturing every enemy pawn, or by leaving
// the opponent without a legal move.
package pawns

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"

	"gametree/game"
)

const (
	White = "white"
	Black = "black"
	empty = '.'
)

var players = [2]string{White, Black}

type Square struct {
	Row int
	Col int
}

// Rules are the dimensions and depth limit shared by every board of a game.
type Rules struct {
	Rows   int
	Cols   int
	MaxPly int
}

type Move struct {
	rules *Rules
	From  Square
	To    Square
}

func (m Move) String() string {
	return fmt.Sprintf("%c%d-%c%d", 'a'+m.From.Col, m.From.Row+1, 'a'+m.To.Col, m.To.Row+1)
}

type Board struct {
	game.Perspective
	rules  *Rules
	cells  []byte // row-major, immutable once built
	winner string
	score  game.CachedScore
}

// New returns the starting position with White to move. A positive maxPly
// stops the search at that depth.
func New(rows, cols, maxPly int) (*Board, error) {
	if rows < 3 || cols < 1 {
		return nil, fmt.Errorf("pawn grid must be at least 3x1, got %dx%d", rows, cols)
	}

	rules := &Rules{Rows: rows, Cols: cols, MaxPly: maxPly}
	cells := make([]byte, rows*cols)
	for i := range cells {
		cells[i] = empty
	}
	for c := 0; c < cols; c++ {
		cells[c] = 'W'
		cells[(rows-1)*cols+c] = 'B'
	}

	return &Board{
		Perspective: game.Perspective{Current: White, Vantage: White},
		rules:       rules,
		cells:       cells,
	}, nil
}

func (b *Board) Rules() Rules {
	return *b.rules
}

func (b *Board) Players() [2]string {
	return players
}

func (b *Board) Winner() string {
	return b.winner
}

// At returns 'W', 'B' or '.' for the square.
func (b *Board) At(sq Square) byte {
	return b.cells[sq.Row*b.rules.Cols+sq.Col]
}

func (b *Board) Moves() []game.Move {
	if b.winner != "" {
		return nil
	}
	return b.movesFor(b.Vantage)
}

// HeuristicScore is a sentinel for a decided game and the pawn difference
// otherwise, both from the current player's side.
func (b *Board) HeuristicScore() float64 {
	return b.score.Get(func() float64 {
		switch b.winner {
		case b.Current:
			return game.WinScore
		case "":
		default:
			return game.LossScore
		}
		own := b.count(pawn(b.Current))
		other := b.count(pawn(game.Opponent(players, b.Current)))
		return float64(own - other)
	})
}

func (b *Board) ApplyMove(move game.Move) game.Board {
	m, ok := move.(Move)
	if !ok {
		game.Violation(game.ErrUnknownMove, "%T is not a pawn move", move)
	}
	if m.rules != b.rules {
		game.Violation(game.ErrForeignMove, "move %v was generated by another pawn game", m)
	}
	if !b.legal(m) {
		game.Violation(game.ErrIllegalMove, "%s cannot play %v", b.Vantage, m)
	}

	mover := b.Vantage
	opponent := game.Opponent(players, mover)
	next := &Board{
		Perspective: b.Pass(opponent),
		rules:       b.rules,
		cells:       append([]byte(nil), b.cells...),
	}
	next.cells[b.index(m.To)] = pawn(mover)
	next.cells[b.index(m.From)] = empty

	switch {
	case m.To.Row == homeRow(opponent, b.rules.Rows):
		next.winner = mover
	case next.count(pawn(opponent)) == 0:
		next.winner = mover
	case len(next.movesFor(opponent)) == 0:
		next.winner = mover
	}
	return next
}

func (b *Board) ContinueEvaluatingTree(ply int) bool {
	if b.winner != "" {
		return false
	}
	return b.rules.MaxPly <= 0 || ply < b.rules.MaxPly
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

func (b *Board) Hash() game.StateHash {
	h := fnv.New64a()
	h.Write(b.cells)
	h.Write([]byte(b.Vantage))
	var dims [16]byte
	binary.LittleEndian.PutUint64(dims[:8], uint64(b.rules.Rows))
	binary.LittleEndian.PutUint64(dims[8:], uint64(b.rules.Cols))
	h.Write(dims[:])
	return game.StateHash(h.Sum64())
}

// String draws the board with White's home rank at the bottom.
func (b *Board) String() string {
	var sb strings.Builder
	for r := b.rules.Rows - 1; r >= 0; r-- {
		sb.Write(b.cells[r*b.rules.Cols : (r+1)*b.rules.Cols])
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) movesFor(player string) []game.Move {
	own, enemy := pawn(player), pawn(game.Opponent(players, player))
	dir := direction(player)

	moves := []game.Move{}
	for r := 0; r < b.rules.Rows; r++ {
		for c := 0; c < b.rules.Cols; c++ {
			from := Square{Row: r, Col: c}
			if b.At(from) != own {
				continue
			}
			ahead := r + dir
			if ahead < 0 || ahead >= b.rules.Rows {
				continue
			}
			if to := (Square{Row: ahead, Col: c}); b.At(to) == empty {
				moves = append(moves, Move{rules: b.rules, From: from, To: to})
			}
			for _, dc := range []int{-1, 1} {
				to := Square{Row: ahead, Col: c + dc}
				if to.Col >= 0 && to.Col < b.rules.Cols && b.At(to) == enemy {
					moves = append(moves, Move{rules: b.rules, From: from, To: to})
				}
			}
		}
	}
	return moves
}

func (b *Board) legal(m Move) bool {
	for _, candidate := range b.Moves() {
		if candidate.(Move) == m {
			return true
		}
	}
	return false
}

func (b *Board) count(p byte) int {
	n := 0
	for _, c := range b.cells {
		if c == p {
			n++
		}
	}
	return n
}

func (b *Board) index(sq Square) int {
	return sq.Row*b.rules.Cols + sq.Col
}

func pawn(player string) byte {
	if player == White {
		return 'W'
	}
	return 'B'
}

func direction(player string) int {
	if player == White {
		return 1
	}
	return -1
}

func homeRow(player string, rows int) int {
	if player == White {
		return 0
	}
	return rows - 1
}
