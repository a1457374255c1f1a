package game

import "math"

// Move is produced and consumed by the same game; the searcher never inspects it.
// A nil Move means no move.
type Move any

type StateHash uint64

// Best and worst possible scores, used by games for decided positions.
var (
	WinScore  = math.Inf(1)
	LossScore = math.Inf(-1)
)

// Board is one immutable position plus the metadata needed to search it.
// ApplyMove always returns a new Board and never mutates the receiver.
type Board interface {
	// CurrentPlayer is the player whose frame every score is expressed in.
	// It stays fixed across ApplyMove.
	CurrentPlayer() string
	// VantagePoint is the player whose turn it is at this node.
	VantagePoint() string
	// Maximize reports whether this node keeps its largest child value.
	Maximize() bool
	Moves() []Move
	HeuristicScore() float64
	ApplyMove(move Move) Board
	// ContinueEvaluatingTree returns false when the node is a search leaf.
	ContinueEvaluatingTree(ply int) bool
}

// OpposedBoard is a Board of a strictly two-player zero-sum game. Every
// child returned by ApplyMove must be an OpposedBoard whose vantage point is
// the other player and whose Maximize is the negation of its parent's.
type OpposedBoard interface {
	Board
	Players() [2]string
}

// Hasher is implemented by boards that can identify their position.
type Hasher interface {
	Hash() StateHash
}

// Rebaser is implemented by boards that can re-root the scoring frame on the
// side to move, which is needed between turns of real play.
type Rebaser interface {
	Rebase() Board
}

// Outcome is implemented by boards that know who won. Winner returns "" while
// the game is undecided or drawn.
type Outcome interface {
	Winner() string
}

// Opponent returns the element of players that is not player.
func Opponent(players [2]string, player string) string {
	if players[0] == player {
		return players[1]
	}
	return players[0]
}
