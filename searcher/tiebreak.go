package searcher

import (
	"math"

	"gametree/game"

	"golang.org/x/exp/rand"
)

// TieBreak selects among moves tied at the extremal value.
type TieBreak int

const (
	// LastTieWins keeps the most recently enumerated of the tied moves.
	LastTieWins TieBreak = iota
	// RandomTie draws uniformly among the moves tied at the final extremal value.
	RandomTie
)

func (t TieBreak) String() string {
	switch t {
	case LastTieWins:
		return "last"
	case RandomTie:
		return "random"
	default:
		return "unknown"
	}
}

// ParseTieBreak maps the names returned by String back to policies.
func ParseTieBreak(name string) (TieBreak, bool) {
	switch name {
	case "last", "":
		return LastTieWins, true
	case "random":
		return RandomTie, true
	default:
		return LastTieWins, false
	}
}

// ties folds child values into the best move of one node.
type ties struct {
	policy   TieBreak
	maximize bool
	seen     bool
	move     game.Move
	value    float64
	moves    []game.Move
}

func newTies(policy TieBreak, maximize bool) ties {
	return ties{
		policy:   policy,
		maximize: maximize,
		value:    worst(maximize),
	}
}

func (t *ties) offer(move game.Move, value float64) {
	switch {
	case !t.seen || t.improves(value):
		t.seen = true
		t.move, t.value = move, value
		if t.policy == RandomTie {
			t.moves = append(t.moves[:0], move)
		}
	case value == t.value:
		t.move = move
		if t.policy == RandomTie {
			t.moves = append(t.moves, move)
		}
	}
}

func (t *ties) improves(value float64) bool {
	if t.maximize {
		return value > t.value
	}
	return value < t.value
}

func (t *ties) pick(rng *rand.Rand) (game.Move, float64) {
	if t.policy == RandomTie && len(t.moves) > 1 {
		return t.moves[rng.Intn(len(t.moves))], t.value
	}
	return t.move, t.value
}

// worst is the identity of the fold: nothing is worse for a maximizer than -Inf.
func worst(maximize bool) float64 {
	if maximize {
		return math.Inf(-1)
	}
	return math.Inf(1)
}
