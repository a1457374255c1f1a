// Package testtree is a hand-built game tree with fixed leaf scores, used to
// check the searchers against worked examples.
package testtree

import (
	"gametree/game"
)

// Node is a labeled position. Leaves carry the score; inner nodes are
// scored only when a search stops on them.
type Node struct {
	Label    string
	Score    float64
	Children []*Node
	// Maximize overrides the default opposition when set.
	Maximize *bool
}

func Leaf(label string, score float64) *Node {
	return &Node{Label: label, Score: score}
}

func Branch(label string, children ...*Node) *Node {
	return &Node{Label: label, Children: children}
}

// Move selects the Index-th child of the node it was generated from.
type Move struct {
	from  *Node
	Index int
}

func (m Move) String() string {
	return m.from.Children[m.Index].Label
}

type Board struct {
	game.Perspective
	players [2]string
	node    *Node
	maxPly  int
	score   game.CachedScore
}

// New returns a board at root with first to move and scored from first's frame.
// A positive maxPly stops the search at that depth.
func New(root *Node, first, second string, maxPly int) *Board {
	return &Board{
		Perspective: game.Perspective{Current: first, Vantage: first},
		players:     [2]string{first, second},
		node:        root,
		maxPly:      maxPly,
	}
}

func (b *Board) Node() *Node {
	return b.node
}

func (b *Board) Players() [2]string {
	return b.players
}

func (b *Board) Maximize() bool {
	if b.node.Maximize != nil {
		return *b.node.Maximize
	}
	return b.Perspective.Maximize()
}

func (b *Board) Moves() []game.Move {
	moves := make([]game.Move, len(b.node.Children))
	for i := range b.node.Children {
		moves[i] = Move{from: b.node, Index: i}
	}
	return moves
}

func (b *Board) HeuristicScore() float64 {
	return b.score.Get(func() float64 {
		return b.node.Score
	})
}

func (b *Board) ApplyMove(move game.Move) game.Board {
	m, ok := move.(Move)
	if !ok {
		game.Violation(game.ErrUnknownMove, "%T is not a test tree move", move)
	}
	if m.from != b.node {
		game.Violation(game.ErrForeignMove, "move was generated at another node than %q", b.node.Label)
	}
	if m.Index < 0 || m.Index >= len(b.node.Children) {
		game.Violation(game.ErrIllegalMove, "node %q has no child %d", b.node.Label, m.Index)
	}

	return &Board{
		Perspective: b.Pass(game.Opponent(b.players, b.Vantage)),
		players:     b.players,
		node:        b.node.Children[m.Index],
		maxPly:      b.maxPly,
	}
}

func (b *Board) ContinueEvaluatingTree(ply int) bool {
	if b.maxPly > 0 && ply >= b.maxPly {
		return false
	}
	return len(b.node.Children) > 0
}

// Canonical builds the usual alpha-beta demonstration tree: four plies,
// leaves 5,6,7,4,5,3,6,6,9,7,5,9,8,6, root value 6 for the maximizer.
func Canonical() *Node {
	return Branch("root",
		Branch("a",
			Branch("a1",
				Branch("a1a", Leaf("a1a1", 5), Leaf("a1a2", 6)),
				Branch("a1b", Leaf("a1b1", 7), Leaf("a1b2", 4), Leaf("a1b3", 5)),
			),
			Branch("a2",
				Branch("a2a", Leaf("a2a1", 3)),
			),
		),
		Branch("b",
			Branch("b1",
				Branch("b1a", Leaf("b1a1", 6)),
				Branch("b1b", Leaf("b1b1", 6), Leaf("b1b2", 9)),
			),
			Branch("b2",
				Branch("b2a", Leaf("b2a1", 7)),
			),
		),
		Branch("c",
			Branch("c1",
				Branch("c1a", Leaf("c1a1", 5)),
			),
			Branch("c2",
				Branch("c2a", Leaf("c2a1", 9), Leaf("c2a2", 8)),
				Branch("c2b", Leaf("c2b1", 6)),
			),
		),
	)
}
