package searcher

import "gametree/game"

var mockPlayers = [2]string{"max", "min"}

type mockNode struct {
	label    string
	score    float64
	children []*mockNode
	open     bool    // keep searching even without children
	maximize *bool   // overrides the default opposition
	vantage  *string // overrides the turn passing to the opponent
}

func leaf(label string, score float64) *mockNode {
	return &mockNode{label: label, score: score}
}

func branch(label string, children ...*mockNode) *mockNode {
	return &mockNode{label: label, children: children}
}

type mockBoard struct {
	game.Perspective
	node *mockNode
}

func newMockBoard(root *mockNode) *mockBoard {
	return &mockBoard{
		Perspective: game.Perspective{Current: "max", Vantage: "max"},
		node:        root,
	}
}

func (m *mockBoard) Players() [2]string {
	return mockPlayers
}

func (m *mockBoard) Maximize() bool {
	if m.node.maximize != nil {
		return *m.node.maximize
	}
	return m.Perspective.Maximize()
}

func (m *mockBoard) Moves() []game.Move {
	moves := make([]game.Move, len(m.node.children))
	for i, child := range m.node.children {
		moves[i] = child.label
	}
	return moves
}

func (m *mockBoard) HeuristicScore() float64 {
	return m.node.score
}

func (m *mockBoard) ApplyMove(move game.Move) game.Board {
	for _, child := range m.node.children {
		if child.label == move {
			next := game.Opponent(mockPlayers, m.Vantage)
			if child.vantage != nil {
				next = *child.vantage
			}
			return &mockBoard{Perspective: m.Pass(next), node: child}
		}
	}
	game.Violation(game.ErrUnknownMove, "no child %v under %q", move, m.node.label)
	return nil
}

func (m *mockBoard) ContinueEvaluatingTree(ply int) bool {
	return len(m.node.children) > 0 || m.node.open
}

// minimizing returns the board with the opponent to move at the root.
func (m *mockBoard) minimizing() *mockBoard {
	m.Vantage = "min"
	return m
}
