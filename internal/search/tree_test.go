package search

import (
	"strings"

	"github.com/cricklet/minimax/internal/evaluation"
	. "github.com/cricklet/minimax/internal/helpers"
	"github.com/cricklet/minimax/internal/rules"
)

// treeNode is one node of a hand written game tree. The move leading to it
// is its name.
type treeNode struct {
	name     string
	score    evaluation.Score
	status   rules.Status
	children []*treeNode
}

func (n *treeNode) String() string {
	return n.name
}

func leaf(name string, score evaluation.Score) *treeNode {
	return &treeNode{name: name, score: score}
}

func branch(name string, children ...*treeNode) *treeNode {
	return &treeNode{name: name, children: children}
}

// treePosition walks a treeNode tree as if it were a position. It counts
// every apply and undo so tests can check they pair up.
type treePosition struct {
	root      *treeNode
	rootColor rules.Color
	path      []*treeNode

	failOn string

	applies  int
	undos    int
	maxDepth int
	visited  []string
}

var _ rules.Position = (*treePosition)(nil)

func newTreePosition(color rules.Color, children ...*treeNode) *treePosition {
	root := branch("root", children...)
	return &treePosition{
		root:      root,
		rootColor: color,
		path:      []*treeNode{root},
	}
}

func (p *treePosition) current() *treeNode {
	return p.path[len(p.path)-1]
}

func (p *treePosition) PieceAt(square rules.Square) (rules.Piece, bool) {
	return rules.Piece{}, false
}

func (p *treePosition) SideToMove() rules.Color {
	if (len(p.path)-1)%2 == 0 {
		return p.rootColor
	}
	return p.rootColor.Other()
}

func (p *treePosition) LegalMoves() []rules.Move {
	return MapSlice(p.current().children, func(n *treeNode) rules.Move {
		return n
	})
}

func (p *treePosition) Apply(move rules.Move) Error {
	node, ok := move.(*treeNode)
	if !ok || !Contains(p.current().children, node) {
		return Errorf("%v is not a child of %v", move, p.current())
	}
	if node.name == p.failOn {
		return Errorf("refusing %v", node)
	}
	p.applies++
	p.path = append(p.path, node)
	p.maxDepth = max(p.maxDepth, len(p.path)-1)
	p.visited = append(p.visited, p.Fen())
	return NilError
}

func (p *treePosition) Undo() Error {
	if len(p.path) == 1 {
		return Errorf("undo at root")
	}
	p.undos++
	p.path = p.path[:len(p.path)-1]
	return NilError
}

func (p *treePosition) Status() rules.Status {
	return p.current().status
}

func (p *treePosition) IsTerminal() bool {
	return p.Status().IsTerminal()
}

func (p *treePosition) Fen() string {
	return strings.Join(MapSlice(p.path[1:], func(n *treeNode) string {
		return n.name
	}), "/")
}

var treeEvaluator = EvaluatorFunc(func(board rules.Board) evaluation.Score {
	return board.(*treePosition).current().score
})

func newTreeSearcher(args ...string) *Searcher {
	options, err := SearcherOptionsFromArgs(args...)
	if !IsNil(err) {
		panic(err)
	}
	searcher := NewSearcher(&SilentLogger, options)
	searcher.Evaluator = treeEvaluator
	return searcher
}
