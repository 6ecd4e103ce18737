// Package notnilchess backs the rules contract with github.com/notnil/chess.
// notnil positions are immutable, so the mutable Position keeps a stack of
// them: Apply pushes the updated position and Undo pops it.
package notnilchess

import (
	"github.com/notnil/chess"

	. "github.com/cricklet/minimax/internal/helpers"
	"github.com/cricklet/minimax/internal/rules"
)

type Backend struct{}

var _ rules.Backend = Backend{}

func (Backend) Name() string {
	return "notnil"
}

func (Backend) NewPosition(fen string) (rules.Position, Error) {
	return NewPosition(fen)
}

type move struct {
	m    *chess.Move
	node uint64
}

func (m move) String() string {
	return m.m.String()
}

type Position struct {
	stack   []*chess.Position
	nodes   *rules.NodeStack
	history *rules.History
}

var _ rules.Position = (*Position)(nil)

func NewPosition(fen string) (*Position, Error) {
	normalized, err := rules.NormalizeFen(fen)
	if !IsNil(err) {
		return nil, err
	}

	option, fenErr := chess.FEN(normalized)
	if fenErr != nil {
		return nil, Errorf("fen %q: %w", fen, fenErr)
	}
	root := chess.NewGame(option).Position()

	p := &Position{
		stack:   []*chess.Position{root},
		nodes:   rules.NewNodeStack(),
		history: rules.NewHistory(),
	}
	p.history.Push(rules.HashPosition(p, root.String()))
	return p, NilError
}

func (p *Position) top() *chess.Position {
	return p.stack[len(p.stack)-1]
}

func (p *Position) SideToMove() rules.Color {
	if p.top().Turn() == chess.Black {
		return rules.Black
	}
	return rules.White
}

var _pieceKinds = map[chess.PieceType]rules.PieceKind{
	chess.Pawn:   rules.Pawn,
	chess.Knight: rules.Knight,
	chess.Bishop: rules.Bishop,
	chess.Rook:   rules.Rook,
	chess.Queen:  rules.Queen,
	chess.King:   rules.King,
}

func (p *Position) PieceAt(square rules.Square) (rules.Piece, bool) {
	piece := p.top().Board().Piece(chess.Square(square))
	if piece == chess.NoPiece {
		return rules.Piece{}, false
	}

	color := rules.White
	if piece.Color() == chess.Black {
		color = rules.Black
	}
	return rules.Piece{Kind: _pieceKinds[piece.Type()], Color: color}, true
}

func (p *Position) LegalMoves() []rules.Move {
	node := p.nodes.Current()
	valid := p.top().ValidMoves()

	result := make([]rules.Move, len(valid))
	for i, m := range valid {
		result[i] = move{m, node}
	}
	return result
}

func (p *Position) Apply(token rules.Move) Error {
	m, ok := token.(move)
	if !ok {
		return Errorf("apply %v: move of type %T was not generated by this position", token, token)
	}
	if m.node != p.nodes.Current() {
		return Errorf("apply %v: move belongs to another node than %v", m, p.Fen())
	}

	next := p.top().Update(m.m)
	if next == nil {
		return Errorf("apply %v: rejected in %v", m, p.Fen())
	}

	p.stack = append(p.stack, next)
	p.nodes.Push()
	p.history.Push(rules.HashPosition(p, next.String()))
	return NilError
}

func (p *Position) Undo() Error {
	if !p.nodes.Pop() {
		return Errorf("undo: no move to undo in %v", p.Fen())
	}
	p.stack = p.stack[:len(p.stack)-1]
	p.history.Pop()
	return NilError
}

func (p *Position) Status() rules.Status {
	switch p.top().Status() {
	case chess.Checkmate:
		return rules.Checkmate
	case chess.Stalemate:
		return rules.Stalemate
	}
	return rules.DrawStatus(p, rules.HalfmoveClock(p.Fen()), p.history)
}

func (p *Position) IsTerminal() bool {
	return p.Status().IsTerminal()
}

func (p *Position) Fen() string {
	return p.top().String()
}
