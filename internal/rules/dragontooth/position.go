// Package dragontooth backs the rules contract with
// github.com/dylhunn/dragontoothmg, whose Apply mutates the board in place and
// hands back the matching unapply closure.
package dragontooth

import (
	dragon "github.com/dylhunn/dragontoothmg"

	. "github.com/cricklet/minimax/internal/helpers"
	"github.com/cricklet/minimax/internal/rules"
)

type Backend struct{}

var _ rules.Backend = Backend{}

func (Backend) Name() string {
	return "dragontooth"
}

func (Backend) NewPosition(fen string) (rules.Position, Error) {
	return NewPosition(fen)
}

type move struct {
	m    dragon.Move
	node uint64
}

func (m move) String() string {
	return m.m.String()
}

type Position struct {
	board     dragon.Board
	unapplies []func()
	nodes     *rules.NodeStack
	history   *rules.History
}

var _ rules.Position = (*Position)(nil)

func NewPosition(fen string) (*Position, Error) {
	normalized, err := rules.NormalizeFen(fen)
	if !IsNil(err) {
		return nil, err
	}

	p := &Position{
		board:   dragon.ParseFen(normalized),
		nodes:   rules.NewNodeStack(),
		history: rules.NewHistory(),
	}
	p.history.Push(rules.HashPosition(p, p.Fen()))
	return p, NilError
}

func (p *Position) SideToMove() rules.Color {
	if p.board.Wtomove {
		return rules.White
	}
	return rules.Black
}

func pieceKindAt(bitboards *dragon.Bitboards, bit uint64) (rules.PieceKind, bool) {
	if bitboards.All&bit == 0 {
		return 0, false
	}
	switch {
	case bitboards.Pawns&bit != 0:
		return rules.Pawn, true
	case bitboards.Knights&bit != 0:
		return rules.Knight, true
	case bitboards.Bishops&bit != 0:
		return rules.Bishop, true
	case bitboards.Rooks&bit != 0:
		return rules.Rook, true
	case bitboards.Queens&bit != 0:
		return rules.Queen, true
	case bitboards.Kings&bit != 0:
		return rules.King, true
	}
	return 0, false
}

func (p *Position) PieceAt(square rules.Square) (rules.Piece, bool) {
	bit := uint64(1) << uint(square)
	if kind, ok := pieceKindAt(&p.board.White, bit); ok {
		return rules.Piece{Kind: kind, Color: rules.White}, true
	}
	if kind, ok := pieceKindAt(&p.board.Black, bit); ok {
		return rules.Piece{Kind: kind, Color: rules.Black}, true
	}
	return rules.Piece{}, false
}

func (p *Position) LegalMoves() []rules.Move {
	node := p.nodes.Current()
	legal := p.board.GenerateLegalMoves()

	result := make([]rules.Move, len(legal))
	for i, m := range legal {
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

	p.unapplies = append(p.unapplies, p.board.Apply(m.m))
	p.nodes.Push()
	p.history.Push(rules.HashPosition(p, p.Fen()))
	return NilError
}

func (p *Position) Undo() Error {
	if !p.nodes.Pop() {
		return Errorf("undo: no move to undo in %v", p.Fen())
	}
	unapply := p.unapplies[len(p.unapplies)-1]
	p.unapplies = p.unapplies[:len(p.unapplies)-1]
	unapply()
	p.history.Pop()
	return NilError
}

func (p *Position) Status() rules.Status {
	if len(p.board.GenerateLegalMoves()) == 0 {
		if p.board.OurKingInCheck() {
			return rules.Checkmate
		}
		return rules.Stalemate
	}
	return rules.DrawStatus(p, rules.HalfmoveClock(p.Fen()), p.history)
}

func (p *Position) IsTerminal() bool {
	return p.Status().IsTerminal()
}

func (p *Position) Fen() string {
	return p.board.ToFen()
}
