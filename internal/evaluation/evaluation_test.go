package evaluation

import (
	"testing"

	"github.com/cricklet/minimax/internal/rules"
	"github.com/cricklet/minimax/internal/rules/notnilchess"
	"github.com/cricklet/minimax/internal/rules/rulestest"
	"github.com/stretchr/testify/assert"
)

type pieces map[rules.Square]rules.Piece

func (p pieces) PieceAt(square rules.Square) (rules.Piece, bool) {
	piece, ok := p[square]
	return piece, ok
}

func square(t *testing.T, s string) rules.Square {
	result, err := rules.SquareFromString(s)
	assert.True(t, err.IsNil(), err)
	return result
}

func TestScore(t *testing.T) {
	assert.Equal(t, Score(100), PieceValue(rules.Pawn))
	assert.Equal(t, Score(9000), PieceValue(rules.King))
	assert.Equal(t, "12.5", Score(125).String())
	assert.Equal(t, "-4", Score(-40).String())
	assert.Equal(t, Score(5), Units(0.5))
	assert.Equal(t, 0.5, Score(5).Units())
}

func TestStartingPositionIsBalanced(t *testing.T) {
	pos := rulestest.NewPosition(t, notnilchess.Backend{}, rules.StartingFen)
	assert.Equal(t, Score(0), Evaluate(pos))
	assert.Equal(t, Score(0), Material(pos))
}

func TestMirroredContributions(t *testing.T) {
	for kind := rules.Pawn; kind < rules.NumPieceKinds; kind++ {
		for s := rules.Square(0); s < rules.NumSquares; s++ {
			white := rules.Piece{Kind: kind, Color: rules.White}
			black := rules.Piece{Kind: kind, Color: rules.Black}
			assert.Equal(t, Contribution(white, s), -Contribution(black, s.Mirror()),
				"%v on %v", kind, s)
			assert.Equal(t, PositionalBonus(white, s), PositionalBonus(black, s.Mirror()))
		}
	}
}

func TestPositionalBonus(t *testing.T) {
	whitePawn := rules.Piece{Kind: rules.Pawn, Color: rules.White}
	blackPawn := rules.Piece{Kind: rules.Pawn, Color: rules.Black}
	whiteKnight := rules.Piece{Kind: rules.Knight, Color: rules.White}

	assert.Equal(t, Score(-20), PositionalBonus(whitePawn, square(t, "e2")))
	assert.Equal(t, Score(20), PositionalBonus(whitePawn, square(t, "e4")))
	assert.Equal(t, Score(50), PositionalBonus(whitePawn, square(t, "a7")))
	assert.Equal(t, Score(50), PositionalBonus(blackPawn, square(t, "a2")))
	assert.Equal(t, Score(-40), PositionalBonus(whiteKnight, square(t, "b1")))
	assert.Equal(t, Score(10), PositionalBonus(whiteKnight, square(t, "c3")))
	assert.Equal(t, Score(20), PositionalBonus(whiteKnight, square(t, "d4")))

	assert.Equal(t, Score(120), Contribution(whitePawn, square(t, "e4")))
	assert.Equal(t, Score(-120), Contribution(blackPawn, square(t, "e5")))
}

func TestOpeningMoveDeltas(t *testing.T) {
	backend := notnilchess.Backend{}
	for _, c := range []struct {
		move  string
		delta Score
	}{
		{"e2e4", 40},
		{"d2d4", 40},
		{"b1c3", 50},
		{"g1f3", 50},
		{"a2a3", 0},
		{"h2h4", -5},
	} {
		pos := rulestest.NewPosition(t, backend, rules.StartingFen)
		rulestest.ApplyMoves(t, pos, c.move)
		assert.Equal(t, c.delta, Evaluate(pos), c.move)
	}
}

func TestEvaluateIgnoresStatus(t *testing.T) {
	// Fool's mate: white is mated but only the board counts.
	pos := rulestest.NewPosition(t, notnilchess.Backend{},
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.Equal(t, rules.Checkmate, pos.Status())
	assert.Equal(t, Score(0), Material(pos))

	board := pieces{}
	for s := rules.Square(0); s < rules.NumSquares; s++ {
		if piece, ok := pos.PieceAt(s); ok {
			board[s] = piece
		}
	}
	assert.Equal(t, Evaluate(board), Evaluate(pos))
}

func TestMaterial(t *testing.T) {
	board := pieces{
		square(t, "e1"): {Kind: rules.King, Color: rules.White},
		square(t, "e8"): {Kind: rules.King, Color: rules.Black},
		square(t, "d5"): {Kind: rules.Queen, Color: rules.Black},
		square(t, "e4"): {Kind: rules.Pawn, Color: rules.White},
	}
	assert.Equal(t, Score(-800), Material(board))

	delete(board, square(t, "d5"))
	assert.Equal(t, Score(100), Material(board))
	assert.Equal(t, Score(120), Evaluate(board))
}
