package dragontooth

import (
	"testing"

	. "github.com/cricklet/minimax/internal/helpers"
	"github.com/cricklet/minimax/internal/rules"
	"github.com/cricklet/minimax/internal/rules/rulestest"
	"github.com/stretchr/testify/assert"
)

func TestContract(t *testing.T) {
	rulestest.Contract(t, Backend{})
}

func TestCaptureRemovesPiece(t *testing.T) {
	pos, err := NewPosition(rules.StartingFen)
	assert.True(t, IsNil(err), err)

	rulestest.ApplyMoves(t, pos, "e2e4", "d7d5", "e4d5")

	d5, _ := rules.SquareFromString("d5")
	piece, ok := pos.PieceAt(d5)
	assert.True(t, ok)
	assert.Equal(t, rules.Piece{Kind: rules.Pawn, Color: rules.White}, piece)

	for i := 0; i < 3; i++ {
		assert.True(t, IsNil(pos.Undo()))
	}
	assert.Equal(t, rules.StartingFen, pos.Fen())
}
