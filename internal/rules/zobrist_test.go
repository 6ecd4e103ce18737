package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPosition(t *testing.T) {
	board := mapBoard{"e1": {King, White}, "e8": {King, Black}, "h1": {Rook, White}}
	fen := "4k3/8/8/8/8/8/8/4K2R w K - 12 40"

	hash := HashPosition(board, fen)
	assert.Equal(t, hash, HashPosition(board, "4k3/8/8/8/8/8/8/4K2R w K - 0 1"))
	assert.NotEqual(t, hash, HashPosition(board, "4k3/8/8/8/8/8/8/4K2R b K - 12 40"))
	assert.NotEqual(t, hash, HashPosition(board, "4k3/8/8/8/8/8/8/4K2R w - - 12 40"))
	assert.NotEqual(t, hash, HashPosition(board, "4k3/8/8/8/8/8/8/4K2R w K e3 12 40"))

	moved := mapBoard{"e1": {King, White}, "e8": {King, Black}, "h2": {Rook, White}}
	assert.NotEqual(t, hash, HashPosition(moved, fen))

	recolored := mapBoard{"e1": {King, White}, "e8": {King, Black}, "h1": {Rook, Black}}
	assert.NotEqual(t, hash, HashPosition(recolored, fen))
}
