// Package rulestest checks that a rules backend honours the Position
// contract the searcher relies on.
package rulestest

import (
	"testing"

	. "github.com/cricklet/minimax/internal/helpers"
	. "github.com/cricklet/minimax/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type foreignMove struct{}

func (foreignMove) String() string {
	return "e2e4"
}

func NewPosition(t *testing.T, backend Backend, fen string) Position {
	pos, err := backend.NewPosition(fen)
	require.True(t, IsNil(err), err)
	return pos
}

// FindMove returns the legal move with the given UCI text.
func FindMove(pos Position, uci string) Optional[Move] {
	return FindInSlice(pos.LegalMoves(), func(m Move) bool {
		return m.String() == uci
	})
}

func ApplyMoves(t *testing.T, pos Position, moves ...string) {
	for _, uci := range moves {
		move := FindMove(pos, uci)
		require.True(t, move.HasValue(), "%v is not legal in %v", uci, pos.Fen())
		err := pos.Apply(move.Value())
		require.True(t, IsNil(err), err)
	}
}

// Snapshot captures everything about a position the searcher may observe.
type Snapshot struct {
	Fen    string
	Side   Color
	Status Status
	Moves  []string
	Pieces map[Square]Piece
}

func TakeSnapshot(pos Position) Snapshot {
	pieces := map[Square]Piece{}
	for square := Square(0); square < NumSquares; square++ {
		if piece, ok := pos.PieceAt(square); ok {
			pieces[square] = piece
		}
	}
	return Snapshot{
		Fen:    pos.Fen(),
		Side:   pos.SideToMove(),
		Status: pos.Status(),
		Moves:  MapSlice(pos.LegalMoves(), func(m Move) string { return m.String() }),
		Pieces: pieces,
	}
}

func Contract(t *testing.T, backend Backend) {
	t.Run("StartingPosition", func(t *testing.T) {
		pos := NewPosition(t, backend, StartingFen)

		assert.Equal(t, StartingFen, pos.Fen())
		assert.Equal(t, White, pos.SideToMove())
		assert.Equal(t, Ongoing, pos.Status())
		assert.False(t, pos.IsTerminal())
		assert.Len(t, pos.LegalMoves(), 20)

		e1, _ := SquareFromString("e1")
		king, ok := pos.PieceAt(e1)
		assert.True(t, ok)
		assert.Equal(t, Piece{Kind: King, Color: White}, king)

		d8, _ := SquareFromString("d8")
		queen, ok := pos.PieceAt(d8)
		assert.True(t, ok)
		assert.Equal(t, Piece{Kind: Queen, Color: Black}, queen)

		e4, _ := SquareFromString("e4")
		_, ok = pos.PieceAt(e4)
		assert.False(t, ok)
	})

	t.Run("ApplyUndoRoundTrip", func(t *testing.T) {
		pos := NewPosition(t, backend, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
		before := TakeSnapshot(pos)

		for _, move := range pos.LegalMoves() {
			err := pos.Apply(move)
			require.True(t, IsNil(err), err)
			assert.Equal(t, Black, pos.SideToMove())

			for _, reply := range pos.LegalMoves() {
				require.True(t, IsNil(pos.Apply(reply)))
				require.True(t, IsNil(pos.Undo()))
			}

			err = pos.Undo()
			require.True(t, IsNil(err), err)
			assert.Equal(t, before, TakeSnapshot(pos), move.String())
		}
	})

	t.Run("CastlingAndEnPassantRestored", func(t *testing.T) {
		pos := NewPosition(t, backend, "r3k2r/8/8/3pP3/8/8/8/R3K2R w KQkq d6 0 1")
		before := TakeSnapshot(pos)

		ApplyMoves(t, pos, "e1g1")
		g1, _ := SquareFromString("g1")
		f1, _ := SquareFromString("f1")
		king, _ := pos.PieceAt(g1)
		rook, _ := pos.PieceAt(f1)
		assert.Equal(t, Piece{Kind: King, Color: White}, king)
		assert.Equal(t, Piece{Kind: Rook, Color: White}, rook)
		require.True(t, IsNil(pos.Undo()))

		ApplyMoves(t, pos, "e5d6")
		d5, _ := SquareFromString("d5")
		_, ok := pos.PieceAt(d5)
		assert.False(t, ok)
		require.True(t, IsNil(pos.Undo()))

		assert.Equal(t, before, TakeSnapshot(pos))
	})

	t.Run("RejectsForeignAndStaleMoves", func(t *testing.T) {
		pos := NewPosition(t, backend, StartingFen)

		err := pos.Apply(foreignMove{})
		assert.False(t, IsNil(err))

		rootMoves := pos.LegalMoves()
		require.True(t, IsNil(pos.Apply(rootMoves[0])))

		err = pos.Apply(rootMoves[1])
		assert.False(t, IsNil(err))

		require.True(t, IsNil(pos.Undo()))
		assert.True(t, IsNil(pos.Apply(rootMoves[1])))
		assert.True(t, IsNil(pos.Undo()))
		assert.Equal(t, StartingFen, pos.Fen())
	})

	t.Run("UndoWithoutApply", func(t *testing.T) {
		pos := NewPosition(t, backend, StartingFen)
		assert.False(t, IsNil(pos.Undo()))
		assert.Equal(t, StartingFen, pos.Fen())
	})

	t.Run("InvalidFen", func(t *testing.T) {
		_, err := backend.NewPosition("rnbqkbnr/pppppppp/8/8 w KQkq - 0 1")
		assert.False(t, IsNil(err))
	})

	t.Run("MalformedFenFields", func(t *testing.T) {
		for _, fen := range MalformedFens {
			assert.NotPanics(t, func() {
				_, err := backend.NewPosition(fen)
				assert.False(t, IsNil(err), fen)
			}, fen)
		}
	})

	t.Run("Checkmate", func(t *testing.T) {
		pos := NewPosition(t, backend, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
		assert.Equal(t, Checkmate, pos.Status())
		assert.True(t, pos.IsTerminal())
		assert.Empty(t, pos.LegalMoves())
	})

	t.Run("Stalemate", func(t *testing.T) {
		pos := NewPosition(t, backend, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
		assert.Equal(t, Stalemate, pos.Status())
		assert.Empty(t, pos.LegalMoves())
	})

	t.Run("FiftyMoveRule", func(t *testing.T) {
		pos := NewPosition(t, backend, "4k3/8/8/8/8/8/8/R3K3 w - - 99 80")
		assert.Equal(t, Ongoing, pos.Status())
		ApplyMoves(t, pos, "a1a2")
		assert.Equal(t, FiftyMoveRule, pos.Status())
		require.True(t, IsNil(pos.Undo()))
		assert.Equal(t, Ongoing, pos.Status())
	})

	t.Run("InsufficientMaterial", func(t *testing.T) {
		pos := NewPosition(t, backend, "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1")
		assert.Equal(t, InsufficientMaterial, pos.Status())
		assert.NotEmpty(t, pos.LegalMoves())
	})

	t.Run("ThreefoldRepetition", func(t *testing.T) {
		pos := NewPosition(t, backend, StartingFen)
		shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}

		ApplyMoves(t, pos, shuffle...)
		assert.Equal(t, Ongoing, pos.Status())

		ApplyMoves(t, pos, shuffle...)
		assert.Equal(t, ThreefoldRepetition, pos.Status())

		require.True(t, IsNil(pos.Undo()))
		assert.Equal(t, Ongoing, pos.Status())
	})
}
