package rules

import (
	"math/rand"
	"strings"

	. "github.com/cricklet/minimax/internal/helpers"
)

var _zobristPieceAtSquare [2][NumPieceKinds][NumSquares]uint64
var _zobristSideToMove uint64
var _zobristCastlingRights [4]uint64
var _zobristEnPassant [8]uint64

const _castlingLetters = "KQkq"

func init() {
	r := rand.New(rand.NewSource(32879419))
	_zobristSideToMove = r.Uint64()
	for i := range _zobristCastlingRights {
		_zobristCastlingRights[i] = r.Uint64()
	}
	for i := range _zobristEnPassant {
		_zobristEnPassant[i] = r.Uint64()
	}
	for color := White; color <= Black; color++ {
		for kind := Pawn; kind < NumPieceKinds; kind++ {
			for square := Square(0); square < NumSquares; square++ {
				_zobristPieceAtSquare[color][kind][square] = r.Uint64()
			}
		}
	}
}

// HashPosition hashes what makes two positions the same for repetition:
// the pieces on b plus the side to move, castling rights and en passant
// fields of fen. The clocks are ignored.
func HashPosition(b Board, fen string) uint64 {
	hash := uint64(0)
	for square := Square(0); square < NumSquares; square++ {
		if piece, ok := b.PieceAt(square); ok {
			hash ^= _zobristPieceAtSquare[piece.Color][piece.Kind][square]
		}
	}

	fields := strings.Fields(fen)
	if len(fields) > 1 && fields[1] == "b" {
		hash ^= _zobristSideToMove
	}
	if len(fields) > 2 {
		for i, letter := range _castlingLetters {
			if strings.ContainsRune(fields[2], letter) {
				hash ^= _zobristCastlingRights[i]
			}
		}
	}
	if len(fields) > 3 && fields[3] != "-" {
		if square, err := SquareFromString(fields[3]); IsNil(err) {
			hash ^= _zobristEnPassant[square.File()]
		}
	}
	return hash
}
