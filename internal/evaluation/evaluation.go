// Package evaluation scores a board from material and piece-square tables.
// Positive scores favour white.
package evaluation

import (
	"github.com/cricklet/minimax/internal/rules"
)

func PieceValue(kind rules.PieceKind) Score {
	return Score(_materialUnits[kind] * Scale)
}

// PositionalBonus is the table bonus for the piece on square, from the
// piece's own point of view.
func PositionalBonus(piece rules.Piece, square rules.Square) Score {
	contribution := Contribution(piece, square)
	if piece.Color == rules.Black {
		contribution = -contribution
	}
	return contribution - PieceValue(piece.Kind)
}

// Contribution is the signed amount the piece on square adds to Evaluate.
func Contribution(piece rules.Piece, square rules.Square) Score {
	return _contributions[piece.Color][piece.Kind][square]
}

// Evaluate never special-cases checkmate or stalemate, a mated side is only
// scored by what is left on the board.
func Evaluate(board rules.Board) Score {
	score := Score(0)
	for square := rules.Square(0); square < rules.NumSquares; square++ {
		if piece, ok := board.PieceAt(square); ok {
			score += Contribution(piece, square)
		}
	}
	return score
}

// Material is the signed material balance alone.
func Material(board rules.Board) Score {
	score := Score(0)
	for square := rules.Square(0); square < rules.NumSquares; square++ {
		if piece, ok := board.PieceAt(square); ok {
			if piece.Color == rules.White {
				score += PieceValue(piece.Kind)
			} else {
				score -= PieceValue(piece.Kind)
			}
		}
	}
	return score
}
