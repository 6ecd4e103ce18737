package evaluation

import (
	. "github.com/cricklet/minimax/internal/helpers"
	"github.com/cricklet/minimax/internal/rules"
)

// Material values in units.
var _materialUnits = [rules.NumPieceKinds]int{
	rules.Pawn:   10,
	rules.Knight: 30,
	rules.Bishop: 30,
	rules.Rook:   50,
	rules.Queen:  90,
	rules.King:   900,
}

// Piece-square tables in Score steps (tenths of a unit), from white's side:
// the first row is rank 8, the first column is the a file.

var _pawnTable = [8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{50, 50, 50, 50, 50, 50, 50, 50},
	{10, 10, 20, 30, 30, 20, 10, 10},
	{5, 5, 10, 25, 25, 10, 5, 5},
	{0, 0, 0, 20, 20, 0, 0, 0},
	{5, -5, -10, 0, 0, -10, -5, 5},
	{5, 10, 10, -20, -20, 10, 10, 5},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var _knightTable = [8][8]int{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 0, 0, 0, -20, -40},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-30, 5, 15, 20, 20, 15, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 10, 15, 15, 10, 5, -30},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-50, -40, -30, -30, -30, -30, -40, -50},
}

var _bishopTable = [8][8]int{
	{-20, -10, -10, -10, -10, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 10, 10, 5, 0, -10},
	{-10, 5, 5, 10, 10, 5, 5, -10},
	{-10, 0, 10, 10, 10, 10, 0, -10},
	{-10, 10, 10, 10, 10, 10, 10, -10},
	{-10, 5, 0, 0, 0, 0, 5, -10},
	{-20, -10, -10, -10, -10, -10, -10, -20},
}

var _rookTable = [8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{5, 10, 10, 10, 10, 10, 10, 5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{0, 0, 0, 5, 5, 0, 0, 0},
}

var _queenTable = [8][8]int{
	{-20, -10, -10, -5, -5, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 5, 5, 5, 0, -10},
	{-5, 0, 5, 5, 5, 5, 0, -5},
	{0, 0, 5, 5, 5, 5, 0, -5},
	{-10, 5, 5, 5, 5, 5, 0, -10},
	{-10, 0, 5, 0, 0, 0, 0, -10},
	{-20, -10, -10, -5, -5, -10, -10, -20},
}

var _kingTable = [8][8]int{
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-20, -30, -30, -40, -40, -30, -30, -20},
	{-10, -20, -20, -20, -20, -20, -20, -10},
	{20, 20, 0, 0, 0, 0, 20, 20},
	{20, 30, 10, 0, 0, 10, 30, 20},
}

var _tablesForWhite = [rules.NumPieceKinds][8][8]int{
	rules.Pawn:   _pawnTable,
	rules.Knight: _knightTable,
	rules.Bishop: _bishopTable,
	rules.Rook:   _rookTable,
	rules.Queen:  _queenTable,
	rules.King:   _kingTable,
}

// _contributions[color][kind][square] is the signed material plus positional
// value of a piece, already negated for black.
var _contributions = func() [2][rules.NumPieceKinds][rules.NumSquares]Score {
	result := [2][rules.NumPieceKinds][rules.NumSquares]Score{}
	for kind := rules.Pawn; kind < rules.NumPieceKinds; kind++ {
		material := _materialUnits[kind] * Scale
		tables := [2][8][8]int{
			_tablesForWhite[kind],
			FlipArray(_tablesForWhite[kind]),
		}
		for color := rules.White; color <= rules.Black; color++ {
			for row := 0; row < 8; row++ {
				for file := 0; file < 8; file++ {
					square := rules.SquareAt(rules.File(file), rules.Rank(7-row))
					value := Score(material + tables[color][row][file])
					if color == rules.Black {
						value = -value
					}
					result[color][kind][square] = value
				}
			}
		}
	}
	return result
}()
