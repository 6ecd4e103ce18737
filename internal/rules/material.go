package rules

// HasInsufficientMaterial reports positions where neither side can mate: bare
// kings, a single minor piece, or one bishop each on the same square colour.
func HasInsufficientMaterial(b Board) bool {
	minors := [2][]Piece{}
	bishopSquares := [2][]Square{}

	for square := Square(0); square < NumSquares; square++ {
		piece, ok := b.PieceAt(square)
		if !ok {
			continue
		}
		switch piece.Kind {
		case King:
			continue
		case Knight:
			minors[piece.Color] = append(minors[piece.Color], piece)
		case Bishop:
			minors[piece.Color] = append(minors[piece.Color], piece)
			bishopSquares[piece.Color] = append(bishopSquares[piece.Color], square)
		default:
			return false
		}
	}

	numWhite := len(minors[White])
	numBlack := len(minors[Black])

	if numWhite+numBlack <= 1 {
		return true
	}
	if numWhite == 1 && numBlack == 1 &&
		len(bishopSquares[White]) == 1 && len(bishopSquares[Black]) == 1 {
		return bishopSquares[White][0].IsLight() == bishopSquares[Black][0].IsLight()
	}
	return false
}
