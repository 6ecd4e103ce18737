package notnilchess

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/notnil/chess"

	. "github.com/cricklet/minimax/internal/helpers"
	"github.com/cricklet/minimax/internal/rules"
)

// Pgn renders the UCI moves played from startFen as PGN with SAN movetext.
// Games that don't begin at the standard start carry SetUp and FEN tags.
// An empty result falls back to notnil's outcome, which only knows about
// mate, stalemate and automatic draws.
func Pgn(startFen string, moves []string, result string) (string, Error) {
	normalized, err := rules.NormalizeFen(startFen)
	if !IsNil(err) {
		return "", err
	}

	option, fenErr := chess.FEN(normalized)
	if fenErr != nil {
		return "", Errorf("fen %q: %w", startFen, fenErr)
	}
	game := chess.NewGame(option)

	for _, uci := range moves {
		move, moveErr := chess.UCINotation{}.Decode(game.Position(), uci)
		if moveErr == nil {
			moveErr = game.Move(move)
		}
		if moveErr != nil {
			return "", Errorf("pgn: move %v in %v: %w", uci, game.Position(), moveErr)
		}
	}

	if result == "" {
		result = string(game.Outcome())
	}

	number, _ := strconv.Atoi(strings.Fields(normalized)[5])
	number = max(number, 1)

	tokens := []string{}
	positions := game.Positions()
	for i, move := range game.Moves() {
		pos := positions[i]
		if pos.Turn() == chess.White {
			tokens = append(tokens, fmt.Sprintf("%v.", number))
		} else if i == 0 {
			tokens = append(tokens, fmt.Sprintf("%v...", number))
		}
		tokens = append(tokens, chess.AlgebraicNotation{}.Encode(pos, move))
		if pos.Turn() == chess.Black {
			number++
		}
	}
	movetext := strings.Join(append(tokens, result), " ")

	if normalized == rules.StartingFen {
		return movetext, NilError
	}
	return fmt.Sprintf("[SetUp \"1\"]\n[FEN \"%v\"]\n\n%v", normalized, movetext), NilError
}

// PgnResult is the PGN result token for a finished game, or "*".
func PgnResult(status rules.Status, winner Optional[rules.Color]) string {
	switch {
	case winner.HasValue() && winner.Value() == rules.White:
		return "1-0"
	case winner.HasValue():
		return "0-1"
	case status.IsTerminal():
		return "1/2-1/2"
	}
	return "*"
}
