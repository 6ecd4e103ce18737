package engine

import (
	"context"

	"github.com/cricklet/minimax/internal/config"
	. "github.com/cricklet/minimax/internal/helpers"
	"github.com/cricklet/minimax/internal/rules"
)

type GameRecord struct {
	StartFen string
	Moves    []string
	Status   rules.Status
	// Winner is empty for draws and for games stopped before they ended.
	Winner Optional[rules.Color]
	// Pgn covers the whole game from StartFen, including moves played
	// before PlayOut was called.
	Pgn string
}

// PlayOut lets the computer play both sides from the current position until
// the game ends, a side has no move to offer or maxPlies moves were played.
func (g *Game) PlayOut(ctx context.Context, white config.Difficulty, black config.Difficulty, maxPlies int) (GameRecord, Error) {
	if g.IsNew() {
		return GameRecord{}, Errorf("position not setup")
	}

	startPly := len(g.history)
	for plies := 0; plies < maxPlies && !g.Status().IsTerminal(); plies++ {
		if ctx.Err() != nil {
			break
		}

		difficulty := white
		if g.Player() == rules.Black {
			difficulty = black
		}

		move, _, err := g.SearchDifficulty(ctx, difficulty)
		if !IsNil(err) {
			return GameRecord{}, err
		}
		if move.IsEmpty() {
			break
		}

		err = g.PerformMoveFromString(move.Value())
		if !IsNil(err) {
			return GameRecord{}, err
		}
		g.Logger.Println(g.Player().Other(), difficulty, ">", move.Value())
	}

	pgn, err := g.Pgn()
	if !IsNil(err) {
		return GameRecord{}, err
	}
	return GameRecord{
		StartFen: g.StartFen,
		Moves:    append([]string{}, g.history[startPly:]...),
		Status:   g.Status(),
		Winner:   g.Winner(),
		Pgn:      pgn,
	}, NilError
}
