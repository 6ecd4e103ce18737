package uci

import (
	"context"
	"strings"
	"testing"

	"github.com/cricklet/minimax/internal/config"
	"github.com/cricklet/minimax/internal/engine"
	. "github.com/cricklet/minimax/internal/helpers"
	"github.com/cricklet/minimax/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handle(t *testing.T, u *UciRunner, lines ...string) []string {
	result := []string{}
	for _, line := range lines {
		output, err := u.HandleInput(context.Background(), line)
		require.True(t, IsNil(err), "%v: %v", line, err)
		result = append(result, output...)
	}
	return result
}

func TestUci(t *testing.T) {
	u := NewUciRunner(engine.NewGame())
	output := handle(t, u,
		"isready",
		"uci",
		"position fen rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"go depth 1",
	)

	assert.Equal(t, "readyok", output[0])
	assert.Contains(t, output, "uciok")
	assert.Contains(t, output, "option name Difficulty type combo default medium var none var easy var medium var hard var expert")
	assert.Contains(t, output, "info depth 1 score cp 50")

	last := output[len(output)-1]
	assert.True(t, last == "bestmove b1c3" || last == "bestmove g1f3", last)
}

func TestParsePosition(t *testing.T) {
	position, err := parsePosition("position startpos moves e2e4 e7e5")
	assert.True(t, IsNil(err), err)
	assert.Equal(t, rules.StartingFen, position.Fen)
	assert.Equal(t, []string{"e2e4", "e7e5"}, position.Moves)

	position, err = parsePosition("position fen 4k3/8/8/8/8/8/8/R3K3 w - - 0 1 moves a1a8")
	assert.True(t, IsNil(err), err)
	assert.Equal(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", position.Fen)
	assert.Equal(t, []string{"a1a8"}, position.Moves)

	position, err = parsePosition("position fen 4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	assert.True(t, IsNil(err), err)
	assert.Empty(t, position.Moves)

	_, err = parsePosition("position sideways")
	assert.False(t, IsNil(err))
}

func TestPositionResyncs(t *testing.T) {
	u := NewUciRunner(engine.NewGame())
	fen := "rn1qk2r/ppp3pp/3b1n2/3ppb2/8/2NPBNP1/PPP2PBP/R2QK2R b KQkq - 15 8"
	handle(t, u,
		"position fen "+fen,
		"position fen "+fen+" moves e8g8",
		"position fen "+fen+" moves e8g8 d3d4",
	)
	assert.Equal(t, []string{"e8g8", "d3d4"}, u.Runner.MoveHistory())

	handle(t, u, "position startpos moves d2d4")
	assert.Equal(t, rules.StartingFen, u.Runner.StartFen)
	assert.Equal(t, []string{"d2d4"}, u.Runner.MoveHistory())

	handle(t, u, "ucinewgame")
	assert.True(t, u.Runner.IsNew())
}

func TestDifficultyOption(t *testing.T) {
	u := NewUciRunner(engine.NewGame())
	handle(t, u, "setoption name Difficulty value Facile")
	assert.Equal(t, config.Easy, u.Difficulty)

	_, err := u.HandleInput(context.Background(), "setoption name Difficulty value impossible")
	assert.False(t, IsNil(err))
	_, err = u.HandleInput(context.Background(), "setoption name Hash value 16")
	assert.False(t, IsNil(err))

	handle(t, u, "setoption name Difficulty value none")
	output := handle(t, u, "position fen 4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1", "go")
	assert.Equal(t, []string{"bestmove e4d5"}, output[len(output)-1:])
}

func TestNoLegalMoves(t *testing.T) {
	u := NewUciRunner(engine.NewGame())
	output := handle(t, u,
		"position startpos moves f2f3 e7e5 g2g4 d8h4",
		"go depth 2",
	)
	assert.Equal(t, []string{"bestmove 0000"}, output)
}

func TestBlackScoreIsFromBlacksSide(t *testing.T) {
	u := NewUciRunner(engine.NewGame())
	output := handle(t, u,
		"position fen 4k3/8/8/3q4/4P3/8/8/4K3 b - - 0 1",
		"go depth 1",
	)
	require.Equal(t, 2, len(output))
	assert.True(t, strings.HasPrefix(output[0], "info depth 1 score cp "))
	assert.False(t, strings.HasPrefix(output[0], "info depth 1 score cp -"), output[0])
}

func TestEvalAndDisplay(t *testing.T) {
	u := NewUciRunner(engine.NewGame())
	_, err := u.HandleInput(context.Background(), "eval")
	assert.False(t, IsNil(err))

	output := handle(t, u, "position startpos", "eval", "d", "stop", "bogus")
	assert.Equal(t, []string{
		"info string eval 0",
		"info string fen " + rules.StartingFen,
		"info string unknown command bogus",
	}, output)
}
