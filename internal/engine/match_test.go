package engine

import (
	"context"
	"testing"

	"github.com/cricklet/minimax/internal/config"
	. "github.com/cricklet/minimax/internal/helpers"
	"github.com/cricklet/minimax/internal/rules"
	"github.com/cricklet/minimax/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayOutFindsMate(t *testing.T) {
	options, err := search.SearcherOptionsFromArgs("mateScores")
	require.True(t, IsNil(err), err)

	for _, backend := range Backends {
		g := NewGame(WithBackend(backend), WithSearchOptions(options))
		err := g.SetupPosition(Position{
			Fen: "rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2",
		})
		require.True(t, IsNil(err), err)

		record, err := g.PlayOut(context.Background(), config.Easy, config.Easy, 10)
		assert.True(t, IsNil(err), err)
		assert.Equal(t, []string{"d8h4"}, record.Moves, backend.Name())
		assert.Equal(t, rules.Checkmate, record.Status)
		assert.Equal(t, rules.Black, record.Winner.Value())
		assert.Contains(t, record.Pgn, "2... Qh4# 0-1", backend.Name())
	}
}

func TestPlayOutStopsAtMaxPlies(t *testing.T) {
	g := NewGame()
	require.True(t, IsNil(g.SetupPosition(Position{Fen: rules.StartingFen, Moves: []string{"e2e4"}})))

	record, err := g.PlayOut(context.Background(), config.Easy, config.Medium, 4)
	assert.True(t, IsNil(err), err)
	assert.Equal(t, 4, len(record.Moves))
	assert.Equal(t, 5, len(g.MoveHistory()))
	assert.Equal(t, rules.Ongoing, record.Status)
	assert.True(t, record.Winner.IsEmpty())
	assert.Equal(t, rules.StartingFen, record.StartFen)
}

func TestPlayOutWithoutComputer(t *testing.T) {
	g := NewGame()
	require.True(t, IsNil(g.SetupPosition(Position{Fen: rules.StartingFen})))

	record, err := g.PlayOut(context.Background(), config.None, config.Easy, 10)
	assert.True(t, IsNil(err), err)
	assert.Empty(t, record.Moves)
	assert.Equal(t, "*", record.Pgn)
}
