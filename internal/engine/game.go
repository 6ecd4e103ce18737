// Package engine runs one game on a rules backend and asks the searcher for
// moves.
package engine

import (
	"context"
	"strings"

	"github.com/cricklet/minimax/internal/config"
	"github.com/cricklet/minimax/internal/evaluation"
	. "github.com/cricklet/minimax/internal/helpers"
	"github.com/cricklet/minimax/internal/rules"
	"github.com/cricklet/minimax/internal/rules/notnilchess"
	"github.com/cricklet/minimax/internal/search"
)

// Position is a starting FEN plus the moves played from it, as sent by UCI
// or the web client.
type Position struct {
	Fen   string
	Moves []string
}

type Runner interface {
	PerformMoveFromString(s string) Error
	SetupPosition(position Position) Error
	PerformMoves(startFen string, moves []string) Error
	MovesForSelection(selection string) ([]string, Error)
	Rewind(num int) Error
	Reset()
	Search(ctx context.Context, depth int) (Optional[string], evaluation.Score, Error)
	IsNew() bool
}

type Game struct {
	Logger Logger

	backend       rules.Backend
	searchOptions search.SearcherOptions

	pos rules.Position

	StartFen string
	history  []string
}

var _ Runner = (*Game)(nil)

type GameOption func(*Game)

func WithLogger(logger Logger) GameOption {
	return func(g *Game) {
		g.Logger = logger
	}
}

func WithBackend(backend rules.Backend) GameOption {
	return func(g *Game) {
		g.backend = backend
	}
}

func WithSearchOptions(options search.SearcherOptions) GameOption {
	return func(g *Game) {
		g.searchOptions = options
	}
}

func NewGame(options ...GameOption) *Game {
	g := &Game{
		Logger:        &SilentLogger,
		backend:       Backends[0],
		searchOptions: search.DefaultSearchOptions,
	}
	for _, option := range options {
		option(g)
	}
	return g
}

func (g *Game) Backend() rules.Backend {
	return g.backend
}

func (g *Game) Reset() {
	g.pos = nil
	g.StartFen = ""
	g.history = []string{}
}

func (g *Game) IsNew() bool {
	return g.pos == nil
}

func (g *Game) SetupPosition(position Position) Error {
	if !g.IsNew() {
		g.Reset()
	}

	pos, err := g.backend.NewPosition(position.Fen)
	if !IsNil(err) {
		return Join(Errorf("couldn't create game from %v", position.Fen), err)
	}
	g.pos = pos
	g.StartFen = position.Fen

	for _, m := range position.Moves {
		err := g.PerformMoveFromString(m)
		if !IsNil(err) {
			g.Reset()
			return err
		}
	}

	return NilError
}

// Clone replays the game on a new position of the same backend, so the
// copy can be searched while the original keeps changing.
func (g *Game) Clone() (*Game, Error) {
	clone := &Game{
		Logger:        g.Logger,
		backend:       g.backend,
		searchOptions: g.searchOptions,
	}
	if g.IsNew() {
		return clone, NilError
	}
	err := clone.SetupPosition(Position{Fen: g.StartFen, Moves: g.history})
	return clone, err
}

func (g *Game) findMove(s string) Optional[rules.Move] {
	return FindInSlice(g.pos.LegalMoves(), func(m rules.Move) bool {
		return m.String() == s
	})
}

func (g *Game) PerformMoveFromString(s string) Error {
	if g.IsNew() {
		return Errorf("position not setup")
	}

	move := g.findMove(strings.TrimSpace(s))
	if move.IsEmpty() {
		return Errorf("illegal move %v in %v", s, g.pos.Fen())
	}

	err := g.pos.Apply(move.Value())
	if !IsNil(err) {
		return Join(Errorf("PerformMove: %v", s), err)
	}
	g.history = append(g.history, move.Value().String())

	return NilError
}

func firstIndexNotMatching[A comparable](a []A, b []A) int {
	for i := 0; i < MinInt(len(a), len(b)); i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return MinInt(len(a), len(b))
}

// PerformMoves brings the game to startFen followed by moves, rewinding to
// the first move that differs from the current history.
func (g *Game) PerformMoves(startFen string, moves []string) Error {
	if g.StartFen != startFen {
		return Errorf("positions don't match: %v != %v", g.StartFen, startFen)
	}

	startIndex := firstIndexNotMatching(g.history, moves)

	err := g.Rewind(len(g.history) - startIndex)
	if !IsNil(err) {
		return err
	}

	for i := startIndex; i < len(moves); i++ {
		err := g.PerformMoveFromString(moves[i])
		if !IsNil(err) {
			return err
		}
	}

	return NilError
}

func (g *Game) Rewind(num int) Error {
	num = MinInt(num, len(g.history))
	for i := 0; i < num; i++ {
		err := g.pos.Undo()
		if !IsNil(err) {
			return Join(Errorf("Rewind"), err)
		}
		g.history = g.history[:len(g.history)-1]
	}
	return NilError
}

func (g *Game) MovesForSelection(selection string) ([]string, Error) {
	if g.IsNew() {
		return nil, Errorf("position not setup")
	}

	square, err := rules.SquareFromString(selection)
	if !IsNil(err) {
		return nil, Join(Errorf("failed to parse selection"), err)
	}

	moves := FilterSlice(g.pos.LegalMoves(), func(m rules.Move) bool {
		return strings.HasPrefix(m.String(), square.String())
	})
	return MapSlice(moves, rules.Move.String), NilError
}

func (g *Game) Search(ctx context.Context, depth int) (Optional[string], evaluation.Score, Error) {
	if g.IsNew() {
		return Empty[string](), 0, Errorf("position not setup")
	}

	result, err := g.SearchResult(ctx, depth)
	if !IsNil(err) || result.Move.IsEmpty() {
		return Empty[string](), result.Score, err
	}
	return Some(result.Move.Value().String()), result.Score, NilError
}

// SearchResult is Search with the searcher's statistics.
func (g *Game) SearchResult(ctx context.Context, depth int) (search.Result, Error) {
	if g.IsNew() {
		return search.Result{}, Errorf("position not setup")
	}
	return g.SearchWith(ctx, search.NewSearcher(g.Logger, g.searchOptions), depth)
}

// SearchWith runs a caller configured searcher on the game's position.
func (g *Game) SearchWith(ctx context.Context, searcher *search.Searcher, depth int) (search.Result, Error) {
	if g.IsNew() {
		return search.Result{}, Errorf("position not setup")
	}
	return searcher.FindBestMove(ctx, g.pos, depth)
}

// SearchDifficulty never moves for config.None.
func (g *Game) SearchDifficulty(ctx context.Context, difficulty config.Difficulty) (Optional[string], evaluation.Score, Error) {
	if difficulty == config.None {
		return Empty[string](), 0, NilError
	}
	return g.Search(ctx, difficulty.Depth())
}

func (g *Game) FenString() string {
	if g.IsNew() {
		return ""
	}
	return g.pos.Fen()
}

func (g *Game) Player() rules.Color {
	return g.pos.SideToMove()
}

func (g *Game) Status() rules.Status {
	return g.pos.Status()
}

func (g *Game) Evaluate() evaluation.Score {
	return evaluation.Evaluate(g.pos)
}

func (g *Game) Board() rules.Board {
	return g.pos
}

func (g *Game) LastMove() Optional[string] {
	if len(g.history) > 0 {
		return Some(g.history[len(g.history)-1])
	}
	return Empty[string]()
}

func (g *Game) MoveHistory() []string {
	return append([]string{}, g.history...)
}

// Winner is the side that delivered mate, if the game ended in one.
func (g *Game) Winner() Optional[rules.Color] {
	if g.IsNew() || g.Status() != rules.Checkmate {
		return Empty[rules.Color]()
	}
	return Some(g.Player().Other())
}

// Pgn renders the whole game in SAN. notnil does the notation for every
// backend since the moves are replayed from StartFen.
func (g *Game) Pgn() (string, Error) {
	if g.IsNew() {
		return "", Errorf("position not setup")
	}
	return notnilchess.Pgn(g.StartFen, g.history, notnilchess.PgnResult(g.Status(), g.Winner()))
}
