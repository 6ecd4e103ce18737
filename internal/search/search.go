// Package search picks a move with depth bounded minimax and alpha-beta
// pruning over a single shared position.
package search

import (
	"context"
	"strings"

	"github.com/cricklet/minimax/internal/evaluation"
	. "github.com/cricklet/minimax/internal/helpers"
	"github.com/cricklet/minimax/internal/rules"
	"github.com/dustin/go-humanize"
)

// Inf bounds an open alpha-beta window. It is far outside any reachable
// evaluation.
const Inf evaluation.Score = 10_000_000

// MateScore is the score of a checkmate at the root when mateScores is on.
// Later mates score one step less per ply.
const MateScore evaluation.Score = 1_000_000

type Evaluator interface {
	Evaluate(board rules.Board) evaluation.Score
}

type EvaluatorFunc func(board rules.Board) evaluation.Score

func (f EvaluatorFunc) Evaluate(board rules.Board) evaluation.Score {
	return f(board)
}

var DefaultEvaluator Evaluator = EvaluatorFunc(evaluation.Evaluate)

type Stats struct {
	Nodes     int
	Leaves    int
	Cutoffs   int
	RootMoves int
}

type Result struct {
	Move      Optional[rules.Move]
	Score     evaluation.Score
	Depth     int
	Cancelled bool
	Stats     Stats
}

type Searcher struct {
	Logger    Logger
	Evaluator Evaluator

	options SearcherOptions
	tree    *debugSearchTree

	Stats Stats
}

func NewSearcher(logger Logger, options SearcherOptions) *Searcher {
	evaluator := DefaultEvaluator
	if options.materialOnly {
		evaluator = EvaluatorFunc(evaluation.Material)
	}
	searcher := &Searcher{
		Logger:    logger,
		Evaluator: evaluator,
		options:   options,
	}
	if options.debugSearchTree {
		searcher.tree = &debugSearchTree{}
	}
	return searcher
}

// FindBestMove searches every root move of pos to the given depth and
// returns the best one for the side to move. Ties keep the earliest move in
// the order the position enumerates them. The context is only checked
// between root moves and the first root move is always searched, so a
// cancelled search still returns the best move found so far.
//
// pos is mutated during the search and restored before returning.
func (s *Searcher) FindBestMove(ctx context.Context, pos rules.Position, depth int) (Result, Error) {
	if pos == nil {
		panic("search: nil position")
	}

	s.Stats = Stats{}
	result := Result{
		Move:  Empty[rules.Move](),
		Depth: depth,
	}

	maximizing := pos.SideToMove() == rules.White
	best := Inf
	if maximizing {
		best = -Inf
	}
	alpha, beta := -Inf, Inf

	if s.tree != nil {
		*s.tree = debugSearchTree{}
		label := "depth " + humanize.Comma(int64(depth))
		s.tree.DepthPush(label)
		defer func() {
			s.tree.DepthPop(label, result.Score)
		}()
	}

	moves := pos.LegalMoves()
	scores := []string{}

	for i, move := range moves {
		if i > 0 && ctx.Err() != nil {
			result.Cancelled = true
			break
		}

		score, err := s.evaluateMove(pos, move, depth, alpha, beta, maximizing, 0)
		if !IsNil(err) {
			result.Stats = s.Stats
			return result, err
		}
		s.Stats.RootMoves++
		scores = append(scores, move.String()+" "+score.String())

		if maximizing {
			if score > best {
				best = score
				result.Move = Some(move)
			}
			if !s.options.noPruning {
				alpha = max(alpha, best)
			}
		} else {
			if score < best {
				best = score
				result.Move = Some(move)
			}
			if !s.options.noPruning {
				beta = min(beta, best)
			}
		}
	}

	if result.Move.HasValue() {
		result.Score = best
	}
	result.Stats = s.Stats

	bestMove := "none"
	if result.Move.HasValue() {
		bestMove = result.Move.Value().String()
	}
	if len(scores) > 0 {
		s.Logger.Println(strings.Join(scores, " "))
	}
	s.Logger.Println("evaluated",
		"to depth", depth,
		"- nodes", humanize.Comma(int64(s.Stats.Nodes)),
		"- cutoffs", humanize.Comma(int64(s.Stats.Cutoffs)),
		"- best move", bestMove,
		"- score", result.Score)

	return result, NilError
}

// DebugTree prints the trace of the last search down to depth.
func (s *Searcher) DebugTree(depth int) string {
	if s.tree == nil {
		return ""
	}
	return s.tree.DebugString(depth)
}

// evaluateMove applies move, scores the child and undoes the move before
// returning.
func (s *Searcher) evaluateMove(
	pos rules.Position, move rules.Move, depth int,
	alpha evaluation.Score, beta evaluation.Score, maximizing bool, ply int,
) (returnScore evaluation.Score, returnError Error) {
	if s.tree != nil {
		s.tree.MovePush(move.String(), maximizing, alpha, beta)
		defer func() {
			s.tree.MovePop(move.String(), maximizing, alpha, beta, returnScore)
		}()
	}

	err := pos.Apply(move)
	if !IsNil(err) {
		returnError = Join(Errorf("applying %v to %v", move, pos.Fen()), err)
		return returnScore, returnError
	}
	defer func() {
		err := pos.Undo()
		if !IsNil(err) && IsNil(returnError) {
			returnError = Join(Errorf("undoing %v", move), err)
		}
	}()

	returnScore, returnError = s.minimax(pos, depth-1, alpha, beta, !maximizing, ply+1)
	return
}

func (s *Searcher) minimax(
	pos rules.Position, depth int,
	alpha evaluation.Score, beta evaluation.Score, maximizing bool, ply int,
) (evaluation.Score, Error) {
	s.Stats.Nodes++

	if depth <= 0 || pos.IsTerminal() {
		return s.leaf(pos, ply), NilError
	}

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return s.leaf(pos, ply), NilError
	}

	if maximizing {
		best := -Inf
		for _, move := range moves {
			score, err := s.evaluateMove(pos, move, depth, alpha, beta, true, ply)
			if !IsNil(err) {
				return best, err
			}
			best = max(best, score)
			if s.options.noPruning {
				continue
			}
			alpha = max(alpha, score)
			if beta <= alpha {
				s.Stats.Cutoffs++
				break
			}
		}
		return best, NilError
	}

	best := Inf
	for _, move := range moves {
		score, err := s.evaluateMove(pos, move, depth, alpha, beta, false, ply)
		if !IsNil(err) {
			return best, err
		}
		best = min(best, score)
		if s.options.noPruning {
			continue
		}
		beta = min(beta, score)
		if beta <= alpha {
			s.Stats.Cutoffs++
			break
		}
	}
	return best, NilError
}

func (s *Searcher) leaf(pos rules.Position, ply int) evaluation.Score {
	s.Stats.Leaves++

	if s.options.mateScores {
		status := pos.Status()
		if status == rules.Checkmate {
			mate := MateScore - evaluation.Score(ply)
			if pos.SideToMove() == rules.White {
				return -mate
			}
			return mate
		} else if status.IsDraw() {
			return 0
		}
	}

	return s.Evaluator.Evaluate(pos)
}

// FindBestMove searches with the default options and no logging.
func FindBestMove(pos rules.Position, depth int) (Optional[rules.Move], Error) {
	searcher := NewSearcher(&SilentLogger, DefaultSearchOptions)
	result, err := searcher.FindBestMove(context.Background(), pos, depth)
	return result.Move, err
}
