// Package uci speaks the subset of the UCI protocol needed to drive the
// searcher from a chess GUI.
package uci

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cricklet/minimax/internal/config"
	"github.com/cricklet/minimax/internal/engine"
	"github.com/cricklet/minimax/internal/evaluation"
	. "github.com/cricklet/minimax/internal/helpers"
	"github.com/cricklet/minimax/internal/rules"
)

type UciRunner struct {
	Runner *engine.Game

	Difficulty config.Difficulty
}

func NewUciRunner(runner *engine.Game) *UciRunner {
	return &UciRunner{
		Runner:     runner,
		Difficulty: config.Medium,
	}
}

func parseFen(input string) (string, Error) {
	s := strings.TrimSpace(strings.TrimPrefix(input, "position"))

	if strings.HasPrefix(s, "fen ") {
		s = strings.TrimPrefix(s, "fen ")
		return strings.TrimSpace(strings.Split(s, " moves")[0]), NilError
	} else if strings.HasPrefix(s, "startpos") {
		return rules.StartingFen, NilError
	}

	return "", Errorf("couldn't parse '%v'", s)
}

func parseMoves(input string) []string {
	result := []string{}
	if strings.Contains(input, " moves ") {
		fields := strings.Fields(strings.SplitN(input, " moves ", 2)[1])
		result = append(result, fields...)
	}
	return result
}

func parsePosition(input string) (engine.Position, Error) {
	fen, err := parseFen(input)
	return engine.Position{Fen: fen, Moves: parseMoves(input)}, err
}

// parseDepth reads "go depth N". Any other go arguments use the difficulty.
func parseDepth(input string, fallback int) (int, Error) {
	fields := strings.Fields(input)
	for i := 0; i < len(fields)-1; i++ {
		if fields[i] == "depth" {
			depth, err := strconv.Atoi(fields[i+1])
			if err != nil {
				return 0, Wrap(err)
			}
			return depth, NilError
		}
	}
	return fallback, NilError
}

func parseOption(input string) (string, string) {
	s := strings.TrimPrefix(input, "setoption")
	name, value, _ := strings.Cut(s, " value ")
	name = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(name), "name"))
	return strings.TrimSpace(name), strings.TrimSpace(value)
}

func (u *UciRunner) HandleInput(ctx context.Context, input string) ([]string, Error) {
	input = strings.TrimSpace(input)
	result := []string{}

	if input == "uci" {
		result = append(result, "id name minimax 1")
		result = append(result, "id author Kenrick Rilee")
		result = append(result, fmt.Sprintf(
			"option name Difficulty type combo default %v %v",
			u.Difficulty,
			strings.Join(MapSlice(config.AllDifficulties, func(d config.Difficulty) string {
				return "var " + d.String()
			}), " ")))
		result = append(result, "uciok")
	} else if input == "ucinewgame" {
		u.Runner.Reset()
	} else if input == "isready" {
		result = append(result, "readyok")
	} else if strings.HasPrefix(input, "setoption") {
		name, value := parseOption(input)
		if !strings.EqualFold(name, "difficulty") {
			return result, Errorf("unknown option %q", name)
		}
		difficulty, err := config.DifficultyFromString(value)
		if !IsNil(err) {
			return result, err
		}
		u.Difficulty = difficulty
	} else if strings.HasPrefix(input, "position") {
		position, err := parsePosition(input)
		if !IsNil(err) {
			return result, err
		}
		if u.Runner.IsNew() || u.Runner.StartFen != position.Fen {
			err = u.Runner.SetupPosition(position)
		} else {
			err = u.Runner.PerformMoves(position.Fen, position.Moves)
		}
		if !IsNil(err) {
			return result, err
		}
	} else if strings.HasPrefix(input, "go") {
		if u.Runner.IsNew() {
			err := u.Runner.SetupPosition(engine.Position{Fen: rules.StartingFen})
			if !IsNil(err) {
				return result, err
			}
		}

		depth, err := parseDepth(input, u.Difficulty.Depth())
		if !IsNil(err) {
			return result, err
		}

		move, score, err := u.Runner.Search(ctx, depth)
		if !IsNil(err) {
			return result, err
		}

		if move.IsEmpty() {
			result = append(result, "bestmove 0000")
		} else {
			result = append(result, fmt.Sprintf("info depth %v score cp %v", depth, scoreForSideToMove(u.Runner, score)))
			result = append(result, fmt.Sprintf("bestmove %v", move.Value()))
		}
	} else if input == "eval" {
		if u.Runner.IsNew() {
			return result, Errorf("position not setup")
		}
		result = append(result, fmt.Sprintf("info string eval %v", u.Runner.Evaluate()))
	} else if input == "d" {
		if u.Runner.IsNew() {
			return result, Errorf("position not setup")
		}
		result = append(result, fmt.Sprintf("info string fen %v", u.Runner.FenString()))
	} else if input != "" && input != "stop" {
		result = append(result, fmt.Sprintf("info string unknown command %v", input))
	}

	return result, NilError
}

// scoreForSideToMove flips a white-positive score to the mover's point of
// view. One Score step is a centipawn.
func scoreForSideToMove(game *engine.Game, score evaluation.Score) int {
	if game.Player() == rules.Black {
		return -int(score)
	}
	return int(score)
}
