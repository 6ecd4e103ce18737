package search

import (
	"fmt"
	"strings"

	"github.com/cricklet/minimax/internal/evaluation"
	. "github.com/cricklet/minimax/internal/helpers"
)

type debugSearchLine struct {
	DebugString string
	Depth       int
	Alpha       evaluation.Score
	Beta        evaluation.Score
	Score       Optional[evaluation.Score]
}

// debugSearchTree records every node the searcher enters and leaves.
type debugSearchTree struct {
	CurrentDepth int
	Result       []debugSearchLine
}

// DebugString prints the finished nodes shallower than depth, most recent
// first.
func (s *debugSearchTree) DebugString(depth int) string {
	result := ""
	for i := range s.Result {
		line := s.Result[len(s.Result)-i-1]
		if line.Depth >= depth {
			continue
		}
		if line.Score.HasValue() {
			result += fmt.Sprintf("%v%v (%v %v) %v\n",
				strings.Repeat(" ", line.Depth),
				line.DebugString,
				line.Alpha,
				line.Beta,
				line.Score.Value())
		}
	}
	return result
}

func (s *debugSearchTree) DepthPush(label string) {
	s.Result = append(s.Result, debugSearchLine{
		DebugString: "> " + label,
		Depth:       s.CurrentDepth,
	})
	s.CurrentDepth += 1
}

func (s *debugSearchTree) DepthPop(label string, result evaluation.Score) {
	s.CurrentDepth -= 1
	s.Result = append(s.Result, debugSearchLine{
		DebugString: "$ " + label,
		Depth:       s.CurrentDepth,
		Score:       Some(result),
	})
}

func playerString(maximizing bool) string {
	if maximizing {
		return "max"
	}
	return "min"
}

func (s *debugSearchTree) MovePush(move string, maximizing bool, alpha evaluation.Score, beta evaluation.Score) {
	s.Result = append(s.Result, debugSearchLine{
		DebugString: fmt.Sprintf("> %v (%v)", playerString(maximizing), move),
		Depth:       s.CurrentDepth,
		Alpha:       alpha,
		Beta:        beta,
	})
	s.CurrentDepth += 1
}

func (s *debugSearchTree) MovePop(move string, maximizing bool, alpha evaluation.Score, beta evaluation.Score, result evaluation.Score) {
	s.CurrentDepth -= 1
	s.Result = append(s.Result, debugSearchLine{
		DebugString: fmt.Sprintf("$ %v (%v)", playerString(maximizing), move),
		Depth:       s.CurrentDepth,
		Alpha:       alpha,
		Beta:        beta,
		Score:       Some(result),
	})
}
