package search

import (
	"strings"

	. "github.com/cricklet/minimax/internal/helpers"
)

type SearcherOptions struct {
	// noPruning searches the full minimax tree.
	noPruning bool
	// mateScores scores checkmated leaves as decisive and draws as zero
	// instead of by what is left on the board.
	mateScores bool
	// materialOnly drops the piece-square tables from the evaluation.
	materialOnly bool
	// debugSearchTree keeps a trace of the last search on each Searcher.
	debugSearchTree bool
}

var DefaultSearchOptions = SearcherOptions{}

var AllSearchOptions = []string{
	"noPruning",
	"mateScores",
	"materialOnly",
	"debugSearchTree",
}

func SearcherOptionsFromArgs(args ...string) (SearcherOptions, Error) {
	options := SearcherOptions{}

	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		} else if arg == "noPruning" {
			options.noPruning = true
		} else if arg == "mateScores" {
			options.mateScores = true
		} else if arg == "materialOnly" {
			options.materialOnly = true
		} else if arg == "debugSearchTree" {
			options.debugSearchTree = true
		} else {
			return options, Errorf("unknown option: %s", arg)
		}
	}

	return options, NilError
}

func (o SearcherOptions) Args() []string {
	result := []string{}
	if o.noPruning {
		result = append(result, "noPruning")
	}
	if o.mateScores {
		result = append(result, "mateScores")
	}
	if o.materialOnly {
		result = append(result, "materialOnly")
	}
	if o.debugSearchTree {
		result = append(result, "debugSearchTree")
	}
	return result
}
