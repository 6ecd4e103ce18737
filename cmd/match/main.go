package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cricklet/minimax/internal/config"
	"github.com/cricklet/minimax/internal/engine"
	. "github.com/cricklet/minimax/internal/helpers"
	"github.com/cricklet/minimax/internal/rules"
	"github.com/cricklet/minimax/internal/search"
	"github.com/schollz/progressbar/v3"
)

// The engine is deterministic so every game starts from its own opening.
var _openings = [][]string{
	{},
	{"e2e4", "e7e5"},
	{"d2d4", "d7d5"},
	{"e2e4", "c7c5"},
	{"d2d4", "g8f6", "c2c4", "e7e6"},
	{"e2e4", "e7e6", "d2d4", "d7d5"},
	{"c2c4", "e7e5"},
	{"g1f3", "d7d5", "g2g3"},
}

func main() {
	firstName := flag.String("first", "medium", "difficulty of the first player")
	secondName := flag.String("second", "easy", "difficulty of the second player")
	games := flag.Int("games", len(_openings)*2, "number of games, colours alternate")
	maxPlies := flag.Int("plies", 200, "adjourn games longer than this")
	backendName := flag.String("backend", "", "rules backend")
	verbose := flag.Bool("v", false, "print every game")
	flag.Parse()

	first, err := config.DifficultyFromString(*firstName)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	second, err := config.DifficultyFromString(*secondName)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	backend, err := engine.BackendFromName(*backendName)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	options, err := search.SearcherOptionsFromArgs(flag.Args()...)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	wins, draws, losses, adjourned := 0, 0, 0, 0
	bar := progressbar.Default(int64(*games), fmt.Sprintf("%v vs %v", first, second))

	for i := 0; i < *games; i++ {
		firstColor := rules.White
		white, black := first, second
		if i%2 == 1 {
			firstColor = rules.Black
			white, black = second, first
		}

		game := engine.NewGame(engine.WithBackend(backend), engine.WithSearchOptions(options))
		err := game.SetupPosition(engine.Position{
			Fen:   rules.StartingFen,
			Moves: _openings[(i/2)%len(_openings)],
		})
		if !IsNil(err) {
			panic(err)
		}

		record, err := game.PlayOut(context.Background(), white, black, *maxPlies)
		if !IsNil(err) {
			panic(err)
		}

		if record.Winner.HasValue() {
			if record.Winner.Value() == firstColor {
				wins++
			} else {
				losses++
			}
		} else if record.Status.IsDraw() {
			draws++
		} else {
			adjourned++
		}

		if *verbose {
			fmt.Printf("\n%v (white) vs %v (black): %v\n%v\n", white, black, record.Status, record.Pgn)
		}
		_ = bar.Add(1)
	}

	fmt.Printf("\n%v vs %v: +%v =%v -%v (%v adjourned)\n", first, second, wins, draws, losses, adjourned)
}
