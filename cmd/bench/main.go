package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cricklet/minimax/internal/engine"
	. "github.com/cricklet/minimax/internal/helpers"
	"github.com/cricklet/minimax/internal/rules"
	"github.com/cricklet/minimax/internal/search"
	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/pkg/profile"
	"github.com/schollz/progressbar/v3"
)

var _suite = []string{
	rules.StartingFen,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r2q1rk1/pP1p2pp/Q4n2/bbp1p3/Np6/1B3NBn/pPPP1PPP/R3K2R b KQ - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1",
}

type measurement struct {
	Fen     string
	Depth   int
	Pruned  bool
	Move    string
	Score   string
	Stats   search.Stats
	Elapsed time.Duration
}

func measure(game *engine.Game, fen string, depth int, options search.SearcherOptions) (measurement, Error) {
	err := game.SetupPosition(engine.Position{Fen: fen})
	if !IsNil(err) {
		return measurement{}, err
	}

	searcher := search.NewSearcher(&SilentLogger, options)
	start := time.Now()
	result, err := game.SearchWith(context.Background(), searcher, depth)
	if !IsNil(err) {
		return measurement{}, err
	}

	m := measurement{
		Fen:     fen,
		Depth:   depth,
		Pruned:  !Contains(options.Args(), "noPruning"),
		Move:    "none",
		Score:   result.Score.String(),
		Stats:   result.Stats,
		Elapsed: time.Since(start),
	}
	if result.Move.HasValue() {
		m.Move = result.Move.Value().String()
	}
	return m, NilError
}

func main() {
	maxDepth := flag.Int("depth", 3, "deepest search to run")
	backendName := flag.String("backend", "", "rules backend")
	unpruned := flag.Bool("unpruned", true, "also run plain minimax for comparison")
	flag.Parse()

	args := flag.Args()
	if Contains(args, "profile") {
		p := profile.Start(profile.ProfilePath(RootDir() + "/data/CmdBench"))
		defer p.Stop()
	}

	backend, err := engine.BackendFromName(*backendName)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	game := engine.NewGame(engine.WithBackend(backend))

	variants := []search.SearcherOptions{search.DefaultSearchOptions}
	if *unpruned {
		noPruning, err := search.SearcherOptionsFromArgs("noPruning")
		if !IsNil(err) {
			panic(err)
		}
		variants = append(variants, noPruning)
	}

	bar := progressbar.Default(int64(len(_suite) * *maxDepth * len(variants)), "searching")

	measurements := []measurement{}
	for _, fen := range _suite {
		for depth := 1; depth <= *maxDepth; depth++ {
			for _, options := range variants {
				m, err := measure(game, fen, depth, options)
				if !IsNil(err) {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(1)
				}
				measurements = append(measurements, m)
				_ = bar.Add(1)
			}
		}
	}

	totalNodes := 0
	for _, m := range measurements {
		totalNodes += m.Stats.Nodes
		label := "pruned"
		if !m.Pruned {
			label = "minimax"
		}
		fmt.Printf("%-8v depth %v %-6v %6v nodes %12v cutoffs %10v %v\n  %v\n",
			label, m.Depth, m.Move, m.Score,
			humanize.Comma(int64(m.Stats.Nodes)),
			humanize.Comma(int64(m.Stats.Cutoffs)),
			m.Elapsed.Round(time.Microsecond),
			m.Fen)
	}
	fmt.Println("total nodes", humanize.Comma(int64(totalNodes)), "on", backend.Name())

	if Contains(args, "dump") {
		spew.Dump(measurements)
	}
}
