package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cricklet/minimax/internal/config"
	"github.com/cricklet/minimax/internal/engine"
	. "github.com/cricklet/minimax/internal/helpers"
	"github.com/cricklet/minimax/internal/rules"
	"github.com/cricklet/minimax/internal/search"
	"github.com/cricklet/minimax/internal/uci"
	"github.com/pkg/profile"
)

type settings struct {
	backend       rules.Backend
	difficulty    config.Difficulty
	searchOptions search.SearcherOptions
	profile       bool
	list          bool
}

func parseSettings(args []string) (settings, Error) {
	flags := flag.NewFlagSet("uci", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	backendName := flags.String("backend", "", "rules backend: "+strings.Join(engine.BackendNames(), ", "))
	difficultyName := flags.String("difficulty", config.Medium.String(), "search difficulty when go has no depth")
	options := flags.String("options", "", "comma separated search options")
	profileFlag := flags.Bool("profile", false, "write a cpu profile to data/CmdUciMain")
	list := flags.Bool("list", false, "print backends, difficulties and search options")

	result := settings{}
	err := Wrap(flags.Parse(args))
	if !IsNil(err) {
		return result, err
	}
	if flags.NArg() > 0 {
		return result, Errorf("unexpected arguments %v", flags.Args())
	}

	result.backend, err = engine.BackendFromName(*backendName)
	if !IsNil(err) {
		return result, err
	}
	result.difficulty, err = config.DifficultyFromString(*difficultyName)
	if !IsNil(err) {
		return result, err
	}
	result.searchOptions, err = search.SearcherOptionsFromArgs(strings.Split(*options, ",")...)
	if !IsNil(err) {
		return result, err
	}
	result.profile = *profileFlag
	result.list = *list
	return result, NilError
}

func printList(out io.Writer) {
	fmt.Fprintln(out, "backends:", strings.Join(engine.BackendNames(), " "))
	fmt.Fprintln(out, "difficulties:", strings.Join(MapSlice(config.AllDifficulties, config.Difficulty.String), " "))
	fmt.Fprintln(out, "options:", strings.Join(search.AllSearchOptions, " "))
}

// serve answers UCI commands from in until quit or end of input. Errors are
// reported as info strings so a GUI keeps talking to the engine.
func serve(ctx context.Context, r *uci.UciRunner, in io.Reader, out io.Writer, errOut io.Writer) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		if input == "quit" {
			return
		}
		result, err := r.HandleInput(ctx, input)
		if !IsNil(err) {
			fmt.Fprintln(out, "info string error:", err.Error())
			fmt.Fprintln(errOut, "error:", err)
		}
		for _, v := range result {
			fmt.Fprintln(out, v)
		}
	}
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "recover()", r)
		}
	}()

	s, err := parseSettings(os.Args[1:])
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if s.list {
		printList(os.Stdout)
		return
	}
	if s.profile {
		p := profile.Start(profile.ProfilePath(RootDir() + "/data/CmdUciMain"))
		defer p.Stop()
	}

	r := uci.NewUciRunner(engine.NewGame(
		engine.WithBackend(s.backend),
		engine.WithSearchOptions(s.searchOptions),
		engine.WithLogger(FuncLogger(func(line string) {
			fmt.Print("info string ", line)
		})),
	))
	r.Difficulty = s.difficulty

	serve(context.Background(), r, os.Stdin, os.Stdout, os.Stderr)
}
