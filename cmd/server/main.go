package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"runtime/debug"

	"github.com/cricklet/minimax/internal/config"
	. "github.com/cricklet/minimax/internal/helpers"
	"github.com/cricklet/minimax/internal/server"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, fmt.Sprint(r))
			fmt.Fprintln(os.Stderr, string(debug.Stack()))
		}
	}()

	configPath := flag.String("config", "", "path to a JSON config file")
	port := flag.Int("port", 0, "port to serve on, overrides the config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Port = *port
	}

	logger, err := NewZerologLogger(os.Stderr, cfg.LogLevel, "server")
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	s, err := server.NewServer(logger, cfg)
	if !IsNil(err) {
		logger.Logger.Error().Err(err).Msg("invalid config")
		os.Exit(1)
	}

	logger.Logger.Info().
		Int("port", cfg.Port).
		Str("backend", cfg.Backend).
		Str("difficulty", cfg.DefaultDifficulty.String()).
		Msg("serving")

	err = Wrap(http.ListenAndServe(fmt.Sprintf(":%v", cfg.Port), s.Router()))
	if !IsNil(err) {
		logger.Logger.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
