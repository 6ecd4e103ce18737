// Package server exposes the searcher over HTTP and plays games with a
// browser over a websocket.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/cricklet/minimax/internal/config"
	"github.com/cricklet/minimax/internal/engine"
	. "github.com/cricklet/minimax/internal/helpers"
	"github.com/cricklet/minimax/internal/rules"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

type Server struct {
	Logger Logger
	Config config.Config

	backend  rules.Backend
	upgrader websocket.Upgrader
}

// NewServer fails on a config whose backend doesn't exist, so a typo shows
// up at startup instead of on every connection.
func NewServer(logger Logger, cfg config.Config) (*Server, Error) {
	backend, err := engine.BackendFromName(cfg.Backend)
	if !IsNil(err) {
		return nil, Join(Errorf("config"), err)
	}
	return &Server{
		Logger:   logger,
		Config:   cfg,
		backend:  backend,
		upgrader: websocket.Upgrader{},
	}, NilError
}

func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/ping", s.ping).Methods(http.MethodGet)
	api.HandleFunc("/difficulties", s.difficulties).Methods(http.MethodGet)
	api.HandleFunc("/models", s.models).Methods(http.MethodGet)
	api.HandleFunc("/bestmove", s.bestMove).Methods(http.MethodPost)
	router.HandleFunc("/ws", s.ws)
	return router
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(value)
	if err != nil {
		s.Logger.Println("writing response:", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err Error) {
	s.Logger.Println("request failed:", err)
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) ping(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type difficultyResponse struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Depth int    `json:"depth"`
}

func (s *Server) difficulties(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, MapSlice(config.AllDifficulties, func(d config.Difficulty) difficultyResponse {
		return difficultyResponse{Name: d.String(), Label: d.Label(), Depth: d.Depth()}
	}))
}

func (s *Server) models(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Config.Models)
}

type BestMoveRequest struct {
	Fen        string             `json:"fen"`
	Moves      []string           `json:"moves"`
	Difficulty *config.Difficulty `json:"difficulty"`
	Depth      *int               `json:"depth"`
	Backend    string             `json:"backend"`
}

type BestMoveResponse struct {
	Move   string `json:"move"`
	Score  int    `json:"score"`
	Depth  int    `json:"depth"`
	Nodes  int    `json:"nodes"`
	Status string `json:"status"`
}

const maxRequestDepth = 6

func (s *Server) bestMove(w http.ResponseWriter, r *http.Request) {
	var request BestMoveRequest
	err := Wrap(json.NewDecoder(r.Body).Decode(&request))
	if !IsNil(err) {
		s.writeError(w, http.StatusBadRequest, Join(Errorf("invalid request body"), err))
		return
	}

	if request.Fen == "" {
		request.Fen = rules.StartingFen
	}
	backend := s.backend
	if request.Backend != "" {
		backend, err = engine.BackendFromName(request.Backend)
		if !IsNil(err) {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	difficulty := s.Config.DefaultDifficulty
	if request.Difficulty != nil {
		difficulty = *request.Difficulty
	}
	depth := difficulty.Depth()
	if request.Depth != nil {
		depth = *request.Depth
	}
	if depth < 0 || depth > maxRequestDepth {
		s.writeError(w, http.StatusBadRequest, Errorf("depth %v outside 0..%v", depth, maxRequestDepth))
		return
	}

	game := engine.NewGame(engine.WithBackend(backend), engine.WithLogger(s.Logger))
	err = game.SetupPosition(engine.Position{Fen: request.Fen, Moves: request.Moves})
	if !IsNil(err) {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	response := BestMoveResponse{
		Depth:  depth,
		Status: game.Status().String(),
	}
	if request.Depth == nil && difficulty == config.None {
		s.writeJSON(w, http.StatusOK, response)
		return
	}

	result, err := game.SearchResult(r.Context(), depth)
	if !IsNil(err) {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if result.Move.HasValue() {
		response.Move = result.Move.Value().String()
	}
	response.Score = int(result.Score)
	response.Nodes = result.Stats.Nodes

	s.writeJSON(w, http.StatusOK, response)
}
