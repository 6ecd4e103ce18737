package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/cricklet/minimax/internal/config"
	"github.com/cricklet/minimax/internal/engine"
	. "github.com/cricklet/minimax/internal/helpers"
	"github.com/cricklet/minimax/internal/rules"
	"github.com/gorilla/websocket"
)

type UpdateToWeb struct {
	FenString     string   `json:"fenString"`
	LastMove      string   `json:"lastMove"`
	Selection     string   `json:"selection"`
	PossibleMoves []string `json:"possibleMoves"`
	Player        string   `json:"player"`
	Status        string   `json:"status"`
}

func (u UpdateToWeb) String() string {
	return fmt.Sprint("UpdateToWeb: ", u.FenString, ", ", u.LastMove, ", ", u.Selection, ", ", u.PossibleMoves, ", ", u.Status)
}

type MessageFromWeb struct {
	NewFen      *string `json:"newFen"`
	WhitePlayer *string `json:"whitePlayer"`
	BlackPlayer *string `json:"blackPlayer"`
	Difficulty  *string `json:"difficulty"`
	Selection   *string `json:"selection"`
	Move        *string `json:"move"`
	Ready       *bool   `json:"ready"`
	Rewind      *int    `json:"rewind"`
}

func (u MessageFromWeb) String() string {
	if u.NewFen != nil {
		return fmt.Sprint("MessageFromWeb NewFen: ", *u.NewFen)
	}
	if u.WhitePlayer != nil {
		return fmt.Sprint("MessageFromWeb WhitePlayer: ", *u.WhitePlayer)
	}
	if u.BlackPlayer != nil {
		return fmt.Sprint("MessageFromWeb BlackPlayer: ", *u.BlackPlayer)
	}
	if u.Difficulty != nil {
		return fmt.Sprint("MessageFromWeb Difficulty: ", *u.Difficulty)
	}
	if u.Selection != nil {
		return fmt.Sprint("MessageFromWeb Selection: ", *u.Selection)
	}
	if u.Move != nil {
		return fmt.Sprint("MessageFromWeb Move: ", *u.Move)
	}
	if u.Ready != nil {
		return fmt.Sprint("MessageFromWeb Ready: ", *u.Ready)
	}
	if u.Rewind != nil {
		return fmt.Sprint("MessageFromWeb Rewind: ", *u.Rewind)
	}
	return "MessageFromWeb unknown"
}

type PlayerType int

const (
	User PlayerType = iota
	Computer
	Unknown
)

func (t PlayerType) String() string {
	switch t {
	case User:
		return "user"
	case Computer:
		return "computer"
	default:
		return "unknown"
	}
}

func PlayerTypeFromString(s string) PlayerType {
	switch s {
	case "user", "human":
		return User
	case "computer", "ai":
		return Computer
	}
	return Unknown
}

// session is one browser game. The read loop and the computer player share
// it under mu, and every websocket write happens while mu is held. The
// computer searches a clone of the game without holding mu. Any message that
// changes the game bumps generation and cancels that search, and a result
// from an older generation is dropped.
type session struct {
	mu sync.Mutex

	ctx    context.Context
	conn   *websocket.Conn
	logger Logger

	game        *engine.Game
	playerTypes [2]PlayerType
	difficulty  config.Difficulty
	ready       bool
	thinking    bool

	generation   int
	cancelSearch context.CancelFunc

	wg sync.WaitGroup
}

func (s *Server) ws(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.Logger.Println("upgrade:", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	session := &session{
		ctx:        ctx,
		conn:       conn,
		logger:     s.Logger,
		game:       engine.NewGame(engine.WithBackend(s.backend), engine.WithLogger(s.Logger)),
		difficulty: s.Config.DefaultDifficulty,
	}
	berr := session.game.SetupPosition(engine.Position{Fen: rules.StartingFen})
	if !IsNil(berr) {
		s.Logger.Println("setup:", berr)
		return
	}

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			s.Logger.Printf("Error: %v", err)
			break
		}
		session.handleMessageFromWeb(message)
	}

	cancel()
	session.wg.Wait()
}

func (s *session) sendUpdate(update UpdateToWeb) {
	update.FenString = s.game.FenString()
	update.Player = s.game.Player().String()
	update.Status = s.game.Status().String()
	update.LastMove = s.game.LastMove().ValueOr("")

	s.logger.Println("sending", update)
	bytes, err := json.Marshal(update)
	if err != nil {
		s.logger.Println("update: json marshal: ", err)
		return
	}
	err = s.conn.WriteMessage(websocket.TextMessage, bytes)
	if err != nil {
		s.logger.Println("websocket: ", err)
	}
}

func (s *session) computerToMove() bool {
	return s.ready &&
		!s.game.IsNew() &&
		s.playerTypes[s.game.Player()] == Computer &&
		!s.game.Status().IsTerminal()
}

func (s *session) handleMessageFromWeb(bytes []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var message MessageFromWeb
	err := json.Unmarshal(bytes, &message)
	if err != nil {
		s.logger.Println("handleMessageFromWeb: json unmarshal: ", err)
		return
	}
	s.logger.Println("received", message)

	var update UpdateToWeb
	shouldUpdate := false

	if message.NewFen != nil {
		err := s.game.SetupPosition(engine.Position{
			Fen:   *message.NewFen,
			Moves: []string{},
		})
		if !IsNil(err) {
			s.logger.Println("setup: ", err)
			err = s.game.SetupPosition(engine.Position{Fen: rules.StartingFen})
			if !IsNil(err) {
				s.logger.Println("setup: ", err)
				return
			}
		}
		shouldUpdate = true
	} else if message.WhitePlayer != nil {
		s.playerTypes[rules.White] = PlayerTypeFromString(*message.WhitePlayer)
	} else if message.BlackPlayer != nil {
		s.playerTypes[rules.Black] = PlayerTypeFromString(*message.BlackPlayer)
	} else if message.Difficulty != nil {
		difficulty, err := config.DifficultyFromString(*message.Difficulty)
		if !IsNil(err) {
			s.logger.Println("difficulty: ", err)
		} else {
			s.difficulty = difficulty
		}
	} else if message.Selection != nil {
		if *message.Selection != "" {
			update.Selection = *message.Selection
			result, err := s.game.MovesForSelection(*message.Selection)
			if !IsNil(err) {
				s.logger.Println("moves for: ", *message.Selection, err)
			}
			update.PossibleMoves = result
		}
		shouldUpdate = true
	} else if message.Move != nil {
		err := s.game.PerformMoveFromString(*message.Move)
		if !IsNil(err) {
			s.logger.Println("perform: ", *message.Move, err)
		}
		shouldUpdate = true
	} else if message.Rewind != nil {
		err := s.game.Rewind(*message.Rewind)
		if !IsNil(err) {
			s.logger.Println("rewind: ", *message.Rewind, err)
		}
		shouldUpdate = true
	} else if message.Ready != nil {
		if s.ready != *message.Ready {
			s.ready = *message.Ready
			shouldUpdate = true
		}
	}

	if message.Selection == nil {
		s.generation++
		if s.cancelSearch != nil {
			s.cancelSearch()
		}
	}

	if shouldUpdate {
		s.sendUpdate(update)
	}

	if s.computerToMove() && !s.thinking {
		s.thinking = true
		s.wg.Add(1)
		go s.playComputerMoves()
	}
}

// playComputerMoves keeps moving while it is a computer's turn.
func (s *session) playComputerMoves() {
	defer s.wg.Done()

	for s.performComputerMove() {
	}
}

func (s *session) performComputerMove() bool {
	s.mu.Lock()
	if s.ctx.Err() != nil || !s.computerToMove() {
		s.thinking = false
		s.mu.Unlock()
		return false
	}

	generation := s.generation
	difficulty := s.difficulty
	clone, err := s.game.Clone()
	if !IsNil(err) {
		s.logger.Println("clone: ", err)
		s.thinking = false
		s.mu.Unlock()
		return false
	}
	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	s.cancelSearch = cancel
	s.mu.Unlock()

	bestMove, _, err := clone.SearchDifficulty(ctx, difficulty)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelSearch = nil

	if generation != s.generation {
		s.logger.Println("search: game changed, dropping result")
		return true
	}
	if !IsNil(err) {
		s.logger.Println("search: ", err)
		s.thinking = false
		return false
	}
	if bestMove.IsEmpty() {
		s.logger.Println("no move found")
		s.thinking = false
		return false
	}

	s.logger.Println("search: ", bestMove.Value())
	err = s.game.PerformMoveFromString(bestMove.Value())
	if !IsNil(err) {
		s.logger.Println("perform: ", bestMove.Value(), err)
		s.thinking = false
		return false
	}

	s.sendUpdate(UpdateToWeb{})
	return true
}
