package server

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	gm "jungle-engine/junglemg"
)

func stdoutLogger(next http.Handler) http.Handler {
	return handlers.LoggingHandler(os.Stdout, next)
}

// Server routes the play API over a game manager.
type Server struct {
	router   *mux.Router
	manager  *Manager
	upgrader websocket.Upgrader
}

func NewServer(hashMB int) *Server {
	s := &Server{
		router:  mux.NewRouter(),
		manager: NewManager(hashMB),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	s.router.Use(stdoutLogger)
	s.router.HandleFunc("/api/new_game", s.handleNewGame).Methods(http.MethodPost)
	s.router.HandleFunc("/api/play", s.handlePlay).Methods(http.MethodPost)
	s.router.HandleFunc("/api/ai_move", s.handleAIMove).Methods(http.MethodPost)
	s.router.HandleFunc("/api/state", s.handleState).Methods(http.MethodGet)
	s.router.HandleFunc("/ws", s.handleWS).Methods(http.MethodGet)
	return s
}

// Router exposes the handler for http.ListenAndServe.
func (s *Server) Router() http.Handler { return s.router }

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
	}
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	g := s.manager.NewGame()
	g.Lock()
	defer g.Unlock()

	legal := g.Pos.GenerateMoves(make([]gm.Move, 0, gm.MaxMoves))
	writeJSON(w, NewGameResponse{
		GameID:     g.ID,
		FEN:        g.Pos.FEN(),
		ToMove:     g.Pos.SideToMove().String(),
		LegalMoves: movesToDTO(legal),
	})
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	g, err := s.manager.Get(req.GameID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	g.Lock()
	defer g.Unlock()

	m := gm.ParseMove(req.Move)
	if m == gm.MoveNone || !g.Pos.IsLegal(m) {
		http.Error(w, "illegal move", http.StatusBadRequest)
		return
	}
	g.Pos.MakeMove(m)
	g.Touch()

	writeJSON(w, stateOf(g))
}

func (s *Server) handleAIMove(w http.ResponseWriter, r *http.Request) {
	var req AIMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	g, err := s.manager.Get(req.GameID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	g.Lock()
	defer g.Unlock()

	if statusString(g.Pos) != "ongoing" {
		http.Error(w, "game over", http.StatusConflict)
		return
	}

	movetime := req.MovetimeMs
	if movetime <= 0 {
		movetime = 1000
	}

	start := time.Now()
	best := g.Search.Think(g.Pos, 0, movetime, false)
	elapsed := time.Since(start)

	if best == gm.MoveNone {
		http.Error(w, "no legal moves", http.StatusConflict)
		return
	}
	g.Pos.MakeMove(best)
	g.Touch()

	writeJSON(w, AIMoveResponse{
		StateResponse: stateOf(g),
		EngineMove:    best.String(),
		Nodes:         g.Search.Nodes(),
		TimeMs:        elapsed.Milliseconds(),
	})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	g, err := s.manager.Get(r.URL.Query().Get("game_id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	g.Lock()
	defer g.Unlock()
	writeJSON(w, stateOf(g))
}

// handleWS subscribes the connection to the game's search info lines.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	g, err := s.manager.Get(r.URL.Query().Get("game_id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	g.subscribers.Subscribe(conn)
	go func() {
		defer func() {
			g.subscribers.Unsubscribe(conn)
			conn.Close()
		}()
		for {
			// Drain client frames; we only push.
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
