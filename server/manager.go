package server

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"jungle-engine/engine"
	gm "jungle-engine/junglemg"
)

// Game is one live session. The mutex serializes move application and
// searches; the searcher keeps its transposition table across moves.
type Game struct {
	ID        string
	Pos       *gm.Position
	Search    *engine.Search
	CreatedAt time.Time
	UpdatedAt time.Time

	mu          sync.Mutex
	subscribers *infoBroadcaster
}

// Lock serializes access to the game position and searcher.
func (g *Game) Lock()   { g.mu.Lock() }
func (g *Game) Unlock() { g.mu.Unlock() }

// Touch updates the activity timestamp.
func (g *Game) Touch() { g.UpdatedAt = time.Now() }

type Manager struct {
	mu     sync.RWMutex
	games  map[string]*Game
	hashMB int
}

func NewManager(hashMB int) *Manager {
	return &Manager{
		games:  make(map[string]*Game),
		hashMB: hashMB,
	}
}

func (m *Manager) NewGame() *Game {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	g := &Game{
		ID:          id,
		Pos:         gm.NewPosition(),
		Search:      engine.NewSearch(m.hashMB),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
		subscribers: newInfoBroadcaster(),
	}
	g.Search.SetOutput(g.subscribers)
	m.games[id] = g
	return g
}

func (m *Manager) Get(id string) (*Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, errors.New("game not found")
	}
	return g, nil
}
