package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hailam/chessrules/internal/board"
)

// Session is a game with an identity. Do serialises access to its State.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	updatedAt time.Time
	state     *State
}

// Do runs fn with exclusive access to the session's game.
func (s *Session) Do(fn func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
	s.updatedAt = time.Now()
}

// UpdatedAt returns when the session was last accessed through Do.
func (s *Session) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

// Manager keeps the games being played, keyed by session id.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	log      zerolog.Logger
}

// NewManager creates an empty manager. Games it starts log through l.
func NewManager(l zerolog.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		log:      l,
	}
}

// NewGame starts a game on b with start to move and registers it.
func (m *Manager) NewGame(start board.Color, b *board.Board) *Session {
	id := uuid.NewString()
	now := time.Now()
	s := &Session{
		ID:        id,
		CreatedAt: now,
		updatedAt: now,
		state:     New(start, b, WithLogger(m.log.With().Str("game", id).Logger())),
	}

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	m.log.Debug().Str("game", id).Str("start", start.String()).Msg("game created")
	return s
}

// Get returns the session with the given id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return s, nil
}

// Delete forgets a session.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrGameNotFound
	}
	delete(m.sessions, id)
	return nil
}

// Len returns the number of registered sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
