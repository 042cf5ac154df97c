package main

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const maxSessions = 100

// SessionIdleTimeout is how long a session may sit empty before it is
// reaped. Var so tests can shorten it.
var SessionIdleTimeout = 60 * time.Second

// Session represents a game session that players can join
type Session struct {
	ID        string
	Name      string
	Game      *Game
	CreatedAt time.Time
}

// SessionManager handles creation and lookup of sessions
type SessionManager struct {
	mu        sync.RWMutex
	sessions  map[string]*Session
	db        *DB
	analytics *Analytics
}

// NewSessionManager creates a new SessionManager
func NewSessionManager(db *DB, analytics *Analytics) *SessionManager {
	return &SessionManager{
		sessions:  make(map[string]*Session),
		db:        db,
		analytics: analytics,
	}
}

// CreateSession creates a new game session. Returns nil if limit reached.
func (sm *SessionManager) CreateSession(name string) *Session {
	sm.mu.Lock()

	if len(sm.sessions) >= maxSessions {
		sm.mu.Unlock()
		return nil
	}

	// Short hex code, easy to type or pack into a QR join link
	id := GenerateID(3)
	for sm.sessions[id] != nil {
		id = GenerateID(3)
	}

	game := NewGame(id, sm.db, sm.analytics, log.With("session", id))
	sess := &Session{
		ID:        id,
		Name:      name,
		Game:      game,
		CreatedAt: time.Now(),
	}
	sm.sessions[id] = sess
	count := len(sm.sessions)
	sm.mu.Unlock()

	go game.Run()
	if sm.analytics != nil {
		sm.analytics.Track(EvtSessionStart, 0, id, "")
		sm.analytics.SetActiveSessions(count)
	}

	// Reap the session if nobody ever joins
	time.AfterFunc(SessionIdleTimeout, func() { sm.reapIfEmpty(id) })
	return sess
}

// GetSession returns a session by ID
func (sm *SessionManager) GetSession(id string) *Session {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.sessions[id]
}

// RemovePlayer removes a player from a session and reaps the session once
// the last player is gone
func (sm *SessionManager) RemovePlayer(sessionID, playerID string) {
	sm.mu.RLock()
	sess, ok := sm.sessions[sessionID]
	sm.mu.RUnlock()
	if !ok {
		return
	}
	sess.Game.RemovePlayer(playerID)

	if sess.Game.PlayerCount() == 0 {
		sm.remove(sessionID)
	}
}

// reapIfEmpty removes a session that never got a player
func (sm *SessionManager) reapIfEmpty(id string) {
	sm.mu.RLock()
	sess, ok := sm.sessions[id]
	sm.mu.RUnlock()
	if !ok || sess.Game.PlayerCount() > 0 {
		return
	}
	sm.remove(id)
}

func (sm *SessionManager) remove(id string) {
	sm.mu.Lock()
	sess, ok := sm.sessions[id]
	if ok {
		delete(sm.sessions, id)
	}
	count := len(sm.sessions)
	sm.mu.Unlock()

	if !ok {
		return
	}
	sess.Game.Stop()
	if sm.analytics != nil {
		sm.analytics.Track(EvtSessionEnd, 0, id, "")
		sm.analytics.SetActiveSessions(count)
	}
}

// SessionCount returns the number of active sessions
func (sm *SessionManager) SessionCount() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// ListSessions returns info about all active sessions
func (sm *SessionManager) ListSessions() []SessionInfo {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	list := make([]SessionInfo, 0, len(sm.sessions))
	for _, sess := range sm.sessions {
		list = append(list, SessionInfo{
			ID:      sess.ID,
			Name:    sess.Name,
			Players: sess.Game.PlayerCount(),
		})
	}
	return list
}
