package wizard

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session binds a live wizard instance to a flow for one shopper. Sessions
// are held in memory only; navigating away and returning starts fresh.
type Session struct {
	ID        string
	Flow      *FlowConfig
	Wizard    *Wizard
	CreatedAt time.Time
}

// Manager tracks live wizard sessions
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates an empty session manager
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

// Create starts a fresh wizard session for the given flow
func (m *Manager) Create(flow *FlowConfig) *Session {
	session := &Session{
		ID:        uuid.NewString(),
		Flow:      flow,
		Wizard:    flow.NewWizard(),
		CreatedAt: time.Now().UTC(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = session
	return session
}

// Get returns the session with the given id
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, exists := m.sessions[id]
	return session, exists
}

// Delete discards a session, e.g. when the shopper navigates away
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// PruneBefore discards sessions created before the cutoff and returns how
// many were removed. Called opportunistically from request handlers; the
// manager never spawns its own timers.
func (m *Manager) PruneBefore(cutoff time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	pruned := 0
	for id, session := range m.sessions {
		if session.CreatedAt.Before(cutoff) {
			delete(m.sessions, id)
			pruned++
		}
	}
	return pruned
}
