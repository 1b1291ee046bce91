package session

import (
	"sync"

	"github.com/google/uuid"
)

// Manager keys live session stores by ID so the HTTP host can isolate
// concurrent sessions. Each store is created on demand and freed when the
// session ends; there is no persistence.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Store
}

// NewManager returns an empty session registry.
func NewManager() *Manager {
	return &Manager{sessions: make(map[uuid.UUID]*Store)}
}

// Create registers a new empty session and returns its ID and store.
func (m *Manager) Create() (uuid.UUID, *Store) {
	id := uuid.New()
	store := NewStore()

	m.mu.Lock()
	m.sessions[id] = store
	m.mu.Unlock()

	return id, store
}

// Get returns the store for a session ID, if it exists.
func (m *Manager) Get(id uuid.UUID) (*Store, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	store, ok := m.sessions[id]
	return store, ok
}

// End removes a session, destroying its transcript. Returns false if the
// session does not exist.
func (m *Manager) End(id uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
