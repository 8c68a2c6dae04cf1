package cart

import "sync"

// Manager hands out one Store per session and keeps it alive for the
// process lifetime, so the cart survives navigation between pages. It is
// injected into the HTTP layer rather than living as a package global.
type Manager struct {
	mu     sync.RWMutex
	repo   Repository
	stores map[string]*Store
}

// NewManager creates a manager backed by the given repository.
func NewManager(repo Repository) *Manager {
	return &Manager{
		repo:   repo,
		stores: make(map[string]*Store),
	}
}

// Store returns the cart for the session, creating it (and loading any
// persisted lines) on first use.
func (m *Manager) Store(sessionID string) *Store {
	m.mu.RLock()
	store, ok := m.stores[sessionID]
	m.mu.RUnlock()
	if ok {
		return store
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if store, ok := m.stores[sessionID]; ok {
		return store
	}
	store = NewStore(m.repo, sessionID)
	m.stores[sessionID] = store
	return store
}
