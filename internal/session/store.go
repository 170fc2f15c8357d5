package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/careercraft/internal/catalog"
)

// Store is an in-memory session registry for multi-session servers. Sessions
// are isolated per user; the lock only guards the map itself, since no two
// requests share a session concurrently in the request/response model.
type Store struct {
	mu       sync.RWMutex
	catalog  *catalog.Catalog
	sessions map[uuid.UUID]*Session
}

// NewStore creates an empty store backed by the given catalog.
func NewStore(cat *catalog.Catalog) *Store {
	return &Store{
		catalog:  cat,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Create starts a new defaulted session and registers it.
func (st *Store) Create() *Session {
	s := New(st.catalog)
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get returns the session for an id, or false if it does not exist.
func (st *Store) Get(id uuid.UUID) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Delete removes a session. Deleting an unknown id is a no-op.
func (st *Store) Delete(id uuid.UUID) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len reports how many sessions are live.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
