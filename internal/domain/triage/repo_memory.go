package triage

import (
	"context"
	"fmt"
	"sync"
)

type memorySessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemorySessionRepo returns a map-backed repository. The map lock only
// covers lookup and insertion; mutation of a session is serialised by the
// session's own lock.
func NewMemorySessionRepo() SessionRepository {
	return &memorySessionRepo{sessions: make(map[string]*Session)}
}

func (r *memorySessionRepo) Create(_ context.Context, s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sessions[s.ID]; exists {
		return fmt.Errorf("session %s already exists", s.ID)
	}
	r.sessions[s.ID] = s
	return nil
}

func (r *memorySessionRepo) Get(_ context.Context, id string) (*Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

func (r *memorySessionRepo) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
