package session

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("session not found")

type Repository interface {
	Save(session *Session) error
	Get(id string) (*Session, error)
	Delete(id string) error
}

// InMemoryRepository keeps sessions in a map. The only store we need:
// sessions are scoped to the process lifetime.
type InMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{sessions: make(map[string]*Session)}
}

func (r *InMemoryRepository) Save(session *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
	return nil
}

func (r *InMemoryRepository) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (r *InMemoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(r.sessions, id)
	return nil
}
