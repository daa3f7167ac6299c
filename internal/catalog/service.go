package catalog

import (
	"context"
	"sync"
)

// Service holds the currently active catalog and can reload it from
// the repository (admin flow). New ordering sessions pick up the
// reloaded catalog; sessions already open keep the one they started
// with, so their prices never shift mid-order.
type Service struct {
	repo Repository

	mu      sync.RWMutex
	current *Catalog
}

func NewService(ctx context.Context, repo Repository) (*Service, error) {
	c, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Service{repo: repo, current: c}, nil
}

// Current returns the active catalog.
func (s *Service) Current() *Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Reload re-reads the catalog from the repository and swaps it in.
func (s *Service) Reload(ctx context.Context) (*Catalog, error) {
	c, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = c
	s.mu.Unlock()

	return c, nil
}
