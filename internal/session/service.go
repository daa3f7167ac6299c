package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/kryshchuk/super-pizza-order/internal/catalog"
	"github.com/kryshchuk/super-pizza-order/internal/pricing"
)

type Service struct {
	repo    Repository
	catalog *catalog.Service
}

func NewService(repo Repository, catalogService *catalog.Service) *Service {
	return &Service{
		repo:    repo,
		catalog: catalogService,
	}
}

// Create opens a new ordering session against the currently active
// catalog. A later catalog reload does not touch open sessions.
func (s *Service) Create() (*Session, error) {
	session := &Session{
		ID:        uuid.New().String(),
		Engine:    pricing.NewEngine(s.catalog.Current()),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Service) Get(id string) (*Session, error) {
	return s.repo.Get(id)
}

func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}
