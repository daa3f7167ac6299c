package catalog

import "context"

// MemoryRepository serves the built-in seed catalog. Used when
// DATABASE_URL is not configured, and by tests.
type MemoryRepository struct {
	catalog *Catalog
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{catalog: Default()}
}

func (r *MemoryRepository) Load(ctx context.Context) (*Catalog, error) {
	return r.catalog, nil
}
