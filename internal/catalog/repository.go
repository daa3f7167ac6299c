package catalog

import "context"

// Repository loads the reference data from wherever it lives.
type Repository interface {
	Load(ctx context.Context) (*Catalog, error)
}
