package ports

import (
	"context"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
)

// StatusRepository resolves status catalog entries.
type StatusRepository interface {
	// Get returns the entry with the given internal id.
	Get(ctx context.Context, id kernel.ID) (catalog.Entry, error)

	// GetByKey returns the entry of kind identified by key.
	GetByKey(ctx context.Context, kind catalog.Kind, key string) (catalog.Entry, error)

	// List returns every entry of kind ordered by id.
	List(ctx context.Context, kind catalog.Kind) ([]catalog.Entry, error)
}
