package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/product"
)

// ProductRepository loads products together with their modifier groups and options.
type ProductRepository interface {
	// Add inserts the product, its groups and options, and returns it with every id assigned.
	Add(ctx context.Context, p product.Product) (product.Product, error)
	Get(ctx context.Context, id kernel.ID) (product.Product, error)
	GetByPublicID(ctx context.Context, publicID kernel.UUID) (product.Product, error)
}
