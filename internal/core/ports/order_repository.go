package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository persists orders and their selected modifier options.
type OrderRepository interface {
	// Add inserts a new order and returns it with its assigned id.
	Add(ctx context.Context, o order.Order) (order.Order, error)

	// Update writes o if the stored row is still at o.Audit().PersistedVersion().
	// Selected options are never rewritten.
	Update(ctx context.Context, o order.Order) error

	Get(ctx context.Context, id kernel.ID) (order.Order, error)

	GetByPublicID(ctx context.Context, publicID kernel.UUID) (order.Order, error)

	// ListByCommand returns the live (not soft-deleted) orders of a command ordered by id.
	ListByCommand(ctx context.Context, commandID kernel.ID) ([]order.Order, error)
}
