package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"
)

type TableRepository interface {
	Add(ctx context.Context, t table.Table) (table.Table, error)
	Get(ctx context.Context, id kernel.ID) (table.Table, error)
	GetByPublicID(ctx context.Context, publicID kernel.UUID) (table.Table, error)
}
