package ports

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/command"
	"restaurant/internal/core/domain/model/kernel"
)

// CommandRepository persists command aggregates.
type CommandRepository interface {
	// Add inserts a new command and returns it with its assigned id.
	Add(ctx context.Context, c command.Command) (command.Command, error)

	// Update writes c if the stored row is still at c.Audit().PersistedVersion().
	Update(ctx context.Context, c command.Command) error

	Get(ctx context.Context, id kernel.ID) (command.Command, error)

	GetByPublicID(ctx context.Context, publicID kernel.UUID) (command.Command, error)

	// SumClosedTotals adds up the totals of the company's commands closed within [from, to].
	SumClosedTotals(ctx context.Context, companyID kernel.ID, from, to time.Time) (kernel.Money, error)
}
