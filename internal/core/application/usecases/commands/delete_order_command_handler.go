package commands

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
)

// DeleteOrderCommandHandler soft deletes an order of a command that is still open or
// paying and recomputes the command total without it.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	commands   services.CommandLifecycle
	clock      kernel.Clock
}

func NewDeleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	commands services.CommandLifecycle,
	clock kernel.Clock,
) DeleteOrderCommandHandler {
	if clock == nil {
		clock = kernel.SystemClock{}
	}
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		commands:   commands,
		clock:      clock,
	}
}

func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retryOnConflictErr(func() error {
		uow := h.uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		commandRepo := uow.CommandRepository()
		orderRepo := uow.OrderRepository()

		o, err := orderRepo.GetByPublicID(ctx, cmd.OrderID())
		if err != nil {
			return err
		}
		c, err := commandRepo.Get(ctx, o.CommandID())
		if err != nil {
			return err
		}
		if c.Status().IsTerminal() {
			return errs.NewBusinessRuleViolationError("cannot delete an order of a %s command", c.Status().Key())
		}

		siblings, err := orderRepo.ListByCommand(ctx, c.ID())
		if err != nil {
			return err
		}

		deleted := o.Deleted(h.clock.Now(), cmd.Actor())
		if err = orderRepo.Update(ctx, deleted); err != nil {
			return err
		}

		totaled, err := h.commands.RecalculateTotal(c, replaceOrder(siblings, deleted), cmd.Actor())
		if err != nil {
			return err
		}
		if err = commandRepo.Update(ctx, totaled); err != nil {
			return err
		}

		return uow.Commit(ctx)
	})
}

// replaceOrder swaps the stored copy of changed in orders for changed itself.
func replaceOrder(orders []order.Order, changed order.Order) []order.Order {
	out := make([]order.Order, 0, len(orders))
	for _, o := range orders {
		if o.ID() == changed.ID() {
			out = append(out, changed)
			continue
		}
		out = append(out, o)
	}
	return out
}
