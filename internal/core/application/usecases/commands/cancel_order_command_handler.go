package commands

import (
	"context"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/services"
)

// CancelOrderCommandHandler cancels an order and takes it out of the command total.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	orders     services.OrderLifecycle
	commands   services.CommandLifecycle
}

func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	orders services.OrderLifecycle,
	commands services.CommandLifecycle,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		orders:     orders,
		commands:   commands,
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

		statusRepo := uow.StatusRepository()
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
		current, err := currentStatus(ctx, statusRepo, catalog.OrderStatus, o.Status().Key())
		if err != nil {
			return err
		}
		commandStatus, err := currentStatus(ctx, statusRepo, catalog.CommandStatus, c.Status().Key())
		if err != nil {
			return err
		}

		canceled, err := h.orders.Cancel(o, current, commandStatus, cmd.Reason(), cmd.Actor())
		if err != nil {
			return err
		}

		siblings, err := orderRepo.ListByCommand(ctx, c.ID())
		if err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, canceled); err != nil {
			return err
		}

		totaled, err := h.commands.RecalculateTotal(c, replaceOrder(siblings, canceled), cmd.Actor())
		if err != nil {
			return err
		}
		if err = commandRepo.Update(ctx, totaled); err != nil {
			return err
		}

		return uow.Commit(ctx)
	})
}
