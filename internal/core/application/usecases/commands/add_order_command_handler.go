package commands

import (
	"context"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/services"
)

// AddOrderCommandHandler validates the modifier selection, stores the order with its
// frozen prices and recomputes the command total in the same transaction.
type AddOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	orders     services.OrderLifecycle
	commands   services.CommandLifecycle
}

func NewAddOrderCommandHandler(
	uowFactory OrderUoWFactory,
	orders services.OrderLifecycle,
	commands services.CommandLifecycle,
) AddOrderCommandHandler {
	return AddOrderCommandHandler{
		uowFactory: uowFactory,
		orders:     orders,
		commands:   commands,
	}
}

// Handle returns the public id of the new order.
func (h AddOrderCommandHandler) Handle(ctx context.Context, cmd AddOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	return retryOnConflict(func() (kernel.UUID, error) {
		uow := h.uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return kernel.UUID{}, err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		commandRepo := uow.CommandRepository()
		orderRepo := uow.OrderRepository()

		c, err := commandRepo.GetByPublicID(ctx, cmd.CommandID())
		if err != nil {
			return kernel.UUID{}, err
		}
		current, err := currentStatus(ctx, uow.StatusRepository(), catalog.CommandStatus, c.Status().Key())
		if err != nil {
			return kernel.UUID{}, err
		}
		p, err := uow.ProductRepository().GetByPublicID(ctx, cmd.ProductID())
		if err != nil {
			return kernel.UUID{}, err
		}

		placed, err := h.orders.CreateOrder(c, current, p, services.NewOrderRequest{
			SelectedOptionIDs: cmd.SelectedOptionIDs(),
			Notes:             cmd.Notes(),
			Priority:          cmd.Priority(),
			Actor:             cmd.Actor(),
		})
		if err != nil {
			return kernel.UUID{}, err
		}

		existing, err := orderRepo.ListByCommand(ctx, c.ID())
		if err != nil {
			return kernel.UUID{}, err
		}
		stored, err := orderRepo.Add(ctx, placed)
		if err != nil {
			return kernel.UUID{}, err
		}

		totaled, err := h.commands.RecalculateTotal(c, append(existing, stored), cmd.Actor())
		if err != nil {
			return kernel.UUID{}, err
		}
		if err = commandRepo.Update(ctx, totaled); err != nil {
			return kernel.UUID{}, err
		}

		if err = uow.Commit(ctx); err != nil {
			return kernel.UUID{}, err
		}

		return stored.PublicID(), nil
	})
}
