package commands

import (
	"context"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/services"
)

type ApplyCommandDiscountCommandHandler struct {
	uowFactory CommandUoWFactory
	lifecycle  services.CommandLifecycle
}

func NewApplyCommandDiscountCommandHandler(
	uowFactory CommandUoWFactory,
	lifecycle services.CommandLifecycle,
) ApplyCommandDiscountCommandHandler {
	return ApplyCommandDiscountCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
	}
}

// Handle records the discount and returns the recomputed command total.
func (h ApplyCommandDiscountCommandHandler) Handle(ctx context.Context, cmd ApplyCommandDiscountCommand) (kernel.Money, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.Money{}, err
	}

	return retryOnConflict(func() (kernel.Money, error) {
		uow := h.uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return kernel.Money{}, err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		commandRepo := uow.CommandRepository()

		c, err := commandRepo.GetByPublicID(ctx, cmd.CommandID())
		if err != nil {
			return kernel.Money{}, err
		}
		current, err := currentStatus(ctx, uow.StatusRepository(), catalog.CommandStatus, c.Status().Key())
		if err != nil {
			return kernel.Money{}, err
		}
		orders, err := uow.OrderRepository().ListByCommand(ctx, c.ID())
		if err != nil {
			return kernel.Money{}, err
		}

		discounted, err := h.lifecycle.ApplyDiscount(c, current, cmd.Amount(), cmd.Description(), orders, cmd.Actor())
		if err != nil {
			return kernel.Money{}, err
		}

		if err = commandRepo.Update(ctx, discounted); err != nil {
			return kernel.Money{}, err
		}
		if err = uow.Commit(ctx); err != nil {
			return kernel.Money{}, err
		}

		return *discounted.Total(), nil
	})
}
