package commands

import (
	"context"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/services"
)

type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	orders     services.OrderLifecycle
}

func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	orders services.OrderLifecycle,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		orders:     orders,
	}
}

// Handle moves the order forward. Prices do not change, so the command is not touched.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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
		orderRepo := uow.OrderRepository()

		o, err := orderRepo.GetByPublicID(ctx, cmd.OrderID())
		if err != nil {
			return err
		}
		current, err := currentStatus(ctx, statusRepo, catalog.OrderStatus, o.Status().Key())
		if err != nil {
			return err
		}
		requested, err := requestedStatus(ctx, statusRepo, catalog.OrderStatus, cmd.StatusKey())
		if err != nil {
			return err
		}

		moved, err := h.orders.TransitionStatus(o, current, requested, cmd.Actor())
		if err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, moved); err != nil {
			return err
		}

		return uow.Commit(ctx)
	})
}
