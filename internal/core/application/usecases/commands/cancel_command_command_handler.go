package commands

import (
	"context"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/services"
)

type CancelCommandCommandHandler struct {
	uowFactory CommandUoWFactory
	lifecycle  services.CommandLifecycle
}

func NewCancelCommandCommandHandler(
	uowFactory CommandUoWFactory,
	lifecycle services.CommandLifecycle,
) CancelCommandCommandHandler {
	return CancelCommandCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
	}
}

// Handle cancels the command. Its orders are left as they are.
func (h CancelCommandCommandHandler) Handle(ctx context.Context, cmd CancelCommandCommand) error {
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

		c, err := commandRepo.GetByPublicID(ctx, cmd.CommandID())
		if err != nil {
			return err
		}
		current, err := currentStatus(ctx, uow.StatusRepository(), catalog.CommandStatus, c.Status().Key())
		if err != nil {
			return err
		}

		canceled, err := h.lifecycle.Cancel(c, current, cmd.Reason(), cmd.Actor())
		if err != nil {
			return err
		}

		if err = commandRepo.Update(ctx, canceled); err != nil {
			return err
		}

		return uow.Commit(ctx)
	})
}
