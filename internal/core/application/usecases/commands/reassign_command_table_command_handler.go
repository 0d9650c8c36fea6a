package commands

import (
	"context"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/services"
)

type ReassignCommandTableCommandHandler struct {
	uowFactory CommandUoWFactory
	lifecycle  services.CommandLifecycle
}

func NewReassignCommandTableCommandHandler(
	uowFactory CommandUoWFactory,
	lifecycle services.CommandLifecycle,
) ReassignCommandTableCommandHandler {
	return ReassignCommandTableCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
	}
}

// Handle moves the command to the destination table. Only the command row changes.
func (h ReassignCommandTableCommandHandler) Handle(ctx context.Context, cmd ReassignCommandTableCommand) error {
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
		destination, err := uow.TableRepository().GetByPublicID(ctx, cmd.TableID())
		if err != nil {
			return err
		}

		moved, err := h.lifecycle.ReassignTable(c, current, destination, cmd.Actor())
		if err != nil {
			return err
		}

		if err = commandRepo.Update(ctx, moved); err != nil {
			return err
		}

		return uow.Commit(ctx)
	})
}
