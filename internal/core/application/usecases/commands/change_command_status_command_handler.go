package commands

import (
	"context"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/command"
	"restaurant/internal/core/domain/services"
)

// ChangeCommandStatusCommandHandler drives a command through open -> paying -> closed
// -> open. When a close delivers unfinished orders, the command and those orders are
// written in the same transaction, and the command total is settled.
//
// Example:
//
//	cmd, _ := NewChangeCommandStatusCommand(commandID, "closed", true, cashierID)
//	err := handler.Handle(ctx, cmd)
//	switch errs.KindOf(err) {
//	case errs.KindBusinessRule:
//	    // transition not permitted, or unfinished orders without closeAllOrders
//	case errs.KindConflict:
//	    // somebody else changed the command twice in a row
//	}
type ChangeCommandStatusCommandHandler struct {
	uowFactory CommandUoWFactory
	lifecycle  services.CommandLifecycle
}

func NewChangeCommandStatusCommandHandler(
	uowFactory CommandUoWFactory,
	lifecycle services.CommandLifecycle,
) ChangeCommandStatusCommandHandler {
	return ChangeCommandStatusCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
	}
}

func (h ChangeCommandStatusCommandHandler) Handle(ctx context.Context, cmd ChangeCommandStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retryOnConflictErr(func() error {
		return h.handle(ctx, cmd)
	})
}

func (h ChangeCommandStatusCommandHandler) handle(ctx context.Context, cmd ChangeCommandStatusCommand) error {
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

	c, err := commandRepo.GetByPublicID(ctx, cmd.CommandID())
	if err != nil {
		return err
	}

	current, err := currentStatus(ctx, statusRepo, catalog.CommandStatus, c.Status().Key())
	if err != nil {
		return err
	}
	requested, err := requestedStatus(ctx, statusRepo, catalog.CommandStatus, cmd.StatusKey())
	if err != nil {
		return err
	}

	orders, err := orderRepo.ListByCommand(ctx, c.ID())
	if err != nil {
		return err
	}

	result, err := h.lifecycle.TransitionStatus(c, current, requested, cmd.CloseAllOrders(), orders, cmd.Actor())
	if err != nil {
		return err
	}

	for _, o := range result.Orders {
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	changed := result.Command
	if changed.Status() == command.Closed {
		changed, err = h.lifecycle.RecalculateTotal(changed, orders, cmd.Actor())
		if err != nil {
			return err
		}
	}

	if err = commandRepo.Update(ctx, changed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
