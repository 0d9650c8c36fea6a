package commands

import (
	"context"

	"restaurant/internal/core/domain/model/command"
	"restaurant/internal/core/domain/model/kernel"
)

// OpenCommandCommandHandler opens a command on an existing table.
type OpenCommandCommandHandler struct {
	uowFactory CommandUoWFactory
	clock      kernel.Clock
}

func NewOpenCommandCommandHandler(uowFactory CommandUoWFactory, clock kernel.Clock) OpenCommandCommandHandler {
	if clock == nil {
		clock = kernel.SystemClock{}
	}
	return OpenCommandCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle stores the new command and returns its public id.
func (h OpenCommandCommandHandler) Handle(ctx context.Context, cmd OpenCommandCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tbl, err := uow.TableRepository().GetByPublicID(ctx, cmd.TableID())
	if err != nil {
		return kernel.UUID{}, err
	}

	opened, err := command.NewCommand(cmd.Name(), cmd.People(), tbl.ID(), tbl.CompanyID(), cmd.Actor(), h.clock.Now())
	if err != nil {
		return kernel.UUID{}, err
	}

	stored, err := uow.CommandRepository().Add(ctx, opened)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return stored.PublicID(), nil
}
