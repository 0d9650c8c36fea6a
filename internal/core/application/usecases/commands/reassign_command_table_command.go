package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrReassignCommandTableCommandIsNotConstructed = errors.New(
	"ReassignCommandTableCommand must be created via NewReassignCommandTableCommand constructor",
)

// ReassignCommandTableCommand moves an open command to another table.
type ReassignCommandTableCommand struct { //nolint:recvcheck //using for validation
	commandID kernel.UUID
	tableID   kernel.UUID
	actor     kernel.ID

	guard guard.ConstructorGuard
}

func NewReassignCommandTableCommand(commandID, tableID kernel.UUID, actor kernel.ID) (ReassignCommandTableCommand, error) {
	if err := errors.Join(
		commandID.Validate(),
		tableID.Validate(),
		kernel.RequireID("actor", actor),
	); err != nil {
		return ReassignCommandTableCommand{}, err
	}

	return ReassignCommandTableCommand{
		commandID: commandID,
		tableID:   tableID,
		actor:     actor,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ReassignCommandTableCommand) Validate() error {
	return c.guard.Validate(ErrReassignCommandTableCommandIsNotConstructed)
}

func (c ReassignCommandTableCommand) CommandID() kernel.UUID {
	return c.commandID
}

func (c ReassignCommandTableCommand) TableID() kernel.UUID {
	return c.tableID
}

func (c ReassignCommandTableCommand) Actor() kernel.ID {
	return c.actor
}
