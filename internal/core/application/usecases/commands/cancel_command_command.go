package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrCancelCommandCommandIsNotConstructed = errors.New(
	"CancelCommandCommand must be created via NewCancelCommandCommand constructor",
)

// CancelCommandCommand cancels an open or paying command. The reason is checked by the
// command aggregate so blank reasons surface as a business rule.
type CancelCommandCommand struct { //nolint:recvcheck //using for validation
	commandID kernel.UUID
	reason    string
	actor     kernel.ID

	guard guard.ConstructorGuard
}

func NewCancelCommandCommand(commandID kernel.UUID, reason string, actor kernel.ID) (CancelCommandCommand, error) {
	if err := errors.Join(
		commandID.Validate(),
		kernel.RequireID("actor", actor),
	); err != nil {
		return CancelCommandCommand{}, err
	}

	return CancelCommandCommand{
		commandID: commandID,
		reason:    reason,
		actor:     actor,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CancelCommandCommand) Validate() error {
	return c.guard.Validate(ErrCancelCommandCommandIsNotConstructed)
}

func (c CancelCommandCommand) CommandID() kernel.UUID {
	return c.commandID
}

func (c CancelCommandCommand) Reason() string {
	return c.reason
}

func (c CancelCommandCommand) Actor() kernel.ID {
	return c.actor
}
