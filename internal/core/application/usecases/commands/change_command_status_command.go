package commands

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrChangeCommandStatusCommandIsNotConstructed = errors.New(
	"ChangeCommandStatusCommand must be created via NewChangeCommandStatusCommand constructor",
)

// ChangeCommandStatusCommand moves a command to the catalog status identified by
// statusKey. CloseAllOrders lets a close deliver the orders that are still unfinished.
type ChangeCommandStatusCommand struct { //nolint:recvcheck //using for validation
	commandID      kernel.UUID
	statusKey      string
	closeAllOrders bool
	actor          kernel.ID

	guard guard.ConstructorGuard
}

func NewChangeCommandStatusCommand(
	commandID kernel.UUID,
	statusKey string,
	closeAllOrders bool,
	actor kernel.ID,
) (ChangeCommandStatusCommand, error) {
	statusKey = strings.TrimSpace(statusKey)

	var keyErr error
	if statusKey == "" {
		keyErr = errs.NewValueIsRequiredError("status")
	}

	if err := errors.Join(
		commandID.Validate(),
		keyErr,
		kernel.RequireID("actor", actor),
	); err != nil {
		return ChangeCommandStatusCommand{}, err
	}

	return ChangeCommandStatusCommand{
		commandID:      commandID,
		statusKey:      statusKey,
		closeAllOrders: closeAllOrders,
		actor:          actor,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeCommandStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeCommandStatusCommandIsNotConstructed)
}

func (c ChangeCommandStatusCommand) CommandID() kernel.UUID {
	return c.commandID
}

func (c ChangeCommandStatusCommand) StatusKey() string {
	return c.statusKey
}

func (c ChangeCommandStatusCommand) CloseAllOrders() bool {
	return c.closeAllOrders
}

func (c ChangeCommandStatusCommand) Actor() kernel.ID {
	return c.actor
}
