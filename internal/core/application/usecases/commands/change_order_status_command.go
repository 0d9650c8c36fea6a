package commands

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand moves an order along open -> in_preparation -> delivered.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	statusKey string
	actor     kernel.ID

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(orderID kernel.UUID, statusKey string, actor kernel.ID) (ChangeOrderStatusCommand, error) {
	statusKey = strings.TrimSpace(statusKey)

	var keyErr error
	if statusKey == "" {
		keyErr = errs.NewValueIsRequiredError("status")
	}

	if err := errors.Join(
		orderID.Validate(),
		keyErr,
		kernel.RequireID("actor", actor),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID:   orderID,
		statusKey: statusKey,
		actor:     actor,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeOrderStatusCommand) StatusKey() string {
	return c.statusKey
}

func (c ChangeOrderStatusCommand) Actor() kernel.ID {
	return c.actor
}
