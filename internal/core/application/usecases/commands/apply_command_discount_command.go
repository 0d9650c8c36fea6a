package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrApplyCommandDiscountCommandIsNotConstructed = errors.New(
	"ApplyCommandDiscountCommand must be created via NewApplyCommandDiscountCommand constructor",
)

// ApplyCommandDiscountCommand sets the discount of a command. A zero amount removes it.
type ApplyCommandDiscountCommand struct { //nolint:recvcheck //using for validation
	commandID   kernel.UUID
	amount      kernel.Money
	description *string
	actor       kernel.ID

	guard guard.ConstructorGuard
}

func NewApplyCommandDiscountCommand(
	commandID kernel.UUID,
	amount kernel.Money,
	description *string,
	actor kernel.ID,
) (ApplyCommandDiscountCommand, error) {
	if err := errors.Join(
		commandID.Validate(),
		amount.Validate(),
		kernel.RequireID("actor", actor),
	); err != nil {
		return ApplyCommandDiscountCommand{}, err
	}

	return ApplyCommandDiscountCommand{
		commandID:   commandID,
		amount:      amount,
		description: description,
		actor:       actor,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ApplyCommandDiscountCommand) Validate() error {
	return c.guard.Validate(ErrApplyCommandDiscountCommandIsNotConstructed)
}

func (c ApplyCommandDiscountCommand) CommandID() kernel.UUID {
	return c.commandID
}

func (c ApplyCommandDiscountCommand) Amount() kernel.Money {
	return c.amount
}

func (c ApplyCommandDiscountCommand) Description() *string {
	return c.description
}

func (c ApplyCommandDiscountCommand) Actor() kernel.ID {
	return c.actor
}
