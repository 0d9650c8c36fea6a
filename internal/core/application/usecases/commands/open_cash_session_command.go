package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrOpenCashSessionCommandIsNotConstructed = errors.New(
	"OpenCashSessionCommand must be created via NewOpenCashSessionCommand constructor",
)

// OpenCashSessionCommand starts a cash register shift with the float left in the drawer.
type OpenCashSessionCommand struct { //nolint:recvcheck //using for validation
	companyID    kernel.ID
	initialValue kernel.Money
	actor        kernel.ID

	guard guard.ConstructorGuard
}

func NewOpenCashSessionCommand(companyID kernel.ID, initialValue kernel.Money, actor kernel.ID) (OpenCashSessionCommand, error) {
	if err := errors.Join(
		kernel.RequireID("companyID", companyID),
		initialValue.Validate(),
		kernel.RequireID("actor", actor),
	); err != nil {
		return OpenCashSessionCommand{}, err
	}

	return OpenCashSessionCommand{
		companyID:    companyID,
		initialValue: initialValue,
		actor:        actor,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c OpenCashSessionCommand) Validate() error {
	return c.guard.Validate(ErrOpenCashSessionCommandIsNotConstructed)
}

func (c OpenCashSessionCommand) CompanyID() kernel.ID {
	return c.companyID
}

func (c OpenCashSessionCommand) InitialValue() kernel.Money {
	return c.initialValue
}

func (c OpenCashSessionCommand) Actor() kernel.ID {
	return c.actor
}
