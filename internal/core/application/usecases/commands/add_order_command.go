package commands

import (
	"errors"
	"slices"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrAddOrderCommandIsNotConstructed = errors.New(
	"AddOrderCommand must be created via NewAddOrderCommand constructor",
)

// AddOrderCommand places an order of a product on a command. SelectedOptionIDs are the
// internal ids of the chosen modifier options; they are checked against the product's
// groups by the handler.
//
// Example:
//
//	notes := "no onions"
//	cmd, err := NewAddOrderCommand(commandID, productID, []kernel.ID{11, 21}, &notes, 0, waiterID)
//	if err != nil {
//	    return err
//	}
//	orderID, err := handler.Handle(ctx, cmd)
type AddOrderCommand struct { //nolint:recvcheck //using for validation
	commandID         kernel.UUID
	productID         kernel.UUID
	selectedOptionIDs []kernel.ID
	notes             *string
	priority          int
	actor             kernel.ID

	guard guard.ConstructorGuard
}

func NewAddOrderCommand(
	commandID, productID kernel.UUID,
	selectedOptionIDs []kernel.ID,
	notes *string,
	priority int,
	actor kernel.ID,
) (AddOrderCommand, error) {
	var priorityErr error
	if priority < order.MinPriority || priority > order.MaxPriority {
		priorityErr = errs.NewValueIsOutOfRangeError("priority", priority, order.MinPriority, order.MaxPriority)
	}

	if err := errors.Join(
		commandID.Validate(),
		productID.Validate(),
		priorityErr,
		kernel.RequireID("actor", actor),
	); err != nil {
		return AddOrderCommand{}, err
	}

	return AddOrderCommand{
		commandID:         commandID,
		productID:         productID,
		selectedOptionIDs: slices.Clone(selectedOptionIDs),
		notes:             notes,
		priority:          priority,
		actor:             actor,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

func (c AddOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderCommandIsNotConstructed)
}

func (c AddOrderCommand) CommandID() kernel.UUID {
	return c.commandID
}

func (c AddOrderCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c AddOrderCommand) SelectedOptionIDs() []kernel.ID {
	return slices.Clone(c.selectedOptionIDs)
}

// Notes is nil when the caller sent none; an empty string is kept as given.
func (c AddOrderCommand) Notes() *string {
	return c.notes
}

func (c AddOrderCommand) Priority() int {
	return c.priority
}

func (c AddOrderCommand) Actor() kernel.ID {
	return c.actor
}
