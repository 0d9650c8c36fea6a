package services

import (
	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/command"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/pkg/errs"
)

// CommandTransition is the result of a command status change. Orders holds the orders
// that were moved as part of the change; the caller persists the command and these
// orders in the same transaction.
type CommandTransition struct {
	Command command.Command
	Orders  []order.Order
}

// CommandLifecycle applies the business rules of a command's life.
//
// Example usage:
//
//	lifecycle := services.NewCommandLifecycle(kernel.SystemClock{})
//	result, err := lifecycle.TransitionStatus(cmd, current, closedEntry, true, orders, actor)
//	if err != nil {
//	    return err
//	}
//	// persist result.Command and every order in result.Orders together
type CommandLifecycle struct {
	clock kernel.Clock
}

func NewCommandLifecycle(clock kernel.Clock) CommandLifecycle {
	if clock == nil {
		clock = kernel.SystemClock{}
	}
	return CommandLifecycle{clock: clock}
}

// TransitionStatus moves the command from current to requested along
// open -> paying -> closed -> open.
//
// Closing a command that still has open or in-preparation orders requires
// closeAllOrders; those orders are then delivered and returned with the command.
func (l CommandLifecycle) TransitionStatus(
	c command.Command,
	current, requested catalog.Entry,
	closeAllOrders bool,
	orders []order.Order,
	actor kernel.ID,
) (CommandTransition, error) {
	if _, err := resolveCommandStatus(c, current); err != nil {
		return CommandTransition{}, err
	}
	to, err := command.StatusFromEntry(requested)
	if err != nil {
		return CommandTransition{}, err
	}

	now := l.clock.Now()
	next, err := c.WithStatus(to, now, actor)
	if err != nil {
		return CommandTransition{}, err
	}

	if to != command.Closed {
		return CommandTransition{Command: next}, nil
	}

	unfinished := unfinishedOrders(c, orders)
	if len(unfinished) > 0 && !closeAllOrders {
		return CommandTransition{}, errs.NewBusinessRuleViolationError(
			"command has unfinished orders; close them first or request closeAllOrders")
	}

	delivered := make([]order.Order, 0, len(unfinished))
	for _, o := range unfinished {
		d, deliverErr := o.Delivered(now, actor)
		if deliverErr != nil {
			return CommandTransition{}, deliverErr
		}
		delivered = append(delivered, d)
	}

	return CommandTransition{Command: next, Orders: delivered}, nil
}

// ReassignTable moves an open command to another table of the same company.
func (l CommandLifecycle) ReassignTable(
	c command.Command,
	current catalog.Entry,
	destination table.Table,
	actor kernel.ID,
) (command.Command, error) {
	status, err := resolveCommandStatus(c, current)
	if err != nil {
		return command.Command{}, err
	}
	if err = destination.Validate(); err != nil {
		return command.Command{}, err
	}

	if status != command.Open {
		return command.Command{}, errs.NewBusinessRuleViolationError("command must be open to have its table changed")
	}
	if destination.ID() == c.TableID() {
		return command.Command{}, errs.NewBusinessRuleViolationError("command is already at the destination table")
	}
	if destination.CompanyID() != c.CompanyID() {
		return command.Command{}, errs.NewBusinessRuleViolationError(
			"command and destination table must belong to the same company")
	}

	return c.WithTable(destination.ID(), l.clock.Now(), actor)
}

// Cancel cancels an open or paying command. Canceled commands accept no further change.
func (l CommandLifecycle) Cancel(
	c command.Command,
	current catalog.Entry,
	reason string,
	actor kernel.ID,
) (command.Command, error) {
	if _, err := resolveCommandStatus(c, current); err != nil {
		return command.Command{}, err
	}
	return c.Canceled(reason, actor, l.clock.Now())
}

// ApplyDiscount records a discount on an open or paying command and recomputes its
// total. The discount cannot exceed the sum of the command's live orders.
func (l CommandLifecycle) ApplyDiscount(
	c command.Command,
	current catalog.Entry,
	amount kernel.Money,
	description *string,
	orders []order.Order,
	actor kernel.ID,
) (command.Command, error) {
	status, err := resolveCommandStatus(c, current)
	if err != nil {
		return command.Command{}, err
	}
	if status != command.Open && status != command.Paying {
		return command.Command{}, errs.NewBusinessRuleViolationError(
			"discount can only be applied to an open or paying command")
	}
	if err = amount.Validate(); err != nil {
		return command.Command{}, err
	}

	subtotal := OrdersSubtotal(c, orders)
	if amount.GreaterThan(subtotal) {
		return command.Command{}, errs.NewBusinessRuleViolationError(
			"discount %s exceeds the command subtotal %s", amount.String(), subtotal.String())
	}

	discounted, err := c.WithDiscount(amount, description, l.clock.Now(), actor)
	if err != nil {
		return command.Command{}, err
	}
	return l.RecalculateTotal(discounted, orders, actor)
}

// RecalculateTotal sets the command total to the subtotal of its live orders minus the
// discount, floored at zero.
func (l CommandLifecycle) RecalculateTotal(
	c command.Command,
	orders []order.Order,
	actor kernel.ID,
) (command.Command, error) {
	if err := c.Validate(); err != nil {
		return command.Command{}, err
	}

	total := OrdersSubtotal(c, orders)
	if d := c.Discount(); d != nil {
		total = total.SubFloor(*d)
	}
	return c.WithTotal(total, l.clock.Now(), actor)
}

// OrdersSubtotal sums the frozen prices of the non-canceled, non-deleted orders of c.
func OrdersSubtotal(c command.Command, orders []order.Order) kernel.Money {
	subtotal := kernel.ZeroMoney()
	for _, o := range orders {
		if o.CommandID() == c.ID() && o.IsLive() {
			subtotal = subtotal.Add(o.Total())
		}
	}
	return subtotal
}

func unfinishedOrders(c command.Command, orders []order.Order) []order.Order {
	var unfinished []order.Order
	for _, o := range orders {
		if o.CommandID() == c.ID() && o.IsLive() && o.Status().IsUnfinished() {
			unfinished = append(unfinished, o)
		}
	}
	return unfinished
}

// resolveCommandStatus parses the catalog entry and checks it against the command.
func resolveCommandStatus(c command.Command, current catalog.Entry) (command.Status, error) {
	if err := c.Validate(); err != nil {
		return command.Unknown, err
	}
	status, err := command.StatusFromEntry(current)
	if err != nil {
		return command.Unknown, err
	}
	if status != c.Status() {
		return command.Unknown, errs.NewInconsistentCatalogError(
			"current status '%s' does not match command status '%s'", status.Key(), c.Status().Key())
	}
	return status, nil
}
