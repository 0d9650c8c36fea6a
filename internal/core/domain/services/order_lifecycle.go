package services

import (
	"strings"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/command"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/product"
	"restaurant/internal/pkg/errs"
)

// OrderLifecycle applies the business rules of order line items.
type OrderLifecycle struct {
	clock      kernel.Clock
	selections ModifierSelectionValidator
}

func NewOrderLifecycle(clock kernel.Clock) OrderLifecycle {
	if clock == nil {
		clock = kernel.SystemClock{}
	}
	return OrderLifecycle{clock: clock, selections: NewModifierSelectionValidator()}
}

// NewOrderRequest carries the caller's input for CreateOrder.
type NewOrderRequest struct {
	SelectedOptionIDs []kernel.ID
	Notes             *string
	Priority          int
	Actor             kernel.ID
}

// CreateOrder places an order for p on c. Closed and canceled commands accept no
// orders. The product price and the modifier delta are captured on the order.
func (l OrderLifecycle) CreateOrder(
	c command.Command,
	currentCommandStatus catalog.Entry,
	p product.Product,
	req NewOrderRequest,
) (order.Order, error) {
	status, err := resolveCommandStatus(c, currentCommandStatus)
	if err != nil {
		return order.Order{}, err
	}
	if status.IsTerminal() {
		return order.Order{}, errs.NewBusinessRuleViolationError("cannot add an order to a %s command", status.Key())
	}

	if err = p.Validate(); err != nil {
		return order.Order{}, err
	}
	if p.CompanyID() != c.CompanyID() {
		return order.Order{}, errs.NewBusinessRuleViolationError("product and command must belong to the same company")
	}

	delta, err := l.selections.Validate(p.ModifierGroups(), req.SelectedOptionIDs)
	if err != nil {
		return order.Order{}, err
	}

	return order.NewOrder(
		c.ID(),
		p.ID(),
		order.Pricing{BasePrice: p.Price(), ModifiersDelta: delta},
		req.SelectedOptionIDs,
		req.Notes,
		req.Priority,
		req.Actor,
		l.clock.Now(),
	)
}

// TransitionStatus moves the order along open -> in_preparation -> delivered.
func (l OrderLifecycle) TransitionStatus(
	o order.Order,
	current, requested catalog.Entry,
	actor kernel.ID,
) (order.Order, error) {
	if _, err := resolveOrderStatus(o, current); err != nil {
		return order.Order{}, err
	}
	to, err := order.StatusFromEntry(requested)
	if err != nil {
		return order.Order{}, err
	}
	return o.WithStatus(to, l.clock.Now(), actor)
}

// Cancel cancels an order with a reason. Orders of closed or canceled commands are final.
func (l OrderLifecycle) Cancel(
	o order.Order,
	current, commandStatus catalog.Entry,
	reason string,
	actor kernel.ID,
) (order.Order, error) {
	if _, err := resolveOrderStatus(o, current); err != nil {
		return order.Order{}, err
	}
	cs, err := command.StatusFromEntry(commandStatus)
	if err != nil {
		return order.Order{}, err
	}

	if strings.TrimSpace(reason) == "" {
		return order.Order{}, errs.NewBusinessRuleViolationError("cancellation reason is required")
	}
	if cs.IsTerminal() {
		return order.Order{}, errs.NewBusinessRuleViolationError("cannot cancel an order of a %s command", cs.Key())
	}

	return o.Canceled(reason, actor, l.clock.Now())
}

func resolveOrderStatus(o order.Order, current catalog.Entry) (order.Status, error) {
	if err := o.Validate(); err != nil {
		return order.Unknown, err
	}
	status, err := order.StatusFromEntry(current)
	if err != nil {
		return order.Unknown, err
	}
	if status != o.Status() {
		return order.Unknown, errs.NewInconsistentCatalogError(
			"current status '%s' does not match order status '%s'", status.Key(), o.Status().Key())
	}
	return status, nil
}
