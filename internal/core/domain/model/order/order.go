package order

import (
	"errors"
	"slices"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

const (
	MinPriority = 0
	MaxPriority = 10
)

var ErrOrderIsNotConstructed = errs.NewValueIsRequiredError("order must be created via NewOrder or RestoreOrder")

// Order is a line item of a command. Prices are captured when the order is placed and
// are not re-read from the product afterwards.
type Order struct { //nolint:recvcheck //using for validation
	id                         kernel.ID
	publicID                   kernel.UUID
	commandID                  kernel.ID
	productID                  kernel.ID
	status                     Status
	notes                      *string
	priority                   int
	basePriceAtOrder           kernel.Money
	totalModifiersPriceAtOrder kernel.Amount
	selectedOptionIDs          []kernel.ID
	cancellationReason         *string
	canceledBy                 *kernel.ID
	audit                      kernel.Audit
	guard                      guard.ConstructorGuard
}

// Snapshot is the flat form of an Order used to restore it from storage.
type Snapshot struct {
	ID                         kernel.ID
	PublicID                   kernel.UUID
	CommandID                  kernel.ID
	ProductID                  kernel.ID
	Status                     Status
	Notes                      *string
	Priority                   int
	BasePriceAtOrder           kernel.Money
	TotalModifiersPriceAtOrder kernel.Amount
	SelectedOptionIDs          []kernel.ID
	CancellationReason         *string
	CanceledBy                 *kernel.ID
	Audit                      kernel.Audit
}

// Pricing is the price snapshot taken when an order is placed.
type Pricing struct {
	BasePrice      kernel.Money
	ModifiersDelta kernel.Amount
}

// NewOrder places a new open order.
func NewOrder(
	commandID, productID kernel.ID,
	pricing Pricing,
	selectedOptionIDs []kernel.ID,
	notes *string,
	priority int,
	actor kernel.ID,
	now time.Time,
) (Order, error) {
	o := Order{
		publicID:          kernel.NewUUID(),
		status:            Open,
		notes:             copyString(notes),
		selectedOptionIDs: slices.Clone(selectedOptionIDs),
		guard:             guard.NewConstructorGuard(),
	}

	audit, auditErr := kernel.NewAudit(now, actor)

	if err := errors.Join(
		o.setCommandID(commandID),
		o.setProductID(productID),
		o.setPriority(priority),
		o.setPricing(pricing.BasePrice, pricing.ModifiersDelta),
		auditErr,
	); err != nil {
		return Order{}, err
	}

	o.audit = audit
	return o, nil
}

// RestoreOrder rebuilds a stored order.
func RestoreOrder(s Snapshot) (Order, error) {
	o := Order{
		id:                 s.ID,
		notes:              copyString(s.Notes),
		selectedOptionIDs:  slices.Clone(s.SelectedOptionIDs),
		cancellationReason: s.CancellationReason,
		canceledBy:         s.CanceledBy,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		kernel.RequireID("id", s.ID),
		s.PublicID.Validate(),
		o.setCommandID(s.CommandID),
		o.setProductID(s.ProductID),
		o.setStatus(s.Status),
		o.setPriority(s.Priority),
		o.setPricing(s.BasePriceAtOrder, s.TotalModifiersPriceAtOrder),
		s.Audit.Validate(),
	); err != nil {
		return Order{}, err
	}

	o.publicID = s.PublicID
	o.audit = s.Audit
	return o, nil
}

func (o Order) Validate() error {
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o Order) Snapshot() Snapshot {
	return Snapshot{
		ID:                         o.id,
		PublicID:                   o.publicID,
		CommandID:                  o.commandID,
		ProductID:                  o.productID,
		Status:                     o.status,
		Notes:                      copyString(o.notes),
		Priority:                   o.priority,
		BasePriceAtOrder:           o.basePriceAtOrder,
		TotalModifiersPriceAtOrder: o.totalModifiersPriceAtOrder,
		SelectedOptionIDs:          slices.Clone(o.selectedOptionIDs),
		CancellationReason:         o.cancellationReason,
		CanceledBy:                 o.canceledBy,
		Audit:                      o.audit,
	}
}

func (o Order) ID() kernel.ID {
	return o.id
}

func (o Order) PublicID() kernel.UUID {
	return o.publicID
}

func (o Order) CommandID() kernel.ID {
	return o.commandID
}

func (o Order) ProductID() kernel.ID {
	return o.productID
}

func (o Order) Status() Status {
	return o.status
}

// Notes returns nil when no notes were given; an empty note is returned as "".
func (o Order) Notes() *string {
	return copyString(o.notes)
}

func (o Order) Priority() int {
	return o.priority
}

func (o Order) BasePriceAtOrder() kernel.Money {
	return o.basePriceAtOrder
}

func (o Order) TotalModifiersPriceAtOrder() kernel.Amount {
	return o.totalModifiersPriceAtOrder
}

// Total is the frozen price of the line: base price plus modifier delta.
func (o Order) Total() kernel.Money {
	total, err := o.basePriceAtOrder.Plus(o.totalModifiersPriceAtOrder)
	if err != nil {
		return kernel.ZeroMoney()
	}
	return total
}

func (o Order) SelectedOptionIDs() []kernel.ID {
	return slices.Clone(o.selectedOptionIDs)
}

func (o Order) CancellationReason() *string {
	return o.cancellationReason
}

func (o Order) CanceledBy() *kernel.ID {
	return o.canceledBy
}

func (o Order) Audit() kernel.Audit {
	return o.audit
}

// IsLive reports whether the order counts towards the command total.
func (o Order) IsLive() bool {
	return o.status != Canceled && !o.audit.IsDeleted()
}

func (o Order) WithID(id kernel.ID) (Order, error) {
	if err := kernel.RequireID("id", id); err != nil {
		return Order{}, err
	}
	o.id = id
	return o, nil
}

// WithStatus moves the order along the status graph.
func (o Order) WithStatus(next Status, now time.Time, actor kernel.ID) (Order, error) {
	status, err := o.status.TransitionTo(next)
	if err != nil {
		return Order{}, err
	}
	o.status = status
	o.audit = o.audit.Touch(now, actor)
	return o, nil
}

// Delivered forces an unfinished order to Delivered.
func (o Order) Delivered(now time.Time, actor kernel.ID) (Order, error) {
	status, err := o.status.Deliver()
	if err != nil {
		return Order{}, err
	}
	o.status = status
	o.audit = o.audit.Touch(now, actor)
	return o, nil
}

// Canceled cancels the order, recording why and by whom.
func (o Order) Canceled(reason string, actor kernel.ID, now time.Time) (Order, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return Order{}, errs.NewBusinessRuleViolationError("cancellation reason is required")
	}
	if err := kernel.RequireID("canceledBy", actor); err != nil {
		return Order{}, err
	}

	status, err := o.status.Cancel()
	if err != nil {
		return Order{}, err
	}

	o.status = status
	o.cancellationReason = &reason
	o.canceledBy = &actor
	o.audit = o.audit.Touch(now, actor)
	return o, nil
}

// Deleted soft deletes the order.
func (o Order) Deleted(now time.Time, actor kernel.ID) Order {
	o.audit = o.audit.SoftDelete(now, actor)
	return o
}

func (o *Order) setCommandID(id kernel.ID) error {
	if err := kernel.RequireID("commandID", id); err != nil {
		return err
	}
	o.commandID = id
	return nil
}

func (o *Order) setProductID(id kernel.ID) error {
	if err := kernel.RequireID("productID", id); err != nil {
		return err
	}
	o.productID = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPriority(priority int) error {
	if priority < MinPriority || priority > MaxPriority {
		return errs.NewValueIsOutOfRangeError("priority", priority, MinPriority, MaxPriority)
	}
	o.priority = priority
	return nil
}

func (o *Order) setPricing(base kernel.Money, delta kernel.Amount) error {
	if err := errors.Join(base.Validate(), delta.Validate()); err != nil {
		return err
	}
	if _, err := base.Plus(delta); err != nil {
		return errs.NewBusinessRuleViolationError(
			"order total cannot be negative: base price %s, modifiers %s", base.String(), delta.String())
	}
	o.basePriceAtOrder = base
	o.totalModifiersPriceAtOrder = delta
	return nil
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
