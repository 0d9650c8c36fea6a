package order

import (
	"fmt"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Open ──> InPreparation ──> Delivered
//	  │            │               │
//	  └────────────┴───────────────┴──> Canceled (explicit cancel with reason)
type Status int

const (
	Unknown Status = iota
	Open
	InPreparation
	Delivered
	Canceled
)

func getStatusKeys() map[Status]string {
	return map[Status]string{
		Unknown:       "unknown",
		Open:          "open",
		InPreparation: "in_preparation",
		Delivered:     "delivered",
		Canceled:      "canceled",
	}
}

func transitions() map[Status]Status {
	//nolint:exhaustive // only statuses with an outgoing edge
	return map[Status]Status{
		Open:          InPreparation,
		InPreparation: Delivered,
	}
}

func Statuses() []Status {
	return []Status{Open, InPreparation, Delivered, Canceled}
}

func ParseStatus(key string) (Status, error) {
	for _, s := range Statuses() {
		if s.Key() == key {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not an order status", key))
}

// StatusFromEntry resolves a catalog entry into a Status.
func StatusFromEntry(e catalog.Entry) (Status, error) {
	if err := e.Expect(catalog.OrderStatus); err != nil {
		return Unknown, err
	}
	s, err := ParseStatus(e.Key())
	if err != nil {
		return Unknown, errs.NewInconsistentCatalogError("unknown order status key '%s'", e.Key())
	}
	return s, nil
}

func (s Status) Key() string {
	if str, ok := getStatusKeys()[s]; ok {
		return str
	}
	return "unknown"
}

func (s Status) String() string {
	return s.Key()
}

func (s Status) Validate() error {
	if s <= Unknown || s > Canceled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// IsUnfinished reports whether the kitchen still has work to do on the order.
func (s Status) IsUnfinished() bool {
	return s == Open || s == InPreparation
}

// TransitionTo follows the status graph. Self transitions are never permitted.
func (s Status) TransitionTo(next Status) (Status, error) {
	if to, ok := transitions()[s]; ok && to == next && s != next {
		return next, nil
	}
	return Unknown, NewTransitionNotPermittedError(s, next)
}

// Deliver forces an unfinished order straight to Delivered.
func (s Status) Deliver() (Status, error) {
	if !s.IsUnfinished() {
		return Unknown, NewTransitionNotPermittedError(s, Delivered)
	}
	return Delivered, nil
}

// Cancel moves any non-canceled order to Canceled.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil || s == Canceled {
		return Unknown, NewTransitionNotPermittedError(s, Canceled)
	}
	return Canceled, nil
}

func NewTransitionNotPermittedError(from, to Status) error {
	return errs.NewBusinessRuleViolationError("status transition from '%s' to '%s' is not permitted", from.Key(), to.Key())
}
