package command

import (
	"fmt"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/pkg/errs"
)

// Status is the lifecycle state of a command.
//
//	Open ──> Paying ──> Closed
//	 ^  \       \          │
//	 │   └───────┴──> Canceled
//	 └─────────────────────┘ (reopen)
type Status int

const (
	Unknown Status = iota
	Open
	Paying
	Closed
	Canceled
)

func getStatusKeys() map[Status]string {
	return map[Status]string{
		Unknown:  "unknown",
		Open:     "open",
		Paying:   "paying",
		Closed:   "closed",
		Canceled: "canceled",
	}
}

// transitions is the graph of explicit status changes. Cancel is handled separately.
func transitions() map[Status]Status {
	//nolint:exhaustive // only statuses with an outgoing edge
	return map[Status]Status{
		Open:   Paying,
		Paying: Closed,
		Closed: Open,
	}
}

// Statuses returns every valid status in declaration order.
func Statuses() []Status {
	return []Status{Open, Paying, Closed, Canceled}
}

// ParseStatus maps a catalog key to a Status.
func ParseStatus(key string) (Status, error) {
	for _, s := range Statuses() {
		if s.Key() == key {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a command status", key))
}

// StatusFromEntry resolves a catalog entry into a Status. Any mismatch is a catalog
// inconsistency, not a caller error.
func StatusFromEntry(e catalog.Entry) (Status, error) {
	if err := e.Expect(catalog.CommandStatus); err != nil {
		return Unknown, err
	}
	s, err := ParseStatus(e.Key())
	if err != nil {
		return Unknown, errs.NewInconsistentCatalogError("unknown command status key '%s'", e.Key())
	}
	return s, nil
}

// Key is the catalog key of the status.
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
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid command status", s))
	}
	return nil
}

// IsTerminal reports whether no further orders can be attached to the command.
func (s Status) IsTerminal() bool {
	return s == Closed || s == Canceled
}

// TransitionTo follows the status graph. Self transitions are never permitted.
func (s Status) TransitionTo(next Status) (Status, error) {
	if to, ok := transitions()[s]; ok && to == next && s != next {
		return next, nil
	}
	return Unknown, NewTransitionNotPermittedError(s, next)
}

// Cancel moves an open or paying command to Canceled.
func (s Status) Cancel() (Status, error) {
	if s != Open && s != Paying {
		return Unknown, NewTransitionNotPermittedError(s, Canceled)
	}
	return Canceled, nil
}

// NewTransitionNotPermittedError describes a rejected move between two statuses.
func NewTransitionNotPermittedError(from, to Status) error {
	return errs.NewBusinessRuleViolationError("status transition from '%s' to '%s' is not permitted", from.Key(), to.Key())
}
