package services

import (
	"restaurant/internal/core/domain/model/cashregister"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ClosingReconciler computes the closing of a cash register session. It does not check
// whether the session already has a closing; callers do that against storage.
type ClosingReconciler struct {
	clock kernel.Clock
}

func NewClosingReconciler(clock kernel.Clock) ClosingReconciler {
	if clock == nil {
		clock = kernel.SystemClock{}
	}
	return ClosingReconciler{clock: clock}
}

// ComputeClosing sums the counted tender into the final balance and records its
// difference from expected (positive when the drawer holds more than expected).
func (r ClosingReconciler) ComputeClosing(
	session cashregister.Session,
	counted cashregister.Tender,
	expected kernel.Money,
	observations *string,
	actor kernel.ID,
) (cashregister.Closing, error) {
	if err := session.Validate(); err != nil {
		return cashregister.Closing{}, err
	}
	if !session.IsOpen() {
		return cashregister.Closing{}, errs.NewBusinessRuleViolationError("cash register session is not open")
	}

	return cashregister.NewClosing(session.ID(), counted, expected, observations, actor, r.clock.Now())
}

// ExpectedBalance is the default expectation: the opening float plus reconciled sales.
func (r ClosingReconciler) ExpectedBalance(session cashregister.Session, reconciledSales kernel.Money) kernel.Money {
	return session.InitialValue().Add(reconciledSales)
}
