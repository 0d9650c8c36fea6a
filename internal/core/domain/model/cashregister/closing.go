package cashregister

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrTenderIsNotConstructed  = errs.NewValueIsRequiredError("tender must be created via NewTender")
	ErrClosingIsNotConstructed = errs.NewValueIsRequiredError("closing must be created via NewClosing or RestoreClosing")
)

// Tender is the money counted at the end of a shift, split by payment method.
type Tender struct {
	cash   kernel.Money
	card   kernel.Money
	pix    kernel.Money
	others kernel.Money
	guard  guard.ConstructorGuard
}

func NewTender(cash, card, pix, others kernel.Money) (Tender, error) {
	if err := errors.Join(
		cash.Validate(),
		card.Validate(),
		pix.Validate(),
		others.Validate(),
	); err != nil {
		return Tender{}, err
	}

	return Tender{cash: cash, card: card, pix: pix, others: others, guard: guard.NewConstructorGuard()}, nil
}

func (t Tender) Validate() error {
	return t.guard.Validate(ErrTenderIsNotConstructed)
}

func (t Tender) Cash() kernel.Money {
	return t.cash
}

func (t Tender) Card() kernel.Money {
	return t.card
}

func (t Tender) Pix() kernel.Money {
	return t.pix
}

func (t Tender) Others() kernel.Money {
	return t.others
}

// Total is the final balance: cash + card + pix + others.
func (t Tender) Total() kernel.Money {
	return kernel.SumMoney(t.cash, t.card, t.pix, t.others)
}

// Closing is the reconciliation recorded for a session. A session has at most one.
type Closing struct {
	id           kernel.ID
	sessionID    kernel.ID
	tender       Tender
	finalBalance kernel.Money
	expected     kernel.Money
	difference   kernel.Amount
	observations *string
	audit        kernel.Audit
	guard        guard.ConstructorGuard
}

// NewClosing records a reconciliation; the balances are derived from tender and expected.
func NewClosing(
	sessionID kernel.ID,
	tender Tender,
	expected kernel.Money,
	observations *string,
	actor kernel.ID,
	now time.Time,
) (Closing, error) {
	audit, auditErr := kernel.NewAudit(now, actor)

	if err := errors.Join(
		kernel.RequireID("sessionID", sessionID),
		tender.Validate(),
		expected.Validate(),
		auditErr,
	); err != nil {
		return Closing{}, err
	}

	finalBalance := tender.Total()
	return Closing{
		sessionID:    sessionID,
		tender:       tender,
		finalBalance: finalBalance,
		expected:     expected,
		difference:   finalBalance.Sub(expected),
		observations: observations,
		audit:        audit,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreClosing rebuilds a stored closing and checks that its balances add up.
func RestoreClosing(
	id, sessionID kernel.ID,
	tender Tender,
	finalBalance, expected kernel.Money,
	difference kernel.Amount,
	observations *string,
	audit kernel.Audit,
) (Closing, error) {
	if err := errors.Join(
		kernel.RequireID("id", id),
		kernel.RequireID("sessionID", sessionID),
		tender.Validate(),
		finalBalance.Validate(),
		expected.Validate(),
		difference.Validate(),
		audit.Validate(),
	); err != nil {
		return Closing{}, err
	}

	if !tender.Total().Equal(finalBalance) {
		return Closing{}, errs.NewValueIsInvalidErrorWithCause("finalBalance",
			fmt.Errorf("%s does not match counted tender %s", finalBalance, tender.Total()))
	}
	if !finalBalance.Sub(expected).Equal(difference) {
		return Closing{}, errs.NewValueIsInvalidErrorWithCause("finalBalanceDifference",
			fmt.Errorf("%s does not match %s - %s", difference, finalBalance, expected))
	}

	return Closing{
		id:           id,
		sessionID:    sessionID,
		tender:       tender,
		finalBalance: finalBalance,
		expected:     expected,
		difference:   difference,
		observations: observations,
		audit:        audit,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c Closing) Validate() error {
	return c.guard.Validate(ErrClosingIsNotConstructed)
}

func (c Closing) ID() kernel.ID {
	return c.id
}

func (c Closing) SessionID() kernel.ID {
	return c.sessionID
}

func (c Closing) Tender() Tender {
	return c.tender
}

func (c Closing) FinalBalance() kernel.Money {
	return c.finalBalance
}

func (c Closing) FinalBalanceExpected() kernel.Money {
	return c.expected
}

func (c Closing) FinalBalanceDifference() kernel.Amount {
	return c.difference
}

func (c Closing) Observations() *string {
	return c.observations
}

func (c Closing) Audit() kernel.Audit {
	return c.audit
}

func (c Closing) WithID(id kernel.ID) (Closing, error) {
	if err := kernel.RequireID("id", id); err != nil {
		return Closing{}, err
	}
	c.id = id
	return c, nil
}
