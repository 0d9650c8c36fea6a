package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/cashregister"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrCloseCashSessionCommandIsNotConstructed = errors.New(
	"CloseCashSessionCommand must be created via NewCloseCashSessionCommand constructor",
)

// CloseCashSessionCommand reconciles a session against the counted tender. When
// expected is nil the handler expects the opening float plus the totals of the
// commands the company closed during the session.
type CloseCashSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID    kernel.UUID
	counted      cashregister.Tender
	expected     *kernel.Money
	observations *string
	actor        kernel.ID

	guard guard.ConstructorGuard
}

func NewCloseCashSessionCommand(
	sessionID kernel.UUID,
	counted cashregister.Tender,
	expected *kernel.Money,
	observations *string,
	actor kernel.ID,
) (CloseCashSessionCommand, error) {
	var expectedErr error
	if expected != nil {
		expectedErr = expected.Validate()
	}

	if err := errors.Join(
		sessionID.Validate(),
		counted.Validate(),
		expectedErr,
		kernel.RequireID("actor", actor),
	); err != nil {
		return CloseCashSessionCommand{}, err
	}

	return CloseCashSessionCommand{
		sessionID:    sessionID,
		counted:      counted,
		expected:     expected,
		observations: observations,
		actor:        actor,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CloseCashSessionCommand) Validate() error {
	return c.guard.Validate(ErrCloseCashSessionCommandIsNotConstructed)
}

func (c CloseCashSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c CloseCashSessionCommand) Counted() cashregister.Tender {
	return c.counted
}

func (c CloseCashSessionCommand) Expected() *kernel.Money {
	return c.expected
}

func (c CloseCashSessionCommand) Observations() *string {
	return c.observations
}

func (c CloseCashSessionCommand) Actor() kernel.ID {
	return c.actor
}
