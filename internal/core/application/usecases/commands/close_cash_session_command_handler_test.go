package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/cashregister"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func closeHandler(r *repos) commands.CloseCashSessionCommandHandler {
	return commands.NewCloseCashSessionCommandHandler(r.cashFactory(), services.NewClosingReconciler(clock), clock)
}

func TestCloseCashSessionCommandHandler_Handle_DefaultExpectation(t *testing.T) {
	// Given a session opened with 100.00 during which 260.00 of commands were closed
	ctx := t.Context()
	r := newRepos()
	session := storedSession(t, "100.00")

	cmd, err := commands.NewCloseCashSessionCommand(session.PublicID(), tender(t, "100.00", "200.00", "50.00", "10.00"), nil, nil, waiterID)
	require.NoError(t, err)

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.sessions.On("GetByPublicID", ctx, session.PublicID()).Return(session, nil).Once(),
		r.closings.On("GetBySession", ctx, session.ID()).
			Return(cashregister.Closing{}, notFound("cash register closing")).Once(),
		r.commands.On("SumClosedTotals", ctx, companyID, openedAt, now).Return(kernel.MustMoney("260.00"), nil).Once(),
		r.closings.On("Add", ctx, mock.Anything).Return(func(c cashregister.Closing) cashregister.Closing {
			stored, _ := c.WithID(1)
			return stored
		}, nil).Once(),
		r.sessions.On("Update", ctx, mock.MatchedBy(func(s cashregister.Session) bool {
			return !s.IsOpen() && s.EndedAt() != nil && s.EndedAt().Equal(now)
		})).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
	)

	// When the drawer is closed without an explicit expectation
	closing, err := closeHandler(r).Handle(ctx, cmd)

	// Then 360.00 was expected and counted
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(1), closing.ID())
	assert.Equal(t, "360.00", closing.FinalBalance().String())
	assert.Equal(t, "360.00", closing.FinalBalanceExpected().String())
	assert.Equal(t, "0.00", closing.FinalBalanceDifference().String())
	r.assertExpectations(t)
}

func TestCloseCashSessionCommandHandler_Handle_ExplicitExpectation(t *testing.T) {
	ctx := t.Context()
	r := newRepos()
	session := storedSession(t, "100.00")
	expected := kernel.MustMoney("420.00")
	notes := "short on cash"

	cmd, err := commands.NewCloseCashSessionCommand(session.PublicID(), tender(t, "150.00", "200.00", "50.00", "0"), &expected, &notes, waiterID)
	require.NoError(t, err)

	r.uow.On("Begin", ctx).Return(nil).Once()
	r.sessions.On("GetByPublicID", ctx, session.PublicID()).Return(session, nil).Once()
	r.closings.On("GetBySession", ctx, session.ID()).Return(cashregister.Closing{}, notFound("cash register closing")).Once()
	r.closings.On("Add", ctx, mock.Anything).Return(func(c cashregister.Closing) cashregister.Closing { return c }, nil).Once()
	r.sessions.On("Update", ctx, mock.Anything).Return(nil).Once()
	r.uow.On("Commit", ctx).Return(nil).Once()

	closing, err := closeHandler(r).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "-20.00", closing.FinalBalanceDifference().String())
	assert.Equal(t, "short on cash", *closing.Observations())
	r.commands.AssertNotCalled(t, "SumClosedTotals", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	r.assertExpectations(t)
}

func TestCloseCashSessionCommandHandler_Handle_AlreadyClosed(t *testing.T) {
	ctx := t.Context()
	r := newRepos()
	session := storedSession(t, "100.00")

	cmd, err := commands.NewCloseCashSessionCommand(session.PublicID(), tender(t, "0", "0", "0", "0"), nil, nil, waiterID)
	require.NoError(t, err)

	r.uow.On("Begin", ctx).Return(nil).Once()
	r.sessions.On("GetByPublicID", ctx, session.PublicID()).Return(session, nil).Once()
	r.closings.On("GetBySession", ctx, session.ID()).Return(cashregister.Closing{}, nil).Once()

	_, err = closeHandler(r).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	assert.Equal(t, "cash register session already has a closing", err.Error())
	r.closings.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	r.assertExpectations(t)
}
