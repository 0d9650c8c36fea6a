package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/command"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	r := newRepos()

	c := storedCommand(t, command.Paying)
	target := storedOrder(t, 1, order.Open, "18.00")
	siblings := []order.Order{target, storedOrder(t, 2, order.Open, "4.00")}

	cmd, err := commands.NewDeleteOrderCommand(target.PublicID(), waiterID)
	require.NoError(t, err)

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.orders.On("GetByPublicID", ctx, target.PublicID()).Return(target, nil).Once(),
		r.commands.On("Get", ctx, commandID).Return(c, nil).Once(),
		r.orders.On("ListByCommand", ctx, commandID).Return(siblings, nil).Once(),
		r.orders.On("Update", ctx, mock.MatchedBy(func(o order.Order) bool {
			return o.Audit().IsDeleted() && o.Audit().DeletedAt().Equal(now)
		})).Return(nil).Once(),
		r.commands.On("Update", ctx, mock.MatchedBy(func(updated command.Command) bool {
			return updated.Total() != nil && updated.Total().String() == "4.00"
		})).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
	)

	err = commands.NewDeleteOrderCommandHandler(r.orderFactory(), commandLifecycle(), clock).Handle(ctx, cmd)

	require.NoError(t, err)
	r.assertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_ClosedCommand(t *testing.T) {
	ctx := t.Context()
	r := newRepos()

	c := storedCommand(t, command.Closed)
	target := storedOrder(t, 1, order.Delivered, "18.00")
	cmd, err := commands.NewDeleteOrderCommand(target.PublicID(), waiterID)
	require.NoError(t, err)

	r.uow.On("Begin", ctx).Return(nil).Once()
	r.orders.On("GetByPublicID", ctx, target.PublicID()).Return(target, nil).Once()
	r.commands.On("Get", ctx, commandID).Return(c, nil).Once()

	err = commands.NewDeleteOrderCommandHandler(r.orderFactory(), commandLifecycle(), clock).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	assert.Equal(t, "cannot delete an order of a closed command", err.Error())
	r.assertExpectations(t)
}
