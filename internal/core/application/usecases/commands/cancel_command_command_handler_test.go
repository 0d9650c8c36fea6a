package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/command"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelCommandCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	r := newRepos()
	r.withCatalog(t)

	c := storedCommand(t, command.Paying)
	cmd, err := commands.NewCancelCommandCommand(c.PublicID(), "customer left", waiterID)
	require.NoError(t, err)

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.commands.On("GetByPublicID", ctx, c.PublicID()).Return(c, nil).Once(),
		r.commands.On("Update", ctx, mock.MatchedBy(func(canceled command.Command) bool {
			return canceled.Status() == command.Canceled &&
				*canceled.CancellationReason() == "customer left" &&
				*canceled.CanceledBy() == waiterID
		})).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
	)

	err = commands.NewCancelCommandCommandHandler(r.commandFactory(), commandLifecycle()).Handle(ctx, cmd)

	require.NoError(t, err)
	r.assertExpectations(t)
}

func TestCancelCommandCommandHandler_Handle_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		status  command.Status
		reason  string
		wantErr string
	}{
		{name: "blank reason", status: command.Open, reason: "  ", wantErr: "cancellation reason is required"},
		{
			name: "closed command", status: command.Closed, reason: "oops",
			wantErr: "status transition from 'closed' to 'canceled' is not permitted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			r := newRepos()
			r.withCatalog(t)

			c := storedCommand(t, tt.status)
			cmd, err := commands.NewCancelCommandCommand(c.PublicID(), tt.reason, waiterID)
			require.NoError(t, err)

			r.uow.On("Begin", ctx).Return(nil).Once()
			r.commands.On("GetByPublicID", ctx, c.PublicID()).Return(c, nil).Once()

			err = commands.NewCancelCommandCommandHandler(r.commandFactory(), commandLifecycle()).Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
			assert.Equal(t, tt.wantErr, err.Error())
			r.commands.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			r.assertExpectations(t)
		})
	}
}
