package services_test

import (
	"testing"

	"restaurant/internal/core/domain/model/command"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_CloseAndReopenCommand(t *testing.T) {
	commands := services.NewCommandLifecycle(clock)
	orders := services.NewOrderLifecycle(clock)
	p := burger(t)
	req := services.NewOrderRequest{SelectedOptionIDs: []kernel.ID{11}, Actor: waiterID}

	// Given an open command with two orders
	c := storedCommand(t, command.Open)
	first, err := orders.CreateOrder(c, commandEntry(t, command.Open), p, req)
	require.NoError(t, err)
	first, err = first.WithID(1)
	require.NoError(t, err)
	second, err := orders.CreateOrder(c, commandEntry(t, command.Open), p, req)
	require.NoError(t, err)
	second, err = second.WithID(2)
	require.NoError(t, err)

	// When it goes open -> paying -> closed with closeAllOrders
	paying, err := commands.TransitionStatus(c, commandEntry(t, command.Open), commandEntry(t, command.Paying), false, nil, waiterID)
	require.NoError(t, err)
	closed, err := commands.TransitionStatus(paying.Command, commandEntry(t, command.Paying), commandEntry(t, command.Closed),
		true, []order.Order{first, second}, waiterID)
	require.NoError(t, err)

	// Then every order is terminal and no order can be added
	require.Len(t, closed.Orders, 2)
	for _, o := range closed.Orders {
		assert.False(t, o.Status().IsUnfinished())
	}
	_, err = orders.CreateOrder(closed.Command, commandEntry(t, command.Closed), p, req)
	assert.EqualError(t, err, "cannot add an order to a closed command")

	// And reopening works once
	reopened, err := commands.TransitionStatus(closed.Command, commandEntry(t, command.Closed), commandEntry(t, command.Open), false, nil, waiterID)
	require.NoError(t, err)
	assert.Equal(t, command.Open, reopened.Command.Status())
	assert.Equal(t, int64(4), reopened.Command.Audit().Version())

	_, err = commands.TransitionStatus(reopened.Command, commandEntry(t, command.Open), commandEntry(t, command.Open), false, nil, waiterID)
	assert.EqualError(t, err, "status transition from 'open' to 'open' is not permitted")
}
