package order_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 10, 20, 0, 0, 0, time.UTC)

func pricing(base, delta string) order.Pricing {
	return order.Pricing{BasePrice: kernel.MustMoney(base), ModifiersDelta: kernel.MustAmount(delta)}
}

func TestNewOrder(t *testing.T) {
	t.Run("should snapshot prices and start open", func(t *testing.T) {
		o, err := order.NewOrder(1, 2, pricing("30.00", "-2.50"), []kernel.ID{5, 6}, nil, 3, 7, now)

		require.NoError(t, err)
		assert.Equal(t, order.Open, o.Status())
		assert.Equal(t, "30.00", o.BasePriceAtOrder().String())
		assert.Equal(t, "-2.50", o.TotalModifiersPriceAtOrder().String())
		assert.Equal(t, "27.50", o.Total().String())
		assert.Equal(t, []kernel.ID{5, 6}, o.SelectedOptionIDs())
		assert.Nil(t, o.Notes())
	})

	t.Run("should keep empty notes distinct from nil", func(t *testing.T) {
		empty := ""

		o, err := order.NewOrder(1, 2, pricing("10", "0"), nil, &empty, 0, 7, now)

		require.NoError(t, err)
		require.NotNil(t, o.Notes())
		assert.Empty(t, *o.Notes())
	})

	t.Run("should not alias caller notes", func(t *testing.T) {
		notes := "no onions"
		o, err := order.NewOrder(1, 2, pricing("10", "0"), nil, &notes, 0, 7, now)
		require.NoError(t, err)

		notes = "extra onions"

		assert.Equal(t, "no onions", *o.Notes())
	})

	t.Run("should reject priority out of range", func(t *testing.T) {
		_, err := order.NewOrder(1, 2, pricing("10", "0"), nil, nil, 11, 7, now)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject negative total", func(t *testing.T) {
		_, err := order.NewOrder(1, 2, pricing("1.00", "-1.01"), nil, nil, 0, 7, now)

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		assert.Contains(t, err.Error(), "order total cannot be negative")
	})
}

func TestOrder_Canceled(t *testing.T) {
	o, err := order.NewOrder(1, 2, pricing("10", "0"), nil, nil, 0, 7, now)
	require.NoError(t, err)

	_, err = o.Canceled("", 7, now)
	assert.EqualError(t, err, "cancellation reason is required")

	canceled, err := o.Canceled("wrong table", 9, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, order.Canceled, canceled.Status())
	assert.False(t, canceled.IsLive())
	assert.Equal(t, kernel.ID(9), *canceled.CanceledBy())
	assert.Equal(t, int64(2), canceled.Audit().Version())

	_, err = canceled.Canceled("again", 9, now)
	assert.EqualError(t, err, "status transition from 'canceled' to 'canceled' is not permitted")
}

func TestOrder_DeliveredAndDeleted(t *testing.T) {
	o, err := order.NewOrder(1, 2, pricing("10", "0"), nil, nil, 0, 7, now)
	require.NoError(t, err)

	delivered, err := o.Delivered(now, 7)
	require.NoError(t, err)
	assert.Equal(t, order.Delivered, delivered.Status())

	deleted := delivered.Deleted(now, 7)
	assert.False(t, deleted.IsLive())
	assert.True(t, deleted.Audit().IsDeleted())
}
