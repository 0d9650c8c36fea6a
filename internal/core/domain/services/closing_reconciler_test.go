package services_test

import (
	"testing"

	"restaurant/internal/core/domain/model/cashregister"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSession(t *testing.T) cashregister.Session {
	t.Helper()
	s, err := cashregister.NewSession(companyID, waiterID, kernel.MustMoney("100.00"), openedAt)
	require.NoError(t, err)
	s, err = s.WithID(77)
	require.NoError(t, err)
	return s
}

func TestClosingReconciler_ComputeClosing(t *testing.T) {
	reconciler := services.NewClosingReconciler(clock)
	counted, err := cashregister.NewTender(
		kernel.MustMoney("100"), kernel.MustMoney("200"), kernel.MustMoney("50"), kernel.MustMoney("10"))
	require.NoError(t, err)

	tests := []struct {
		expected   string
		difference string
	}{
		{expected: "360.00", difference: "0.00"},
		{expected: "350.00", difference: "10.00"},
		{expected: "365.25", difference: "-5.25"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			closing, err := reconciler.ComputeClosing(openSession(t), counted, kernel.MustMoney(tt.expected), nil, waiterID)

			require.NoError(t, err)
			assert.Equal(t, kernel.ID(77), closing.SessionID())
			assert.Equal(t, "360.00", closing.FinalBalance().String())
			assert.Equal(t, tt.expected, closing.FinalBalanceExpected().String())
			assert.Equal(t, tt.difference, closing.FinalBalanceDifference().String())
			assert.Equal(t, now, closing.Audit().CreatedAt())
		})
	}

	t.Run("closed session", func(t *testing.T) {
		closed, err := openSession(t).Close(now, waiterID)
		require.NoError(t, err)

		_, err = reconciler.ComputeClosing(closed, counted, kernel.MustMoney("360"), nil, waiterID)

		assert.EqualError(t, err, "cash register session is not open")
	})
}

func TestClosingReconciler_ExpectedBalance(t *testing.T) {
	reconciler := services.NewClosingReconciler(clock)

	expected := reconciler.ExpectedBalance(openSession(t), kernel.MustMoney("260.00"))

	assert.Equal(t, "360.00", expected.String())
}
