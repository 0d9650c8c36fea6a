package cashregister_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/cashregister"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)

func tender(t *testing.T, cash, card, pix, others string) cashregister.Tender {
	t.Helper()
	tn, err := cashregister.NewTender(
		kernel.MustMoney(cash), kernel.MustMoney(card), kernel.MustMoney(pix), kernel.MustMoney(others))
	require.NoError(t, err)
	return tn
}

func TestSession_Close(t *testing.T) {
	s, err := cashregister.NewSession(1, 2, kernel.MustMoney("150.00"), now)
	require.NoError(t, err)
	assert.True(t, s.IsOpen())
	assert.Equal(t, now, s.StartedAt())

	// When
	closed, err := s.Close(now.Add(8*time.Hour), 3)

	// Then
	require.NoError(t, err)
	assert.Equal(t, cashregister.SessionClosed, closed.Status())
	require.NotNil(t, closed.EndedAt())
	assert.Equal(t, now.Add(8*time.Hour), *closed.EndedAt())
	assert.Equal(t, kernel.ID(3), *closed.ClosedBy())
	assert.True(t, s.IsOpen(), "original value is untouched")

	_, err = closed.Close(now, 3)
	assert.EqualError(t, err, "cash register session is not open")
}

func TestNewTender_RejectsUnconstructedMoney(t *testing.T) {
	_, err := cashregister.NewTender(kernel.MustMoney("1"), kernel.Money{}, kernel.MustMoney("1"), kernel.MustMoney("1"))

	assert.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
}

func TestNewClosing_ComputesBalances(t *testing.T) {
	c, err := cashregister.NewClosing(9, tender(t, "100", "200", "50", "10"), kernel.MustMoney("350.00"), nil, 3, now)

	require.NoError(t, err)
	assert.Equal(t, "360.00", c.FinalBalance().String())
	assert.Equal(t, "10.00", c.FinalBalanceDifference().String())
}

func TestRestoreClosing_ChecksArithmetic(t *testing.T) {
	audit, err := kernel.RestoreAudit(now, now, nil, 3, 3, 1)
	require.NoError(t, err)
	tn := tender(t, "100", "200", "50", "10")

	_, err = cashregister.RestoreClosing(1, 9, tn, kernel.MustMoney("360"), kernel.MustMoney("350"),
		kernel.MustAmount("10"), nil, audit)
	require.NoError(t, err)

	_, err = cashregister.RestoreClosing(1, 9, tn, kernel.MustMoney("361"), kernel.MustMoney("350"),
		kernel.MustAmount("11"), nil, audit)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = cashregister.RestoreClosing(1, 9, tn, kernel.MustMoney("360"), kernel.MustMoney("350"),
		kernel.MustAmount("0"), nil, audit)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
