package kernel_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPeopleCount(t *testing.T) {
	for _, n := range []int{1, 4, 100} {
		p, err := kernel.NewPeopleCount(n)

		require.NoError(t, err)
		assert.Equal(t, n, p.Int())
	}

	for _, n := range []int{0, -1, 101} {
		_, err := kernel.NewPeopleCount(n)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "n=%d", n)
	}
}

func TestNewServings(t *testing.T) {
	s, err := kernel.NewServings(50)
	require.NoError(t, err)
	assert.Equal(t, 50, s.Int())

	_, err = kernel.NewServings(51)
	require.Error(t, err)
	assert.Equal(t, "value is out of range: servings is 51, min value is 1, max value is 50", err.Error())

	var zero kernel.Servings
	assert.ErrorIs(t, zero.Validate(), kernel.ErrServingsIsNotConstructed)
}
