package catalog_test

import (
	"testing"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	t.Run("should create entry", func(t *testing.T) {
		e, err := catalog.NewEntry(catalog.CommandStatus, " open ", "Open", "Command accepts orders")

		require.NoError(t, err)
		assert.Equal(t, "open", e.Key())
		assert.Equal(t, "Open", e.Name())
		assert.Equal(t, catalog.CommandStatus, e.Kind())
		assert.True(t, e.ID().IsZero())
	})

	t.Run("should join kind and key errors", func(t *testing.T) {
		_, err := catalog.NewEntry(catalog.UnknownKind, "  ", "", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("restore requires id", func(t *testing.T) {
		_, err := catalog.RestoreEntry(0, catalog.OrderStatus, "open", "Open", "")

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestEntry_Expect(t *testing.T) {
	entry, err := catalog.RestoreEntry(3, catalog.OrderStatus, "delivered", "Delivered", "")
	require.NoError(t, err)

	assert.NoError(t, entry.Expect(catalog.OrderStatus))

	err = entry.Expect(catalog.CommandStatus)
	require.ErrorIs(t, err, errs.ErrInconsistentCatalog)
	assert.Contains(t, err.Error(), "entry 'delivered' is of kind order_status, expected command_status")

	var missing catalog.Entry
	assert.ErrorIs(t, missing.Expect(catalog.CommandStatus), errs.ErrInconsistentCatalog)
}

func TestParseKind(t *testing.T) {
	for _, k := range catalog.Kinds() {
		parsed, err := catalog.ParseKind(k.String())

		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	_, err := catalog.ParseKind("payment_status")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
