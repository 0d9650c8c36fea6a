package services_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/command"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/product"
	"restaurant/internal/core/domain/model/table"

	"github.com/stretchr/testify/require"
)

var (
	openedAt = time.Date(2024, 5, 10, 19, 0, 0, 0, time.UTC)
	now      = openedAt.Add(90 * time.Minute)
	clock    = kernel.FixedClock(now)
)

const (
	companyID kernel.ID = 1
	tableID   kernel.ID = 10
	waiterID  kernel.ID = 7
)

func commandEntry(t *testing.T, s command.Status) catalog.Entry {
	t.Helper()
	e, err := catalog.RestoreEntry(kernel.ID(s), catalog.CommandStatus, s.Key(), s.Key(), "")
	require.NoError(t, err)
	return e
}

func orderEntry(t *testing.T, s order.Status) catalog.Entry {
	t.Helper()
	e, err := catalog.RestoreEntry(kernel.ID(10+s), catalog.OrderStatus, s.Key(), s.Key(), "")
	require.NoError(t, err)
	return e
}

// storedCommand returns a persisted command (id 100) in the given status.
func storedCommand(t *testing.T, status command.Status) command.Command {
	t.Helper()
	people, err := kernel.NewPeopleCount(2)
	require.NoError(t, err)
	audit, err := kernel.RestoreAudit(openedAt, openedAt, nil, waiterID, waiterID, 1)
	require.NoError(t, err)

	c, err := command.RestoreCommand(command.Snapshot{
		ID:        100,
		PublicID:  kernel.NewUUID(),
		Name:      "Mesa 10",
		People:    people,
		OpenedBy:  waiterID,
		Status:    status,
		TableID:   tableID,
		CompanyID: companyID,
		Audit:     audit,
	})
	require.NoError(t, err)
	return c
}

func storedOrder(t *testing.T, id, commandID kernel.ID, status order.Status, base string) order.Order {
	t.Helper()
	audit, err := kernel.RestoreAudit(openedAt, openedAt, nil, waiterID, waiterID, 1)
	require.NoError(t, err)

	o, err := order.RestoreOrder(order.Snapshot{
		ID:                         id,
		PublicID:                   kernel.NewUUID(),
		CommandID:                  commandID,
		ProductID:                  50,
		Status:                     status,
		BasePriceAtOrder:           kernel.MustMoney(base),
		TotalModifiersPriceAtOrder: kernel.ZeroAmount(),
		Audit:                      audit,
	})
	require.NoError(t, err)
	return o
}

func storedTable(t *testing.T, id, company kernel.ID) table.Table {
	t.Helper()
	tbl, err := table.RestoreTable(id, kernel.NewUUID(), company, int(id), "")
	require.NoError(t, err)
	return tbl
}

func option(t *testing.T, id kernel.ID, name, change string) product.ModifierOption {
	t.Helper()
	o, err := product.NewModifierOption(id, name, kernel.MustAmount(change), false, int(id))
	require.NoError(t, err)
	return o
}

func group(t *testing.T, id kernel.ID, name string, minSel, maxSel, displayOrder int, options ...product.ModifierOption) product.ModifierGroup {
	t.Helper()
	g, err := product.NewModifierGroup(id, name, minSel, maxSel, displayOrder, options)
	require.NoError(t, err)
	return g
}

// burger has a required "Pão" group (1..1) and an optional "Adicionais" group (0..3).
func burger(t *testing.T) product.Product {
	t.Helper()
	servings, err := kernel.NewServings(1)
	require.NoError(t, err)

	p, err := product.RestoreProduct(50, kernel.NewUUID(), companyID, "Burger", kernel.MustMoney("32.00"), servings,
		[]product.ModifierGroup{
			group(t, 2, "Adicionais", 0, 3, 2,
				option(t, 21, "Bacon", "6.00"),
				option(t, 22, "Queijo", "4.50"),
				option(t, 23, "Ovo", "3.00"),
				option(t, 24, "Cebola", "2.00"),
			),
			group(t, 1, "Pão", 1, 1, 1,
				option(t, 11, "Brioche", "0"),
				option(t, 12, "Sem glúten", "-1.50"),
			),
		})
	require.NoError(t, err)
	return p
}
