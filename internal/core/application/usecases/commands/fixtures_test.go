package commands_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/cashregister"
	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/command"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/product"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
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
	commandID kernel.ID = 100
	waiterID  kernel.ID = 7
)

func commandLifecycle() services.CommandLifecycle {
	return services.NewCommandLifecycle(clock)
}

func orderLifecycle() services.OrderLifecycle {
	return services.NewOrderLifecycle(clock)
}

// withCatalog answers every catalog lookup the way the seeded status table would.
func (r *repos) withCatalog(t *testing.T) {
	t.Helper()
	for _, s := range command.Statuses() {
		e, err := catalog.RestoreEntry(kernel.ID(s), catalog.CommandStatus, s.Key(), s.Key(), "")
		require.NoError(t, err)
		r.statuses.On("GetByKey", mock.Anything, catalog.CommandStatus, s.Key()).Return(e, nil).Maybe()
	}
	for _, s := range order.Statuses() {
		e, err := catalog.RestoreEntry(kernel.ID(10+s), catalog.OrderStatus, s.Key(), s.Key(), "")
		require.NoError(t, err)
		r.statuses.On("GetByKey", mock.Anything, catalog.OrderStatus, s.Key()).Return(e, nil).Maybe()
	}
	r.statuses.On("GetByKey", mock.Anything, mock.Anything, mock.Anything).
		Return(catalog.Entry{}, errs.NewObjectNotFoundError("status", "unknown")).Maybe()
}

func audit(t *testing.T) kernel.Audit {
	t.Helper()
	a, err := kernel.RestoreAudit(openedAt, openedAt, nil, waiterID, waiterID, 1)
	require.NoError(t, err)
	return a
}

// storedCommand returns a persisted command (id 100, table 10, company 1).
func storedCommand(t *testing.T, status command.Status) command.Command {
	t.Helper()
	people, err := kernel.NewPeopleCount(2)
	require.NoError(t, err)

	c, err := command.RestoreCommand(command.Snapshot{
		ID:        commandID,
		PublicID:  kernel.NewUUID(),
		Name:      "Mesa 10",
		People:    people,
		OpenedBy:  waiterID,
		Status:    status,
		TableID:   tableID,
		CompanyID: companyID,
		Audit:     audit(t),
	})
	require.NoError(t, err)
	return c
}

func storedOrder(t *testing.T, id kernel.ID, status order.Status, base string) order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.Snapshot{
		ID:                         id,
		PublicID:                   kernel.NewUUID(),
		CommandID:                  commandID,
		ProductID:                  50,
		Status:                     status,
		BasePriceAtOrder:           kernel.MustMoney(base),
		TotalModifiersPriceAtOrder: kernel.ZeroAmount(),
		Audit:                      audit(t),
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

// burger costs 32.00, requires one bread (11 or 12) and takes up to three extras.
func burger(t *testing.T) product.Product {
	t.Helper()
	opt := func(id kernel.ID, name, change string) product.ModifierOption {
		o, err := product.NewModifierOption(id, name, kernel.MustAmount(change), false, int(id))
		require.NoError(t, err)
		return o
	}
	bread, err := product.NewModifierGroup(1, "Pão", 1, 1, 1, []product.ModifierOption{
		opt(11, "Brioche", "0"), opt(12, "Sem glúten", "-1.50"),
	})
	require.NoError(t, err)
	extras, err := product.NewModifierGroup(2, "Adicionais", 0, 3, 2, []product.ModifierOption{
		opt(21, "Bacon", "6.00"), opt(22, "Queijo", "4.50"), opt(23, "Ovo", "3.00"), opt(24, "Cebola", "2.00"),
	})
	require.NoError(t, err)
	servings, err := kernel.NewServings(1)
	require.NoError(t, err)

	p, err := product.RestoreProduct(50, kernel.NewUUID(), companyID, "Burger", kernel.MustMoney("32.00"), servings,
		[]product.ModifierGroup{bread, extras})
	require.NoError(t, err)
	return p
}

func storedSession(t *testing.T, initial string) cashregister.Session {
	t.Helper()
	s, err := cashregister.RestoreSession(cashregister.SessionSnapshot{
		ID:           300,
		PublicID:     kernel.NewUUID(),
		CompanyID:    companyID,
		OpenedBy:     waiterID,
		Status:       cashregister.SessionOpen,
		InitialValue: kernel.MustMoney(initial),
		StartedAt:    openedAt,
		Audit:        audit(t),
	})
	require.NoError(t, err)
	return s
}

func tender(t *testing.T, cash, card, pix, others string) cashregister.Tender {
	t.Helper()
	tt, err := cashregister.NewTender(
		kernel.MustMoney(cash), kernel.MustMoney(card), kernel.MustMoney(pix), kernel.MustMoney(others))
	require.NoError(t, err)
	return tt
}

func versionConflict() error {
	return errs.NewVersionConflictError("command", commandID, 1)
}

func notFound(entity string) error {
	return errs.NewObjectNotFoundError(entity, "x")
}
