package commands_test

import (
	"context"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/cashregister"
	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/command"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/product"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockStatusRepository struct{ mock.Mock }

func (m *MockStatusRepository) Get(ctx context.Context, id kernel.ID) (catalog.Entry, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Entry), args.Error(1)
}

func (m *MockStatusRepository) GetByKey(ctx context.Context, kind catalog.Kind, key string) (catalog.Entry, error) {
	args := m.Called(ctx, kind, key)
	return args.Get(0).(catalog.Entry), args.Error(1)
}

func (m *MockStatusRepository) List(ctx context.Context, kind catalog.Kind) ([]catalog.Entry, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Entry), args.Error(1)
}

type MockTableRepository struct{ mock.Mock }

func (m *MockTableRepository) Add(ctx context.Context, t table.Table) (table.Table, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(table.Table), args.Error(1)
}

func (m *MockTableRepository) Get(ctx context.Context, id kernel.ID) (table.Table, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(table.Table), args.Error(1)
}

func (m *MockTableRepository) GetByPublicID(ctx context.Context, publicID kernel.UUID) (table.Table, error) {
	args := m.Called(ctx, publicID)
	return args.Get(0).(table.Table), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p product.Product) (product.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(product.Product), args.Error(1)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.ID) (product.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(product.Product), args.Error(1)
}

func (m *MockProductRepository) GetByPublicID(ctx context.Context, publicID kernel.UUID) (product.Product, error) {
	args := m.Called(ctx, publicID)
	return args.Get(0).(product.Product), args.Error(1)
}

type MockCommandRepository struct{ mock.Mock }

// Add returns the configured value, or calls it when it is a func(command.Command) command.Command.
func (m *MockCommandRepository) Add(ctx context.Context, c command.Command) (command.Command, error) {
	args := m.Called(ctx, c)
	if fn, ok := args.Get(0).(func(command.Command) command.Command); ok {
		return fn(c), args.Error(1)
	}
	return args.Get(0).(command.Command), args.Error(1)
}

func (m *MockCommandRepository) Update(ctx context.Context, c command.Command) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCommandRepository) Get(ctx context.Context, id kernel.ID) (command.Command, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(command.Command), args.Error(1)
}

func (m *MockCommandRepository) GetByPublicID(ctx context.Context, publicID kernel.UUID) (command.Command, error) {
	args := m.Called(ctx, publicID)
	return args.Get(0).(command.Command), args.Error(1)
}

func (m *MockCommandRepository) SumClosedTotals(
	ctx context.Context, companyID kernel.ID, from, to time.Time,
) (kernel.Money, error) {
	args := m.Called(ctx, companyID, from, to)
	return args.Get(0).(kernel.Money), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

// Add returns the configured value, or calls it when it is a func(order.Order) order.Order.
func (m *MockOrderRepository) Add(ctx context.Context, o order.Order) (order.Order, error) {
	args := m.Called(ctx, o)
	if fn, ok := args.Get(0).(func(order.Order) order.Order); ok {
		return fn(o), args.Error(1)
	}
	return args.Get(0).(order.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (order.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByPublicID(ctx context.Context, publicID kernel.UUID) (order.Order, error) {
	args := m.Called(ctx, publicID)
	return args.Get(0).(order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByCommand(ctx context.Context, commandID kernel.ID) ([]order.Order, error) {
	args := m.Called(ctx, commandID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

type MockCashSessionRepository struct{ mock.Mock }

// Add returns the configured value, or calls it when it is a func(cashregister.Session) cashregister.Session.
func (m *MockCashSessionRepository) Add(ctx context.Context, s cashregister.Session) (cashregister.Session, error) {
	args := m.Called(ctx, s)
	if fn, ok := args.Get(0).(func(cashregister.Session) cashregister.Session); ok {
		return fn(s), args.Error(1)
	}
	return args.Get(0).(cashregister.Session), args.Error(1)
}

func (m *MockCashSessionRepository) Update(ctx context.Context, s cashregister.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockCashSessionRepository) Get(ctx context.Context, id kernel.ID) (cashregister.Session, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(cashregister.Session), args.Error(1)
}

func (m *MockCashSessionRepository) GetByPublicID(
	ctx context.Context, publicID kernel.UUID,
) (cashregister.Session, error) {
	args := m.Called(ctx, publicID)
	return args.Get(0).(cashregister.Session), args.Error(1)
}

func (m *MockCashSessionRepository) GetOpenByCompany(
	ctx context.Context, companyID kernel.ID,
) (cashregister.Session, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(cashregister.Session), args.Error(1)
}

type MockClosingRepository struct{ mock.Mock }

// Add returns the configured value, or calls it when it is a func(cashregister.Closing) cashregister.Closing.
func (m *MockClosingRepository) Add(ctx context.Context, c cashregister.Closing) (cashregister.Closing, error) {
	args := m.Called(ctx, c)
	if fn, ok := args.Get(0).(func(cashregister.Closing) cashregister.Closing); ok {
		return fn(c), args.Error(1)
	}
	return args.Get(0).(cashregister.Closing), args.Error(1)
}

func (m *MockClosingRepository) GetBySession(ctx context.Context, sessionID kernel.ID) (cashregister.Closing, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(cashregister.Closing), args.Error(1)
}

// MockUoW satisfies every unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) StatusRepository() ports.StatusRepository {
	args := m.Called()
	return args.Get(0).(ports.StatusRepository)
}

func (m *MockUoW) TableRepository() ports.TableRepository {
	args := m.Called()
	return args.Get(0).(ports.TableRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) CommandRepository() ports.CommandRepository {
	args := m.Called()
	return args.Get(0).(ports.CommandRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CashSessionRepository() ports.CashSessionRepository {
	args := m.Called()
	return args.Get(0).(ports.CashSessionRepository)
}

func (m *MockUoW) ClosingRepository() ports.ClosingRepository {
	args := m.Called()
	return args.Get(0).(ports.ClosingRepository)
}

// repos bundles one mock of each repository. Every accessor of the unit of work returns
// the same mock, so tests only set expectations on the repository methods.
type repos struct {
	uow      *MockUoW
	statuses *MockStatusRepository
	tables   *MockTableRepository
	products *MockProductRepository
	commands *MockCommandRepository
	orders   *MockOrderRepository
	sessions *MockCashSessionRepository
	closings *MockClosingRepository
}

func newRepos() *repos {
	r := &repos{
		uow:      new(MockUoW),
		statuses: new(MockStatusRepository),
		tables:   new(MockTableRepository),
		products: new(MockProductRepository),
		commands: new(MockCommandRepository),
		orders:   new(MockOrderRepository),
		sessions: new(MockCashSessionRepository),
		closings: new(MockClosingRepository),
	}
	r.uow.On("StatusRepository").Return(r.statuses).Maybe()
	r.uow.On("TableRepository").Return(r.tables).Maybe()
	r.uow.On("ProductRepository").Return(r.products).Maybe()
	r.uow.On("CommandRepository").Return(r.commands).Maybe()
	r.uow.On("OrderRepository").Return(r.orders).Maybe()
	r.uow.On("CashSessionRepository").Return(r.sessions).Maybe()
	r.uow.On("ClosingRepository").Return(r.closings).Maybe()
	r.uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	return r
}

func (r *repos) assertExpectations(t mock.TestingT) {
	r.uow.AssertExpectations(t)
	r.statuses.AssertExpectations(t)
	r.tables.AssertExpectations(t)
	r.products.AssertExpectations(t)
	r.commands.AssertExpectations(t)
	r.orders.AssertExpectations(t)
	r.sessions.AssertExpectations(t)
	r.closings.AssertExpectations(t)
}

func (r *repos) commandFactory() commands.CommandUoWFactory {
	return commandUoWFactory(func() commands.CommandUoW { return r.uow })
}

func (r *repos) orderFactory() commands.OrderUoWFactory {
	return orderUoWFactory(func() commands.OrderUoW { return r.uow })
}

func (r *repos) cashFactory() commands.CashUoWFactory {
	return cashUoWFactory(func() commands.CashUoW { return r.uow })
}

type commandUoWFactory func() commands.CommandUoW

func (f commandUoWFactory) Create() commands.CommandUoW {
	return f()
}

type orderUoWFactory func() commands.OrderUoW

func (f orderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type cashUoWFactory func() commands.CashUoW

func (f cashUoWFactory) Create() commands.CashUoW {
	return f()
}
