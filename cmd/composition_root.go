package cmd

import (
	"log/slog"

	api "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, clock kernel.Clock, logger *slog.Logger) CompositionRoot {
	if clock == nil {
		clock = kernel.SystemClock{}
	}
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock,
		logger:     logger,
	}
}

func (c *CompositionRoot) commandUoWFactory() commands.CommandUoWFactory {
	return FuncCommandUoWFactory(func() commands.CommandUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) cashUoWFactory() commands.CashUoWFactory {
	return FuncCashUoWFactory(func() commands.CashUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateOpenCommandCommandHandler() commands.OpenCommandCommandHandler {
	return commands.NewOpenCommandCommandHandler(c.commandUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateChangeCommandStatusCommandHandler() commands.ChangeCommandStatusCommandHandler {
	return commands.NewChangeCommandStatusCommandHandler(c.commandUoWFactory(), services.NewCommandLifecycle(c.clock))
}

func (c *CompositionRoot) CreateReassignCommandTableCommandHandler() commands.ReassignCommandTableCommandHandler {
	return commands.NewReassignCommandTableCommandHandler(c.commandUoWFactory(), services.NewCommandLifecycle(c.clock))
}

func (c *CompositionRoot) CreateCancelCommandCommandHandler() commands.CancelCommandCommandHandler {
	return commands.NewCancelCommandCommandHandler(c.commandUoWFactory(), services.NewCommandLifecycle(c.clock))
}

func (c *CompositionRoot) CreateApplyCommandDiscountCommandHandler() commands.ApplyCommandDiscountCommandHandler {
	return commands.NewApplyCommandDiscountCommandHandler(c.commandUoWFactory(), services.NewCommandLifecycle(c.clock))
}

func (c *CompositionRoot) CreateAddOrderCommandHandler() commands.AddOrderCommandHandler {
	return commands.NewAddOrderCommandHandler(
		c.orderUoWFactory(), services.NewOrderLifecycle(c.clock), services.NewCommandLifecycle(c.clock))
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), services.NewOrderLifecycle(c.clock))
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(
		c.orderUoWFactory(), services.NewOrderLifecycle(c.clock), services.NewCommandLifecycle(c.clock))
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), services.NewCommandLifecycle(c.clock), c.clock)
}

func (c *CompositionRoot) CreateOpenCashSessionCommandHandler() commands.OpenCashSessionCommandHandler {
	return commands.NewOpenCashSessionCommandHandler(c.cashUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCloseCashSessionCommandHandler() commands.CloseCashSessionCommandHandler {
	return commands.NewCloseCashSessionCommandHandler(c.cashUoWFactory(), services.NewClosingReconciler(c.clock), c.clock)
}

func (c *CompositionRoot) CreateGetActiveCommandsQueryHandler() queries.GetActiveCommandsQueryHandler {
	return queries.NewGetActiveCommandsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStaleCashSessionsQueryHandler() queries.GetStaleCashSessionsQueryHandler {
	return queries.NewGetStaleCashSessionsQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *api.Server {
	return api.NewServer(api.Handlers{
		OpenCommand:          c.CreateOpenCommandCommandHandler(),
		ChangeCommandStatus:  c.CreateChangeCommandStatusCommandHandler(),
		ReassignCommandTable: c.CreateReassignCommandTableCommandHandler(),
		CancelCommand:        c.CreateCancelCommandCommandHandler(),
		ApplyCommandDiscount: c.CreateApplyCommandDiscountCommandHandler(),
		AddOrder:             c.CreateAddOrderCommandHandler(),
		ChangeOrderStatus:    c.CreateChangeOrderStatusCommandHandler(),
		CancelOrder:          c.CreateCancelOrderCommandHandler(),
		DeleteOrder:          c.CreateDeleteOrderCommandHandler(),
		OpenCashSession:      c.CreateOpenCashSessionCommandHandler(),
		CloseCashSession:     c.CreateCloseCashSessionCommandHandler(),
		GetActiveCommands:    c.CreateGetActiveCommandsQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetStaleCashSessionsQueryHandler(),
		c.config.CashSessionWatchSchedule,
		c.config.CashSessionMaxOpen,
		c.logger,
	)
}

type FuncCommandUoWFactory func() commands.CommandUoW

func (f FuncCommandUoWFactory) Create() commands.CommandUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCashUoWFactory func() commands.CashUoW

func (f FuncCashUoWFactory) Create() commands.CashUoW {
	return f()
}
