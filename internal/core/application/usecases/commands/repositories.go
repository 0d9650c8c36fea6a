// Package commands contains business operations that modify system state.
// Every handler validates its command, runs load -> apply -> persist inside one unit of
// work and re-runs the whole unit of work once when the commit loses an optimistic
// version check.
package commands

import (
	"context"

	"restaurant/internal/core/ports"
)

// Unit of Work interfaces give each handler only the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	StatusRepoFactory interface {
		StatusRepository() ports.StatusRepository
	}

	TableRepoFactory interface {
		TableRepository() ports.TableRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	CommandRepoFactory interface {
		CommandRepository() ports.CommandRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CashRepoFactory interface {
		CashSessionRepository() ports.CashSessionRepository
		ClosingRepository() ports.ClosingRepository
	}

	// CommandUoW is used by operations on a command and its orders as a whole.
	CommandUoW interface {
		TxManager
		StatusRepoFactory
		TableRepoFactory
		CommandRepoFactory
		OrderRepoFactory
	}

	CommandUoWFactory interface {
		Create() CommandUoW
	}

	// OrderUoW is used by operations on a single order. The owning command is loaded
	// too because its status gates the change and its total follows it.
	OrderUoW interface {
		TxManager
		StatusRepoFactory
		ProductRepoFactory
		CommandRepoFactory
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CashUoW is used by cash register operations. Commands are read to compute the
	// sales of a session.
	CashUoW interface {
		TxManager
		CommandRepoFactory
		CashRepoFactory
	}

	CashUoWFactory interface {
		Create() CashUoW
	}
)
