package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each request.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Every repository it hands out works
// inside the transaction started by Begin.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	StatusRepository() StatusRepository
	TableRepository() TableRepository
	ProductRepository() ProductRepository
	CommandRepository() CommandRepository
	OrderRepository() OrderRepository
	CashSessionRepository() CashSessionRepository
	ClosingRepository() ClosingRepository
}
