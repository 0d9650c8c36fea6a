package ports

import (
	"context"

	"restaurant/internal/core/domain/model/cashregister"
	"restaurant/internal/core/domain/model/kernel"
)

// CashSessionRepository persists cash register sessions.
type CashSessionRepository interface {
	Add(ctx context.Context, s cashregister.Session) (cashregister.Session, error)
	Update(ctx context.Context, s cashregister.Session) error
	Get(ctx context.Context, id kernel.ID) (cashregister.Session, error)
	GetByPublicID(ctx context.Context, publicID kernel.UUID) (cashregister.Session, error)

	// GetOpenByCompany returns the company's open session or errs.ObjectNotFoundError.
	GetOpenByCompany(ctx context.Context, companyID kernel.ID) (cashregister.Session, error)
}

// ClosingRepository persists the closing of a session. A session has at most one.
type ClosingRepository interface {
	Add(ctx context.Context, c cashregister.Closing) (cashregister.Closing, error)
	GetBySession(ctx context.Context, sessionID kernel.ID) (cashregister.Closing, error)
}
