package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrGetStaleCashSessionsQueryIsNotConstructed = errors.New(
	"GetStaleCashSessionsQuery must be created via NewGetStaleCashSessionsQuery constructor",
)

// GetStaleCashSessionsQuery finds cash register sessions that are still open although
// they started before openedBefore.
type GetStaleCashSessionsQuery struct {
	openedBefore time.Time
	guard        guard.ConstructorGuard
}

func NewGetStaleCashSessionsQuery(openedBefore time.Time) (GetStaleCashSessionsQuery, error) {
	if openedBefore.IsZero() {
		return GetStaleCashSessionsQuery{}, errs.NewValueIsRequiredError("openedBefore")
	}
	return GetStaleCashSessionsQuery{openedBefore: openedBefore, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStaleCashSessionsQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleCashSessionsQueryIsNotConstructed)
}

func (q GetStaleCashSessionsQuery) OpenedBefore() time.Time {
	return q.openedBefore
}

type GetStaleCashSessionsQueryResponse struct {
	ID           kernel.UUID
	CompanyID    kernel.ID
	OpenedBy     kernel.ID
	InitialValue kernel.Money
	StartedAt    time.Time
}
