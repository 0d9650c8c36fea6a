// Package queries contains the read side: raw SQL projections that bypass the aggregates.
package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetActiveCommandsQueryIsNotConstructed = errors.New(
	"GetActiveCommandsQuery must be created via NewGetActiveCommandsQuery constructor",
)

// GetActiveCommandsQuery lists the open and paying commands of a company, oldest first.
//
// Example:
//
//	query, err := NewGetActiveCommandsQuery(companyID)
//	if err != nil {
//	    return err
//	}
//	commands, err := NewGetActiveCommandsQueryHandler(db).Handle(ctx, query)
type GetActiveCommandsQuery struct {
	companyID kernel.ID
	guard     guard.ConstructorGuard
}

func NewGetActiveCommandsQuery(companyID kernel.ID) (GetActiveCommandsQuery, error) {
	if err := kernel.RequireID("companyID", companyID); err != nil {
		return GetActiveCommandsQuery{}, err
	}
	return GetActiveCommandsQuery{companyID: companyID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetActiveCommandsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveCommandsQueryIsNotConstructed)
}

func (q GetActiveCommandsQuery) CompanyID() kernel.ID {
	return q.companyID
}

// GetActiveCommandsQueryResponse is one row of the floor overview. Total is nil until
// the command total has been computed once. UnfinishedOrders counts live orders the
// kitchen has not delivered yet.
type GetActiveCommandsQueryResponse struct {
	ID               kernel.UUID
	Name             string
	People           int
	TableNumber      int
	Status           string
	Total            *kernel.Money
	UnfinishedOrders int
	OpenedAt         time.Time
}
