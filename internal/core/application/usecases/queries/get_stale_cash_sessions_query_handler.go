package queries

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/cashregister"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetStaleCashSessionsQueryHandler struct {
	db *gorm.DB
}

func NewGetStaleCashSessionsQueryHandler(db *gorm.DB) GetStaleCashSessionsQueryHandler {
	return GetStaleCashSessionsQueryHandler{db: db}
}

// Handle returns the stale sessions ordered by start time.
func (h GetStaleCashSessionsQueryHandler) Handle(
	ctx context.Context,
	query GetStaleCashSessionsQuery,
) ([]GetStaleCashSessionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	result := make([]GetStaleCashSessionsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			public_id,
			company_id,
			opened_by,
			initial_value,
			started_at
		FROM cash_register_sessions
		WHERE status = ?
			AND deleted_at IS NULL
			AND started_at < ?
		ORDER BY started_at, id
	`, cashregister.SessionOpen.Key(), query.OpenedBefore()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			row                 GetStaleCashSessionsQueryResponse
			id                  uuid.UUID
			companyID, openedBy int64
			initialValue        decimal.Decimal
			startedAt           time.Time
		)

		if err = rows.Scan(&id, &companyID, &openedBy, &initialValue, &startedAt); err != nil {
			return nil, err
		}

		if row.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if row.InitialValue, err = kernel.NewMoney(initialValue); err != nil {
			return nil, err
		}
		row.CompanyID = kernel.ID(companyID)
		row.OpenedBy = kernel.ID(openedBy)
		row.StartedAt = startedAt.UTC()

		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
