package queries

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/command"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetActiveCommandsQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveCommandsQueryHandler(db *gorm.DB) GetActiveCommandsQueryHandler {
	return GetActiveCommandsQueryHandler{db: db}
}

// Handle returns an empty slice when the company has no active command.
func (h GetActiveCommandsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveCommandsQuery,
) ([]GetActiveCommandsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	result := make([]GetActiveCommandsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.public_id,
			c.name,
			c.people,
			t.number,
			c.status,
			c.total,
			c.created_at,
			(
				SELECT COUNT(*)
				FROM orders o
				WHERE o.command_id = c.id
					AND o.deleted_at IS NULL
					AND o.status IN (?, ?)
			) AS unfinished_orders
		FROM commands c
		JOIN dining_tables t ON t.id = c.table_id
		WHERE c.company_id = ?
			AND c.deleted_at IS NULL
			AND c.status IN (?, ?)
		ORDER BY c.created_at, c.id
	`,
		order.Open.Key(), order.InPreparation.Key(),
		query.CompanyID().Int64(),
		command.Open.Key(), command.Paying.Key(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			row      GetActiveCommandsQueryResponse
			id       uuid.UUID
			total    decimal.NullDecimal
			openedAt time.Time
		)

		err = rows.Scan(
			&id,
			&row.Name,
			&row.People,
			&row.TableNumber,
			&row.Status,
			&total,
			&openedAt,
			&row.UnfinishedOrders,
		)
		if err != nil {
			return nil, err
		}

		if row.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if total.Valid {
			money, moneyErr := kernel.NewMoney(total.Decimal)
			if moneyErr != nil {
				return nil, moneyErr
			}
			row.Total = &money
		}
		row.OpenedAt = openedAt.UTC()

		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
