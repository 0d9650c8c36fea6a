// Package orderrepo persists orders and the modifier options selected on them.
package orderrepo

import (
	"restaurant/internal/adapters/out/postgres/versioned"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row of the orders table. Notes keeps NULL and '' apart.
type OrderDTO struct {
	ID                         int64               `gorm:"primaryKey;autoIncrement"`
	PublicID                   uuid.UUID           `gorm:"type:uuid;uniqueIndex;not null"`
	CommandID                  int64               `gorm:"not null;index"`
	ProductID                  int64               `gorm:"not null"`
	Status                     string              `gorm:"size:64;not null;index"`
	Notes                      *string             `gorm:"size:1000"`
	Priority                   int                 `gorm:"not null;default:0"`
	BasePriceAtOrder           decimal.Decimal     `gorm:"type:numeric(12,2);not null"`
	TotalModifiersPriceAtOrder decimal.Decimal     `gorm:"type:numeric(12,2);not null"`
	CancellationReason         *string             `gorm:"size:500"`
	CanceledBy                 *int64
	SelectedOptions            []SelectedOptionDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	versioned.Columns          `gorm:"embedded"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// SelectedOptionDTO links an order to one selected modifier option.
type SelectedOptionDTO struct {
	ID       int64 `gorm:"primaryKey;autoIncrement"`
	OrderID  int64 `gorm:"not null;index"`
	OptionID int64 `gorm:"not null"`
}

func (SelectedOptionDTO) TableName() string {
	return "order_modifier_options"
}

func fromDomain(o order.Order) OrderDTO {
	selected := make([]SelectedOptionDTO, 0, len(o.SelectedOptionIDs()))
	for _, id := range o.SelectedOptionIDs() {
		selected = append(selected, SelectedOptionDTO{OrderID: o.ID().Int64(), OptionID: id.Int64()})
	}

	var canceledBy *int64
	if id := o.CanceledBy(); id != nil {
		v := id.Int64()
		canceledBy = &v
	}

	return OrderDTO{
		ID:                         o.ID().Int64(),
		PublicID:                   o.PublicID().Bytes(),
		CommandID:                  o.CommandID().Int64(),
		ProductID:                  o.ProductID().Int64(),
		Status:                     o.Status().Key(),
		Notes:                      o.Notes(),
		Priority:                   o.Priority(),
		BasePriceAtOrder:           o.BasePriceAtOrder().Decimal(),
		TotalModifiersPriceAtOrder: o.TotalModifiersPriceAtOrder().Decimal(),
		CancellationReason:         o.CancellationReason(),
		CanceledBy:                 canceledBy,
		SelectedOptions:            selected,
		Columns:                    versioned.FromAudit(o.Audit()),
	}
}

func toDomain(dto OrderDTO) (order.Order, error) {
	publicID, err := kernel.UUIDFromBytes(dto.PublicID[:])
	if err != nil {
		return order.Order{}, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return order.Order{}, err
	}
	base, err := kernel.NewMoney(dto.BasePriceAtOrder)
	if err != nil {
		return order.Order{}, err
	}
	delta, err := kernel.NewAmount(dto.TotalModifiersPriceAtOrder)
	if err != nil {
		return order.Order{}, err
	}
	audit, err := dto.Columns.ToAudit()
	if err != nil {
		return order.Order{}, err
	}

	selected := make([]kernel.ID, 0, len(dto.SelectedOptions))
	for _, s := range dto.SelectedOptions {
		selected = append(selected, kernel.ID(s.OptionID))
	}

	var canceledBy *kernel.ID
	if dto.CanceledBy != nil {
		id := kernel.ID(*dto.CanceledBy)
		canceledBy = &id
	}

	return order.RestoreOrder(order.Snapshot{
		ID:                         kernel.ID(dto.ID),
		PublicID:                   publicID,
		CommandID:                  kernel.ID(dto.CommandID),
		ProductID:                  kernel.ID(dto.ProductID),
		Status:                     status,
		Notes:                      dto.Notes,
		Priority:                   dto.Priority,
		BasePriceAtOrder:           base,
		TotalModifiersPriceAtOrder: delta,
		SelectedOptionIDs:          selected,
		CancellationReason:         dto.CancellationReason,
		CanceledBy:                 canceledBy,
		Audit:                      audit,
	})
}
