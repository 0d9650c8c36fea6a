// Package commandrepo persists command aggregates.
package commandrepo

import (
	"restaurant/internal/adapters/out/postgres/versioned"
	"restaurant/internal/core/domain/model/command"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommandDTO is the row of the commands table. Status holds the catalog key.
type CommandDTO struct {
	ID                  int64               `gorm:"primaryKey;autoIncrement"`
	PublicID            uuid.UUID           `gorm:"type:uuid;uniqueIndex;not null"`
	Name                string              `gorm:"size:120;not null"`
	People              int                 `gorm:"not null"`
	Total               decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	OpenedBy            int64               `gorm:"not null"`
	Status              string              `gorm:"size:64;not null;index"`
	TableID             int64               `gorm:"not null;index"`
	CompanyID           int64               `gorm:"not null;index"`
	CancellationReason  *string             `gorm:"size:500"`
	CanceledBy          *int64
	Discount            decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	DiscountDescription *string             `gorm:"size:500"`
	versioned.Columns   `gorm:"embedded"`
}

func (CommandDTO) TableName() string {
	return "commands"
}

func fromDomain(c command.Command) CommandDTO {
	return CommandDTO{
		ID:                  c.ID().Int64(),
		PublicID:            c.PublicID().Bytes(),
		Name:                c.Name(),
		People:              c.People().Int(),
		Total:               nullDecimal(c.Total()),
		OpenedBy:            c.OpenedBy().Int64(),
		Status:              c.Status().Key(),
		TableID:             c.TableID().Int64(),
		CompanyID:           c.CompanyID().Int64(),
		CancellationReason:  c.CancellationReason(),
		CanceledBy:          nullID(c.CanceledBy()),
		Discount:            nullDecimal(c.Discount()),
		DiscountDescription: c.DiscountDescription(),
		Columns:             versioned.FromAudit(c.Audit()),
	}
}

func toDomain(dto CommandDTO) (command.Command, error) {
	publicID, err := kernel.UUIDFromBytes(dto.PublicID[:])
	if err != nil {
		return command.Command{}, err
	}
	people, err := kernel.NewPeopleCount(dto.People)
	if err != nil {
		return command.Command{}, err
	}
	status, err := command.ParseStatus(dto.Status)
	if err != nil {
		return command.Command{}, err
	}
	total, err := money(dto.Total)
	if err != nil {
		return command.Command{}, err
	}
	discount, err := money(dto.Discount)
	if err != nil {
		return command.Command{}, err
	}
	audit, err := dto.Columns.ToAudit()
	if err != nil {
		return command.Command{}, err
	}

	var canceledBy *kernel.ID
	if dto.CanceledBy != nil {
		id := kernel.ID(*dto.CanceledBy)
		canceledBy = &id
	}

	return command.RestoreCommand(command.Snapshot{
		ID:                  kernel.ID(dto.ID),
		PublicID:            publicID,
		Name:                dto.Name,
		People:              people,
		Total:               total,
		OpenedBy:            kernel.ID(dto.OpenedBy),
		Status:              status,
		TableID:             kernel.ID(dto.TableID),
		CompanyID:           kernel.ID(dto.CompanyID),
		CancellationReason:  dto.CancellationReason,
		CanceledBy:          canceledBy,
		Discount:            discount,
		DiscountDescription: dto.DiscountDescription,
		Audit:               audit,
	})
}

func nullDecimal(m *kernel.Money) decimal.NullDecimal {
	if m == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(m.Decimal())
}

func money(d decimal.NullDecimal) (*kernel.Money, error) {
	if !d.Valid {
		return nil, nil
	}
	m, err := kernel.NewMoney(d.Decimal)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func nullID(id *kernel.ID) *int64 {
	if id == nil {
		return nil
	}
	v := id.Int64()
	return &v
}
