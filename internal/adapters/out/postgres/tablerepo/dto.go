// Package tablerepo persists dining tables.
package tablerepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"

	"github.com/google/uuid"
)

type TableDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	PublicID  uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CompanyID int64     `gorm:"not null;index"`
	Number    int       `gorm:"not null"`
	Name      string    `gorm:"size:120"`
}

func (TableDTO) TableName() string {
	return "dining_tables"
}

func fromDomain(t table.Table) TableDTO {
	return TableDTO{
		ID:        t.ID().Int64(),
		PublicID:  t.PublicID().Bytes(),
		CompanyID: t.CompanyID().Int64(),
		Number:    t.Number(),
		Name:      t.Name(),
	}
}

func toDomain(dto TableDTO) (table.Table, error) {
	publicID, err := kernel.UUIDFromBytes(dto.PublicID[:])
	if err != nil {
		return table.Table{}, err
	}
	return table.RestoreTable(kernel.ID(dto.ID), publicID, kernel.ID(dto.CompanyID), dto.Number, dto.Name)
}
