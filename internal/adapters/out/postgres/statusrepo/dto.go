// Package statusrepo persists the status catalog.
package statusrepo

import (
	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
)

type StatusDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Kind        string `gorm:"size:64;not null;uniqueIndex:idx_statuses_kind_key"`
	Key         string `gorm:"column:status_key;size:64;not null;uniqueIndex:idx_statuses_kind_key"`
	Name        string `gorm:"size:120;not null"`
	Description string `gorm:"size:500"`
}

func (StatusDTO) TableName() string {
	return "statuses"
}

func fromDomain(e catalog.Entry) StatusDTO {
	return StatusDTO{
		ID:          e.ID().Int64(),
		Kind:        e.Kind().String(),
		Key:         e.Key(),
		Name:        e.Name(),
		Description: e.Description(),
	}
}

func toDomain(dto StatusDTO) (catalog.Entry, error) {
	kind, err := catalog.ParseKind(dto.Kind)
	if err != nil {
		return catalog.Entry{}, err
	}
	return catalog.RestoreEntry(kernel.ID(dto.ID), kind, dto.Key, dto.Name, dto.Description)
}
