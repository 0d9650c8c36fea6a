// Package versioned holds the audit columns shared by every versioned table and the
// optimistic update used by the repositories.
package versioned

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Columns is embedded in DTOs. GORM timestamp tracking is disabled: the domain clock
// owns created_at and updated_at.
type Columns struct {
	CreatedAt time.Time  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time  `gorm:"not null;autoUpdateTime:false"`
	DeletedAt *time.Time `gorm:"index"`
	CreatedBy int64      `gorm:"not null"`
	UpdatedBy int64      `gorm:"not null"`
	Version   int64      `gorm:"not null;default:1"`
}

func FromAudit(a kernel.Audit) Columns {
	return Columns{
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
		DeletedAt: a.DeletedAt(),
		CreatedBy: a.CreatedBy().Int64(),
		UpdatedBy: a.UpdatedBy().Int64(),
		Version:   a.Version(),
	}
}

func (c Columns) ToAudit() (kernel.Audit, error) {
	return kernel.RestoreAudit(
		c.CreatedAt,
		c.UpdatedAt,
		c.DeletedAt,
		kernel.ID(c.CreatedBy),
		kernel.ID(c.UpdatedBy),
		c.Version,
	)
}

// NotDeleted scopes a query to live rows.
func NotDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("deleted_at IS NULL")
}

// Update writes every column of dto except the identity and creation columns, guarded
// by the version the row had when it was loaded. When no row matches it reports
// errs.ObjectNotFoundError if the row is gone and errs.VersionConflictError otherwise.
func Update(ctx context.Context, db *gorm.DB, dto any, entity string, id kernel.ID, persistedVersion int64) error {
	result := db.WithContext(ctx).
		Model(dto).
		Select("*").
		Omit("id", "public_id", "created_at", "created_by", clause.Associations).
		Where("id = ? AND version = ?", id.Int64(), persistedVersion).
		Updates(dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.WithContext(ctx).Model(dto).Where("id = ?", id.Int64()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError(entity, id)
	}
	return errs.NewVersionConflictError(entity, id, persistedVersion)
}
