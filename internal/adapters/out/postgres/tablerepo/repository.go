package tablerepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTableRepository implements ports.TableRepository using GORM.
type GormTableRepository struct {
	db *gorm.DB
}

func NewGormTableRepository(db *gorm.DB) *GormTableRepository {
	return &GormTableRepository{db: db}
}

func (r *GormTableRepository) Add(ctx context.Context, t table.Table) (table.Table, error) {
	if err := t.Validate(); err != nil {
		return table.Table{}, err
	}

	dto := fromDomain(t)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return table.Table{}, err
	}

	return toDomain(dto)
}

func (r *GormTableRepository) Get(ctx context.Context, id kernel.ID) (table.Table, error) {
	return r.first(ctx, "table", id, "id = ?", id.Int64())
}

func (r *GormTableRepository) GetByPublicID(ctx context.Context, publicID kernel.UUID) (table.Table, error) {
	return r.first(ctx, "table", publicID, "public_id = ?", publicID.Bytes())
}

func (r *GormTableRepository) first(ctx context.Context, entity string, id any, query string, args ...any) (table.Table, error) {
	var dto TableDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return table.Table{}, errs.NewObjectNotFoundError(entity, id)
		}
		return table.Table{}, err
	}

	return toDomain(dto)
}
