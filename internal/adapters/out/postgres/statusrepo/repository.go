package statusrepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStatusRepository implements ports.StatusRepository using GORM.
type GormStatusRepository struct {
	db *gorm.DB
}

func NewGormStatusRepository(db *gorm.DB) *GormStatusRepository {
	return &GormStatusRepository{db: db}
}

func (r *GormStatusRepository) Get(ctx context.Context, id kernel.ID) (catalog.Entry, error) {
	var dto StatusDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Entry{}, errs.NewObjectNotFoundError("status", id)
		}
		return catalog.Entry{}, err
	}

	return toDomain(dto)
}

func (r *GormStatusRepository) GetByKey(ctx context.Context, kind catalog.Kind, key string) (catalog.Entry, error) {
	var dto StatusDTO
	err := r.db.WithContext(ctx).First(&dto, "kind = ? AND status_key = ?", kind.String(), key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Entry{}, errs.NewObjectNotFoundError(kind.String(), key)
		}
		return catalog.Entry{}, err
	}

	return toDomain(dto)
}

func (r *GormStatusRepository) List(ctx context.Context, kind catalog.Kind) ([]catalog.Entry, error) {
	var dtos []StatusDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos, "kind = ?", kind.String()).Error; err != nil {
		return nil, err
	}

	entries := make([]catalog.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, nil
}
