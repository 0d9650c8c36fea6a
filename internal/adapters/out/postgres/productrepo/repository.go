package productrepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/product"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add inserts the product together with its groups and options.
func (r *GormProductRepository) Add(ctx context.Context, p product.Product) (product.Product, error) {
	if err := p.Validate(); err != nil {
		return product.Product{}, err
	}

	dto := fromDomain(p)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return product.Product{}, err
	}

	return toDomain(dto)
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.ID) (product.Product, error) {
	return r.first(ctx, id, "id = ?", id.Int64())
}

func (r *GormProductRepository) GetByPublicID(ctx context.Context, publicID kernel.UUID) (product.Product, error) {
	return r.first(ctx, publicID, "public_id = ?", publicID.Bytes())
}

func (r *GormProductRepository) first(ctx context.Context, id any, query string, args ...any) (product.Product, error) {
	var dto ProductDTO
	err := r.db.WithContext(ctx).
		Preload("Groups", func(db *gorm.DB) *gorm.DB { return db.Order("display_order, id") }).
		Preload("Groups.Options", func(db *gorm.DB) *gorm.DB { return db.Order("display_order, id") }).
		Where(query, args...).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return product.Product{}, errs.NewObjectNotFoundError("product", id)
		}
		return product.Product{}, err
	}

	return toDomain(dto)
}
