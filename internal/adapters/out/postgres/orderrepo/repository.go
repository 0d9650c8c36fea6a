package orderrepo

import (
	"context"
	"errors"

	"restaurant/internal/adapters/out/postgres/versioned"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order together with its selected options.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate order.Order) (order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return order.Order{}, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return order.Order{}, err
	}

	stored, err := toDomain(dto)
	if err != nil {
		return order.Order{}, err
	}

	r.tracker.TrackAggregate(stored.PublicID(), stored)
	return stored, nil
}

// Update saves an existing order. Selected options are fixed at creation and skipped.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.SelectedOptions = nil
	if err := versioned.Update(ctx, r.db, &dto, "order", aggregate.ID(), aggregate.Audit().PersistedVersion()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.PublicID(), aggregate)
	return nil
}

// Get retrieves a live order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (order.Order, error) {
	return r.first(ctx, id, "id = ?", id.Int64())
}

func (r *GormOrderRepository) GetByPublicID(ctx context.Context, publicID kernel.UUID) (order.Order, error) {
	return r.first(ctx, publicID, "public_id = ?", publicID.Bytes())
}

// ListByCommand retrieves the live orders of a command.
func (r *GormOrderRepository) ListByCommand(ctx context.Context, commandID kernel.ID) ([]order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("SelectedOptions", orderByID).
		Scopes(versioned.NotDeleted).
		Where("command_id = ?", commandID.Int64()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) first(ctx context.Context, id any, query string, args ...any) (order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("SelectedOptions", orderByID).
		Scopes(versioned.NotDeleted).
		Where(query, args...).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.Order{}, errs.NewObjectNotFoundError("order", id)
		}
		return order.Order{}, err
	}

	return toDomain(dto)
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
