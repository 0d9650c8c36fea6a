package commandrepo

import (
	"context"
	"errors"
	"time"

	"restaurant/internal/adapters/out/postgres/versioned"
	"restaurant/internal/core/domain/model/command"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormCommandRepository implements ports.CommandRepository using GORM.
type GormCommandRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCommandRepository(db *gorm.DB, tracker aggregateTracker) *GormCommandRepository {
	return &GormCommandRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormCommandRepository) Add(ctx context.Context, c command.Command) (command.Command, error) {
	if err := c.Validate(); err != nil {
		return command.Command{}, err
	}

	dto := fromDomain(c)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return command.Command{}, err
	}

	stored, err := toDomain(dto)
	if err != nil {
		return command.Command{}, err
	}

	r.tracker.TrackAggregate(stored.PublicID(), stored)
	return stored, nil
}

func (r *GormCommandRepository) Update(ctx context.Context, c command.Command) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	if err := versioned.Update(ctx, r.db, &dto, "command", c.ID(), c.Audit().PersistedVersion()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(c.PublicID(), c)
	return nil
}

func (r *GormCommandRepository) Get(ctx context.Context, id kernel.ID) (command.Command, error) {
	return r.first(ctx, id, "id = ?", id.Int64())
}

func (r *GormCommandRepository) GetByPublicID(ctx context.Context, publicID kernel.UUID) (command.Command, error) {
	return r.first(ctx, publicID, "public_id = ?", publicID.Bytes())
}

// SumClosedTotals adds up the totals of commands that reached closed within [from, to].
func (r *GormCommandRepository) SumClosedTotals(
	ctx context.Context,
	companyID kernel.ID,
	from, to time.Time,
) (kernel.Money, error) {
	var totals []decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&CommandDTO{}).
		Scopes(versioned.NotDeleted).
		Where("company_id = ? AND status = ? AND updated_at BETWEEN ? AND ?",
			companyID.Int64(), command.Closed.Key(), from, to).
		Pluck("total", &totals).Error
	if err != nil {
		return kernel.Money{}, err
	}

	sum := decimal.Zero
	for _, t := range totals {
		if t.Valid {
			sum = sum.Add(t.Decimal)
		}
	}
	return kernel.NewMoney(sum)
}

func (r *GormCommandRepository) first(ctx context.Context, id any, query string, args ...any) (command.Command, error) {
	var dto CommandDTO
	err := r.db.WithContext(ctx).
		Scopes(versioned.NotDeleted).
		Where(query, args...).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return command.Command{}, errs.NewObjectNotFoundError("command", id)
		}
		return command.Command{}, err
	}

	return toDomain(dto)
}
