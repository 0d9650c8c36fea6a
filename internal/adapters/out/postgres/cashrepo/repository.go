package cashrepo

import (
	"context"
	"errors"

	"restaurant/internal/adapters/out/postgres/versioned"
	"restaurant/internal/core/domain/model/cashregister"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormCashSessionRepository implements ports.CashSessionRepository using GORM.
type GormCashSessionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormCashSessionRepository(db *gorm.DB, tracker aggregateTracker) *GormCashSessionRepository {
	return &GormCashSessionRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormCashSessionRepository) Add(ctx context.Context, s cashregister.Session) (cashregister.Session, error) {
	if err := s.Validate(); err != nil {
		return cashregister.Session{}, err
	}

	dto := sessionFromDomain(s)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return cashregister.Session{}, err
	}

	stored, err := sessionToDomain(dto)
	if err != nil {
		return cashregister.Session{}, err
	}

	r.tracker.TrackAggregate(stored.PublicID(), stored)
	return stored, nil
}

func (r *GormCashSessionRepository) Update(ctx context.Context, s cashregister.Session) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := sessionFromDomain(s)
	if err := versioned.Update(ctx, r.db, &dto, "cash register session", s.ID(), s.Audit().PersistedVersion()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(s.PublicID(), s)
	return nil
}

func (r *GormCashSessionRepository) Get(ctx context.Context, id kernel.ID) (cashregister.Session, error) {
	return r.first(ctx, id, "id = ?", id.Int64())
}

func (r *GormCashSessionRepository) GetByPublicID(ctx context.Context, publicID kernel.UUID) (cashregister.Session, error) {
	return r.first(ctx, publicID, "public_id = ?", publicID.Bytes())
}

// GetOpenByCompany returns the most recently started open session of the company.
func (r *GormCashSessionRepository) GetOpenByCompany(ctx context.Context, companyID kernel.ID) (cashregister.Session, error) {
	var dto SessionDTO
	err := r.db.WithContext(ctx).
		Scopes(versioned.NotDeleted).
		Where("company_id = ? AND status = ?", companyID.Int64(), cashregister.SessionOpen.Key()).
		Order("started_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cashregister.Session{}, errs.NewObjectNotFoundError("open cash register session of company", companyID)
		}
		return cashregister.Session{}, err
	}

	return sessionToDomain(dto)
}

func (r *GormCashSessionRepository) first(ctx context.Context, id any, query string, args ...any) (cashregister.Session, error) {
	var dto SessionDTO
	err := r.db.WithContext(ctx).
		Scopes(versioned.NotDeleted).
		Where(query, args...).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cashregister.Session{}, errs.NewObjectNotFoundError("cash register session", id)
		}
		return cashregister.Session{}, err
	}

	return sessionToDomain(dto)
}

// GormClosingRepository implements ports.ClosingRepository using GORM.
type GormClosingRepository struct {
	db *gorm.DB
}

func NewGormClosingRepository(db *gorm.DB) *GormClosingRepository {
	return &GormClosingRepository{db: db}
}

func (r *GormClosingRepository) Add(ctx context.Context, c cashregister.Closing) (cashregister.Closing, error) {
	if err := c.Validate(); err != nil {
		return cashregister.Closing{}, err
	}

	dto := closingFromDomain(c)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return cashregister.Closing{}, err
	}

	return closingToDomain(dto)
}

func (r *GormClosingRepository) GetBySession(ctx context.Context, sessionID kernel.ID) (cashregister.Closing, error) {
	var dto ClosingDTO
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID.Int64()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cashregister.Closing{}, errs.NewObjectNotFoundError("cash register closing of session", sessionID)
		}
		return cashregister.Closing{}, err
	}

	return closingToDomain(dto)
}
