package kernel

import (
	"errors"
	"time"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrAuditIsNotConstructed = errs.NewValueIsRequiredError("audit must be created via NewAudit or RestoreAudit")

// Audit carries the bookkeeping columns shared by every entity: timestamps, the actors
// that created and last changed the row, the soft-delete marker and the optimistic-lock
// version.
//
// version is the in-memory version; persistedVersion is the version the row had when
// it was loaded. Repositories write version and guard the update with persistedVersion.
type Audit struct {
	createdAt        time.Time
	updatedAt        time.Time
	deletedAt        *time.Time
	createdBy        ID
	updatedBy        ID
	version          int64
	persistedVersion int64
	guard            guard.ConstructorGuard
}

// NewAudit starts the audit trail of a fresh entity at version 1.
func NewAudit(now time.Time, actor ID) (Audit, error) {
	if err := errors.Join(requireTime("createdAt", now), RequireID("createdBy", actor)); err != nil {
		return Audit{}, err
	}

	return Audit{
		createdAt: now,
		updatedAt: now,
		createdBy: actor,
		updatedBy: actor,
		version:   1,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreAudit rebuilds an audit trail loaded from storage.
func RestoreAudit(
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
	createdBy, updatedBy ID,
	version int64,
) (Audit, error) {
	if err := errors.Join(
		requireTime("createdAt", createdAt),
		requireTime("updatedAt", updatedAt),
		checkVersion(version),
	); err != nil {
		return Audit{}, err
	}

	return Audit{
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		deletedAt:        deletedAt,
		createdBy:        createdBy,
		updatedBy:        updatedBy,
		version:          version,
		persistedVersion: version,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (a Audit) Validate() error {
	return a.guard.Validate(ErrAuditIsNotConstructed)
}

// Touch records a change: updatedAt and updatedBy move forward and the version is bumped.
func (a Audit) Touch(now time.Time, actor ID) Audit {
	a.updatedAt = now
	if !actor.IsZero() {
		a.updatedBy = actor
	}
	a.version++
	return a
}

// SoftDelete touches the audit and stamps deletedAt.
func (a Audit) SoftDelete(now time.Time, actor ID) Audit {
	a = a.Touch(now, actor)
	deletedAt := now
	a.deletedAt = &deletedAt
	return a
}

func (a Audit) CreatedAt() time.Time {
	return a.createdAt
}

func (a Audit) UpdatedAt() time.Time {
	return a.updatedAt
}

// DeletedAt returns nil while the entity is live.
func (a Audit) DeletedAt() *time.Time {
	if a.deletedAt == nil {
		return nil
	}
	t := *a.deletedAt
	return &t
}

func (a Audit) IsDeleted() bool {
	return a.deletedAt != nil
}

func (a Audit) CreatedBy() ID {
	return a.createdBy
}

func (a Audit) UpdatedBy() ID {
	return a.updatedBy
}

func (a Audit) Version() int64 {
	return a.version
}

// PersistedVersion is zero for entities that were never loaded from storage.
func (a Audit) PersistedVersion() int64 {
	return a.persistedVersion
}

func requireTime(paramName string, t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}

func checkVersion(version int64) error {
	if version < 1 {
		return errs.NewValueIsInvalidError("version")
	}
	return nil
}
