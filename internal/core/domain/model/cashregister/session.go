package cashregister

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrSessionIsNotConstructed = errs.NewValueIsRequiredError("session must be created via NewSession or RestoreSession")

// Session is a cash register shift of a company.
type Session struct { //nolint:recvcheck //using for validation
	id           kernel.ID
	publicID     kernel.UUID
	companyID    kernel.ID
	openedBy     kernel.ID
	status       SessionStatus
	initialValue kernel.Money
	startedAt    time.Time
	endedAt      *time.Time
	closedBy     *kernel.ID
	audit        kernel.Audit
	guard        guard.ConstructorGuard
}

// SessionSnapshot is the flat form of a Session used to restore it from storage.
type SessionSnapshot struct {
	ID           kernel.ID
	PublicID     kernel.UUID
	CompanyID    kernel.ID
	OpenedBy     kernel.ID
	Status       SessionStatus
	InitialValue kernel.Money
	StartedAt    time.Time
	EndedAt      *time.Time
	ClosedBy     *kernel.ID
	Audit        kernel.Audit
}

// NewSession opens a shift with the float left in the drawer.
func NewSession(companyID, openedBy kernel.ID, initialValue kernel.Money, now time.Time) (Session, error) {
	audit, auditErr := kernel.NewAudit(now, openedBy)

	if err := errors.Join(
		kernel.RequireID("companyID", companyID),
		kernel.RequireID("openedBy", openedBy),
		initialValue.Validate(),
		auditErr,
	); err != nil {
		return Session{}, err
	}

	return Session{
		publicID:     kernel.NewUUID(),
		companyID:    companyID,
		openedBy:     openedBy,
		status:       SessionOpen,
		initialValue: initialValue,
		startedAt:    now,
		audit:        audit,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func RestoreSession(s SessionSnapshot) (Session, error) {
	if err := errors.Join(
		kernel.RequireID("id", s.ID),
		s.PublicID.Validate(),
		kernel.RequireID("companyID", s.CompanyID),
		s.Status.Validate(),
		s.InitialValue.Validate(),
		s.Audit.Validate(),
	); err != nil {
		return Session{}, err
	}

	return Session{
		id:           s.ID,
		publicID:     s.PublicID,
		companyID:    s.CompanyID,
		openedBy:     s.OpenedBy,
		status:       s.Status,
		initialValue: s.InitialValue,
		startedAt:    s.StartedAt,
		endedAt:      s.EndedAt,
		closedBy:     s.ClosedBy,
		audit:        s.Audit,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (s Session) Validate() error {
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

func (s Session) Snapshot() SessionSnapshot {
	return SessionSnapshot{
		ID:           s.id,
		PublicID:     s.publicID,
		CompanyID:    s.companyID,
		OpenedBy:     s.openedBy,
		Status:       s.status,
		InitialValue: s.initialValue,
		StartedAt:    s.startedAt,
		EndedAt:      s.endedAt,
		ClosedBy:     s.closedBy,
		Audit:        s.audit,
	}
}

func (s Session) ID() kernel.ID {
	return s.id
}

func (s Session) PublicID() kernel.UUID {
	return s.publicID
}

func (s Session) CompanyID() kernel.ID {
	return s.companyID
}

func (s Session) OpenedBy() kernel.ID {
	return s.openedBy
}

func (s Session) Status() SessionStatus {
	return s.status
}

func (s Session) IsOpen() bool {
	return s.status == SessionOpen
}

func (s Session) InitialValue() kernel.Money {
	return s.initialValue
}

func (s Session) StartedAt() time.Time {
	return s.startedAt
}

func (s Session) EndedAt() *time.Time {
	return s.endedAt
}

func (s Session) ClosedBy() *kernel.ID {
	return s.closedBy
}

func (s Session) Audit() kernel.Audit {
	return s.audit
}

func (s Session) WithID(id kernel.ID) (Session, error) {
	if err := kernel.RequireID("id", id); err != nil {
		return Session{}, err
	}
	s.id = id
	return s, nil
}

// Close ends the shift.
func (s Session) Close(now time.Time, actor kernel.ID) (Session, error) {
	if !s.IsOpen() {
		return Session{}, errs.NewBusinessRuleViolationError("cash register session is not open")
	}
	if err := kernel.RequireID("closedBy", actor); err != nil {
		return Session{}, err
	}

	endedAt := now
	s.status = SessionClosed
	s.endedAt = &endedAt
	s.closedBy = &actor
	s.audit = s.audit.Touch(now, actor)
	return s, nil
}
