package command

import (
	"errors"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

const maxNameLength = 120

var ErrCommandIsNotConstructed = errs.NewValueIsRequiredError("command must be created via NewCommand or RestoreCommand")

// Command is a tab opened against a table.
//
// Invariants:
//   - belongs to exactly one company and one table
//   - total, once computed, is the sum of its live orders minus the discount, never below zero
//   - cancellation reason and actor are set together, only for canceled commands
type Command struct { //nolint:recvcheck //using for validation
	id                  kernel.ID
	publicID            kernel.UUID
	name                string
	people              kernel.PeopleCount
	total               *kernel.Money
	openedBy            kernel.ID
	status              Status
	tableID             kernel.ID
	companyID           kernel.ID
	cancellationReason  *string
	canceledBy          *kernel.ID
	discount            *kernel.Money
	discountDescription *string
	audit               kernel.Audit
	guard               guard.ConstructorGuard
}

// Snapshot is the flat form of a Command used to restore it from storage.
type Snapshot struct {
	ID                  kernel.ID
	PublicID            kernel.UUID
	Name                string
	People              kernel.PeopleCount
	Total               *kernel.Money
	OpenedBy            kernel.ID
	Status              Status
	TableID             kernel.ID
	CompanyID           kernel.ID
	CancellationReason  *string
	CanceledBy          *kernel.ID
	Discount            *kernel.Money
	DiscountDescription *string
	Audit               kernel.Audit
}

// NewCommand opens a new tab. The command starts Open with a fresh public id.
func NewCommand(
	name string,
	people kernel.PeopleCount,
	tableID, companyID, openedBy kernel.ID,
	now time.Time,
) (Command, error) {
	c := Command{
		publicID: kernel.NewUUID(),
		status:   Open,
		guard:    guard.NewConstructorGuard(),
	}

	audit, auditErr := kernel.NewAudit(now, openedBy)

	if err := errors.Join(
		c.setName(name),
		c.setPeople(people),
		c.setTableID(tableID),
		c.setCompanyID(companyID),
		kernel.RequireID("openedBy", openedBy),
		auditErr,
	); err != nil {
		return Command{}, err
	}

	c.openedBy = openedBy
	c.audit = audit
	return c, nil
}

// RestoreCommand rebuilds a stored command.
func RestoreCommand(s Snapshot) (Command, error) {
	c := Command{
		id:                  s.ID,
		total:               s.Total,
		openedBy:            s.OpenedBy,
		cancellationReason:  s.CancellationReason,
		canceledBy:          s.CanceledBy,
		discount:            s.Discount,
		discountDescription: s.DiscountDescription,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		kernel.RequireID("id", s.ID),
		s.PublicID.Validate(),
		c.setName(s.Name),
		c.setPeople(s.People),
		c.setStatus(s.Status),
		c.setTableID(s.TableID),
		c.setCompanyID(s.CompanyID),
		s.Audit.Validate(),
	); err != nil {
		return Command{}, err
	}

	c.publicID = s.PublicID
	c.audit = s.Audit
	return c, nil
}

func (c Command) Validate() error {
	return c.guard.Validate(ErrCommandIsNotConstructed)
}

func (c Command) Snapshot() Snapshot {
	return Snapshot{
		ID:                  c.id,
		PublicID:            c.publicID,
		Name:                c.name,
		People:              c.people,
		Total:               c.total,
		OpenedBy:            c.openedBy,
		Status:              c.status,
		TableID:             c.tableID,
		CompanyID:           c.companyID,
		CancellationReason:  c.cancellationReason,
		CanceledBy:          c.canceledBy,
		Discount:            c.discount,
		DiscountDescription: c.discountDescription,
		Audit:               c.audit,
	}
}

func (c Command) ID() kernel.ID {
	return c.id
}

func (c Command) PublicID() kernel.UUID {
	return c.publicID
}

func (c Command) Name() string {
	return c.name
}

func (c Command) People() kernel.PeopleCount {
	return c.people
}

func (c Command) OpenedBy() kernel.ID {
	return c.openedBy
}

func (c Command) Status() Status {
	return c.status
}

func (c Command) TableID() kernel.ID {
	return c.tableID
}

func (c Command) CompanyID() kernel.ID {
	return c.companyID
}

func (c Command) Audit() kernel.Audit {
	return c.audit
}

// Total is nil until the command total has been computed.
func (c Command) Total() *kernel.Money {
	return c.total
}

func (c Command) CancellationReason() *string {
	return c.cancellationReason
}

func (c Command) CanceledBy() *kernel.ID {
	return c.canceledBy
}

func (c Command) Discount() *kernel.Money {
	return c.discount
}

func (c Command) DiscountDescription() *string {
	return c.discountDescription
}

// WithID returns the command carrying the identity assigned by storage.
func (c Command) WithID(id kernel.ID) (Command, error) {
	if err := kernel.RequireID("id", id); err != nil {
		return Command{}, err
	}
	c.id = id
	return c, nil
}

// WithStatus moves the command to next along the status graph.
func (c Command) WithStatus(next Status, now time.Time, actor kernel.ID) (Command, error) {
	status, err := c.status.TransitionTo(next)
	if err != nil {
		return Command{}, err
	}
	c.status = status
	c.audit = c.audit.Touch(now, actor)
	return c, nil
}

// WithTable points the command at another table. Callers check the reassignment rules.
func (c Command) WithTable(tableID kernel.ID, now time.Time, actor kernel.ID) (Command, error) {
	if err := c.setTableID(tableID); err != nil {
		return Command{}, err
	}
	c.audit = c.audit.Touch(now, actor)
	return c, nil
}

// Canceled cancels the command, recording why and by whom.
func (c Command) Canceled(reason string, actor kernel.ID, now time.Time) (Command, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return Command{}, errs.NewBusinessRuleViolationError("cancellation reason is required")
	}
	if err := kernel.RequireID("canceledBy", actor); err != nil {
		return Command{}, err
	}

	status, err := c.status.Cancel()
	if err != nil {
		return Command{}, err
	}

	c.status = status
	c.cancellationReason = &reason
	c.canceledBy = &actor
	c.audit = c.audit.Touch(now, actor)
	return c, nil
}

// WithDiscount records a discount. A zero amount clears it.
func (c Command) WithDiscount(amount kernel.Money, description *string, now time.Time, actor kernel.ID) (Command, error) {
	if err := amount.Validate(); err != nil {
		return Command{}, err
	}
	if amount.IsZero() {
		c.discount = nil
		c.discountDescription = nil
	} else {
		c.discount = &amount
		c.discountDescription = description
	}
	c.audit = c.audit.Touch(now, actor)
	return c, nil
}

// WithTotal stores a computed total.
func (c Command) WithTotal(total kernel.Money, now time.Time, actor kernel.ID) (Command, error) {
	if err := total.Validate(); err != nil {
		return Command{}, err
	}
	c.total = &total
	c.audit = c.audit.Touch(now, actor)
	return c, nil
}

// Deleted soft deletes the command.
func (c Command) Deleted(now time.Time, actor kernel.ID) Command {
	c.audit = c.audit.SoftDelete(now, actor)
	return c
}

func (c *Command) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", len(name), 1, maxNameLength)
	}
	c.name = name
	return nil
}

func (c *Command) setPeople(people kernel.PeopleCount) error {
	if err := people.Validate(); err != nil {
		return err
	}
	c.people = people
	return nil
}

func (c *Command) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *Command) setTableID(id kernel.ID) error {
	if err := kernel.RequireID("tableID", id); err != nil {
		return err
	}
	c.tableID = id
	return nil
}

func (c *Command) setCompanyID(id kernel.ID) error {
	if err := kernel.RequireID("companyID", id); err != nil {
		return err
	}
	c.companyID = id
	return nil
}
