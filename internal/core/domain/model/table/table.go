// Package table provides the dining Table entity that commands are opened against.
package table

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrTableIsNotConstructed = errs.NewValueIsRequiredError("table must be created via NewTable or RestoreTable")

type Table struct {
	id        kernel.ID
	publicID  kernel.UUID
	companyID kernel.ID
	number    int
	name      string
	guard     guard.ConstructorGuard
}

func NewTable(companyID kernel.ID, number int, name string) (Table, error) {
	t := Table{
		publicID: kernel.NewUUID(),
		name:     strings.TrimSpace(name),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setCompanyID(companyID),
		t.setNumber(number),
	); err != nil {
		return Table{}, err
	}

	return t, nil
}

func RestoreTable(id kernel.ID, publicID kernel.UUID, companyID kernel.ID, number int, name string) (Table, error) {
	t, err := NewTable(companyID, number, name)
	if err != nil {
		return Table{}, err
	}
	if err = errors.Join(kernel.RequireID("id", id), publicID.Validate()); err != nil {
		return Table{}, err
	}

	t.id = id
	t.publicID = publicID
	return t, nil
}

func (t Table) Validate() error {
	return t.guard.Validate(ErrTableIsNotConstructed)
}

func (t Table) ID() kernel.ID {
	return t.id
}

func (t Table) PublicID() kernel.UUID {
	return t.publicID
}

func (t Table) CompanyID() kernel.ID {
	return t.companyID
}

func (t Table) Number() int {
	return t.number
}

func (t Table) Name() string {
	return t.name
}

func (t *Table) setCompanyID(id kernel.ID) error {
	if err := kernel.RequireID("companyID", id); err != nil {
		return err
	}
	t.companyID = id
	return nil
}

func (t *Table) setNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsInvalidError("number")
	}
	t.number = number
	return nil
}
