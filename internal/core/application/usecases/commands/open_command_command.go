package commands

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrOpenCommandCommandIsNotConstructed = errors.New(
	"OpenCommandCommand must be created via NewOpenCommandCommand constructor",
)

// OpenCommandCommand opens a new tab on a table. The company is taken from the table.
//
// Example:
//
//	cmd, err := NewOpenCommandCommand("Mesa 12", 4, tablePublicID, waiterID)
//	if err != nil {
//	    return err
//	}
//	publicID, err := handler.Handle(ctx, cmd)
type OpenCommandCommand struct { //nolint:recvcheck //using for validation
	name    string
	people  kernel.PeopleCount
	tableID kernel.UUID
	actor   kernel.ID

	guard guard.ConstructorGuard
}

func NewOpenCommandCommand(name string, people int, tableID kernel.UUID, actor kernel.ID) (OpenCommandCommand, error) {
	cmd := OpenCommandCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPeople(people),
		tableID.Validate(),
		kernel.RequireID("actor", actor),
	); err != nil {
		return OpenCommandCommand{}, err
	}

	cmd.tableID = tableID
	cmd.actor = actor
	return cmd, nil
}

func (c OpenCommandCommand) Validate() error {
	return c.guard.Validate(ErrOpenCommandCommandIsNotConstructed)
}

func (c OpenCommandCommand) Name() string {
	return c.name
}

func (c OpenCommandCommand) People() kernel.PeopleCount {
	return c.people
}

func (c OpenCommandCommand) TableID() kernel.UUID {
	return c.tableID
}

func (c OpenCommandCommand) Actor() kernel.ID {
	return c.actor
}

func (c *OpenCommandCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *OpenCommandCommand) setPeople(people int) error {
	count, err := kernel.NewPeopleCount(people)
	if err != nil {
		return err
	}

	c.people = count
	return nil
}
