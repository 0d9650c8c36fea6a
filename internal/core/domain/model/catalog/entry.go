package catalog

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrEntryIsNotConstructed = errs.NewValueIsRequiredError("catalog entry must be created via NewEntry or RestoreEntry")

// Entry is a single status of the catalog.
type Entry struct {
	id          kernel.ID
	kind        Kind
	key         string
	name        string
	description string
	guard       guard.ConstructorGuard
}

// NewEntry creates an entry that has not been stored yet.
func NewEntry(kind Kind, key, name, description string) (Entry, error) {
	e := Entry{
		name:        name,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setKind(kind),
		e.setKey(key),
	); err != nil {
		return Entry{}, err
	}

	return e, nil
}

// RestoreEntry rebuilds a stored entry.
func RestoreEntry(id kernel.ID, kind Kind, key, name, description string) (Entry, error) {
	e, err := NewEntry(kind, key, name, description)
	if err != nil {
		return Entry{}, err
	}
	if err = kernel.RequireID("id", id); err != nil {
		return Entry{}, err
	}

	e.id = id
	return e, nil
}

func (e Entry) Validate() error {
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

func (e Entry) ID() kernel.ID {
	return e.id
}

func (e Entry) Kind() Kind {
	return e.kind
}

func (e Entry) Key() string {
	return e.key
}

func (e Entry) Name() string {
	return e.name
}

func (e Entry) Description() string {
	return e.description
}

// Expect returns an inconsistent-catalog error unless e is a constructed entry of kind k.
func (e Entry) Expect(k Kind) error {
	if err := e.Validate(); err != nil {
		return errs.NewInconsistentCatalogError("%s entry is missing", k)
	}
	if e.kind != k {
		return errs.NewInconsistentCatalogError("entry '%s' is of kind %s, expected %s", e.key, e.kind, k)
	}
	return nil
}

func (e *Entry) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	e.kind = kind
	return nil
}

func (e *Entry) setKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errs.NewValueIsRequiredError("key")
	}
	e.key = key
	return nil
}
