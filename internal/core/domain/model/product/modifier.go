package product

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrModifierGroupIsNotConstructed  = errs.NewValueIsRequiredError("modifier group must be created via NewModifierGroup")
	ErrModifierOptionIsNotConstructed = errs.NewValueIsRequiredError("modifier option must be created via NewModifierOption")
)

// ModifierOption is a selectable variation of a product, such as "extra cheese".
type ModifierOption struct {
	id           kernel.ID
	name         string
	priceChange  kernel.Amount
	isDefault    bool
	displayOrder int
	guard        guard.ConstructorGuard
}

// NewModifierOption builds an option. id is zero for options not stored yet.
func NewModifierOption(id kernel.ID, name string, priceChange kernel.Amount, isDefault bool, displayOrder int) (ModifierOption, error) {
	name = strings.TrimSpace(name)
	if err := errors.Join(
		requireName(name),
		priceChange.Validate(),
		checkNonNegativeID(id),
	); err != nil {
		return ModifierOption{}, err
	}

	return ModifierOption{
		id:           id,
		name:         name,
		priceChange:  priceChange,
		isDefault:    isDefault,
		displayOrder: displayOrder,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (o ModifierOption) Validate() error {
	return o.guard.Validate(ErrModifierOptionIsNotConstructed)
}

func (o ModifierOption) ID() kernel.ID {
	return o.id
}

func (o ModifierOption) Name() string {
	return o.name
}

func (o ModifierOption) PriceChange() kernel.Amount {
	return o.priceChange
}

func (o ModifierOption) IsDefault() bool {
	return o.isDefault
}

func (o ModifierOption) DisplayOrder() int {
	return o.displayOrder
}

// ModifierGroup is a set of options with a selection cardinality.
type ModifierGroup struct {
	id           kernel.ID
	name         string
	minSelection int
	maxSelection int
	displayOrder int
	options      []ModifierOption
	guard        guard.ConstructorGuard
}

// NewModifierGroup builds a group. id is zero for groups not stored yet.
func NewModifierGroup(
	id kernel.ID,
	name string,
	minSelection, maxSelection, displayOrder int,
	options []ModifierOption,
) (ModifierGroup, error) {
	name = strings.TrimSpace(name)
	if err := errors.Join(
		requireName(name),
		checkNonNegativeID(id),
		checkSelectionBounds(minSelection, maxSelection),
		checkOptions(options),
	); err != nil {
		return ModifierGroup{}, err
	}

	return ModifierGroup{
		id:           id,
		name:         name,
		minSelection: minSelection,
		maxSelection: maxSelection,
		displayOrder: displayOrder,
		options:      slices.Clone(options),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (g ModifierGroup) Validate() error {
	return g.guard.Validate(ErrModifierGroupIsNotConstructed)
}

func (g ModifierGroup) ID() kernel.ID {
	return g.id
}

func (g ModifierGroup) Name() string {
	return g.name
}

func (g ModifierGroup) MinSelection() int {
	return g.minSelection
}

func (g ModifierGroup) MaxSelection() int {
	return g.maxSelection
}

func (g ModifierGroup) DisplayOrder() int {
	return g.displayOrder
}

func (g ModifierGroup) Options() []ModifierOption {
	return slices.Clone(g.options)
}

// Option finds an option of the group by id.
func (g ModifierGroup) Option(id kernel.ID) (ModifierOption, bool) {
	for _, o := range g.options {
		if o.id == id {
			return o, true
		}
	}
	return ModifierOption{}, false
}

func requireName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	return nil
}

func checkNonNegativeID(id kernel.ID) error {
	if id < 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is negative", id))
	}
	return nil
}

func checkSelectionBounds(minSelection, maxSelection int) error {
	if minSelection < 0 {
		return errs.NewValueIsOutOfRangeError("minSelection", minSelection, 0, maxSelection)
	}
	if maxSelection < minSelection {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxSelection",
			fmt.Errorf("%d is less than minSelection %d", maxSelection, minSelection),
		)
	}
	return nil
}

func checkOptions(options []ModifierOption) error {
	seen := make(map[kernel.ID]struct{}, len(options))
	for _, o := range options {
		if err := o.Validate(); err != nil {
			return err
		}
		if o.id.IsZero() {
			continue
		}
		if _, ok := seen[o.id]; ok {
			return errs.NewValueIsInvalidErrorWithCause("options", fmt.Errorf("option %d appears twice", o.id))
		}
		seen[o.id] = struct{}{}
	}
	return nil
}
