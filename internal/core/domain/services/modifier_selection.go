package services

import (
	"slices"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/product"
	"restaurant/internal/pkg/errs"
)

// ModifierSelectionValidator checks a set of selected option ids against the modifier
// groups of a product.
type ModifierSelectionValidator struct{}

func NewModifierSelectionValidator() ModifierSelectionValidator {
	return ModifierSelectionValidator{}
}

// Validate returns the sum of the price changes of the selected options.
//
// The whole selection is rejected when an option id is repeated, when it belongs to no
// group, or when a group (visited in display order) has fewer than minSelection or more
// than maxSelection of its options selected.
func (v ModifierSelectionValidator) Validate(
	groups []product.ModifierGroup,
	selectedOptionIDs []kernel.ID,
) (kernel.Amount, error) {
	ordered := slices.Clone(groups)
	slices.SortStableFunc(ordered, func(a, b product.ModifierGroup) int {
		return a.DisplayOrder() - b.DisplayOrder()
	})

	owner := make(map[kernel.ID]int)
	for i, g := range ordered {
		if err := g.Validate(); err != nil {
			return kernel.Amount{}, err
		}
		for _, o := range g.Options() {
			owner[o.ID()] = i
		}
	}

	counts := make([]int, len(ordered))
	seen := make(map[kernel.ID]struct{}, len(selectedOptionIDs))
	for _, id := range selectedOptionIDs {
		if _, dup := seen[id]; dup {
			return kernel.Amount{}, errs.NewBusinessRuleViolationError("option %d was selected more than once", id)
		}
		seen[id] = struct{}{}

		i, ok := owner[id]
		if !ok || id.IsZero() {
			return kernel.Amount{}, errs.NewBusinessRuleViolationError(
				"option %d does not belong to any modifier group of the product", id)
		}
		counts[i]++
	}

	for i, g := range ordered {
		if counts[i] < g.MinSelection() {
			return kernel.Amount{}, errs.NewBusinessRuleViolationError(
				"group '%s' requires at least %d selection(s).", g.Name(), g.MinSelection())
		}
		if counts[i] > g.MaxSelection() {
			return kernel.Amount{}, errs.NewBusinessRuleViolationError(
				"group '%s' allows at most %d selection(s).", g.Name(), g.MaxSelection())
		}
	}

	delta := kernel.ZeroAmount()
	for _, id := range selectedOptionIDs {
		o, _ := ordered[owner[id]].Option(id)
		delta = delta.Add(o.PriceChange())
	}
	return delta, nil
}
