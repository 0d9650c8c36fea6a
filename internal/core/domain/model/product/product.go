package product

import (
	"errors"
	"slices"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrProductIsNotConstructed = errs.NewValueIsRequiredError("product must be created via NewProduct or RestoreProduct")

// Product is a menu item a company sells.
type Product struct {
	id        kernel.ID
	publicID  kernel.UUID
	companyID kernel.ID
	name      string
	price     kernel.Money
	servings  kernel.Servings
	groups    []ModifierGroup
	guard     guard.ConstructorGuard
}

// NewProduct creates a product that has not been stored yet.
func NewProduct(
	companyID kernel.ID,
	name string,
	price kernel.Money,
	servings kernel.Servings,
	groups []ModifierGroup,
) (Product, error) {
	return build(0, kernel.NewUUID(), companyID, name, price, servings, groups)
}

// RestoreProduct rebuilds a stored product.
func RestoreProduct(
	id kernel.ID,
	publicID kernel.UUID,
	companyID kernel.ID,
	name string,
	price kernel.Money,
	servings kernel.Servings,
	groups []ModifierGroup,
) (Product, error) {
	if err := kernel.RequireID("id", id); err != nil {
		return Product{}, err
	}
	return build(id, publicID, companyID, name, price, servings, groups)
}

func build(
	id kernel.ID,
	publicID kernel.UUID,
	companyID kernel.ID,
	name string,
	price kernel.Money,
	servings kernel.Servings,
	groups []ModifierGroup,
) (Product, error) {
	name = strings.TrimSpace(name)

	var groupErr error
	for _, g := range groups {
		if err := g.Validate(); err != nil {
			groupErr = err
			break
		}
	}

	if err := errors.Join(
		publicID.Validate(),
		kernel.RequireID("companyID", companyID),
		requireName(name),
		price.Validate(),
		servings.Validate(),
		groupErr,
	); err != nil {
		return Product{}, err
	}

	return Product{
		id:        id,
		publicID:  publicID,
		companyID: companyID,
		name:      name,
		price:     price,
		servings:  servings,
		groups:    slices.Clone(groups),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p Product) ID() kernel.ID {
	return p.id
}

func (p Product) PublicID() kernel.UUID {
	return p.publicID
}

func (p Product) CompanyID() kernel.ID {
	return p.companyID
}

func (p Product) Name() string {
	return p.name
}

func (p Product) Price() kernel.Money {
	return p.price
}

func (p Product) Servings() kernel.Servings {
	return p.servings
}

// ModifierGroups returns the groups sorted by display order.
func (p Product) ModifierGroups() []ModifierGroup {
	groups := slices.Clone(p.groups)
	slices.SortStableFunc(groups, func(a, b ModifierGroup) int {
		return a.displayOrder - b.displayOrder
	})
	return groups
}
