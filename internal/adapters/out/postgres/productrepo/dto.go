// Package productrepo persists products with their modifier groups and options.
package productrepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	ID        int64              `gorm:"primaryKey;autoIncrement"`
	PublicID  uuid.UUID          `gorm:"type:uuid;uniqueIndex;not null"`
	CompanyID int64              `gorm:"not null;index"`
	Name      string             `gorm:"size:120;not null"`
	Price     decimal.Decimal    `gorm:"type:numeric(12,2);not null"`
	Servings  int                `gorm:"not null"`
	Groups    []ModifierGroupDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (ProductDTO) TableName() string {
	return "products"
}

type ModifierGroupDTO struct {
	ID           int64               `gorm:"primaryKey;autoIncrement"`
	ProductID    int64               `gorm:"not null;index"`
	Name         string              `gorm:"size:120;not null"`
	MinSelection int                 `gorm:"not null"`
	MaxSelection int                 `gorm:"not null"`
	DisplayOrder int                 `gorm:"not null"`
	Options      []ModifierOptionDTO `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

func (ModifierGroupDTO) TableName() string {
	return "product_modifier_groups"
}

type ModifierOptionDTO struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	GroupID      int64           `gorm:"not null;index"`
	Name         string          `gorm:"size:120;not null"`
	PriceChange  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IsDefault    bool            `gorm:"not null"`
	DisplayOrder int             `gorm:"not null"`
}

func (ModifierOptionDTO) TableName() string {
	return "product_modifier_options"
}

func fromDomain(p product.Product) ProductDTO {
	groups := make([]ModifierGroupDTO, 0, len(p.ModifierGroups()))
	for _, g := range p.ModifierGroups() {
		options := make([]ModifierOptionDTO, 0, len(g.Options()))
		for _, o := range g.Options() {
			options = append(options, ModifierOptionDTO{
				ID:           o.ID().Int64(),
				GroupID:      g.ID().Int64(),
				Name:         o.Name(),
				PriceChange:  o.PriceChange().Decimal(),
				IsDefault:    o.IsDefault(),
				DisplayOrder: o.DisplayOrder(),
			})
		}
		groups = append(groups, ModifierGroupDTO{
			ID:           g.ID().Int64(),
			ProductID:    p.ID().Int64(),
			Name:         g.Name(),
			MinSelection: g.MinSelection(),
			MaxSelection: g.MaxSelection(),
			DisplayOrder: g.DisplayOrder(),
			Options:      options,
		})
	}

	return ProductDTO{
		ID:        p.ID().Int64(),
		PublicID:  p.PublicID().Bytes(),
		CompanyID: p.CompanyID().Int64(),
		Name:      p.Name(),
		Price:     p.Price().Decimal(),
		Servings:  p.Servings().Int(),
		Groups:    groups,
	}
}

func toDomain(dto ProductDTO) (product.Product, error) {
	publicID, err := kernel.UUIDFromBytes(dto.PublicID[:])
	if err != nil {
		return product.Product{}, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return product.Product{}, err
	}
	servings, err := kernel.NewServings(dto.Servings)
	if err != nil {
		return product.Product{}, err
	}

	groups := make([]product.ModifierGroup, 0, len(dto.Groups))
	for _, g := range dto.Groups {
		group, groupErr := groupToDomain(g)
		if groupErr != nil {
			return product.Product{}, groupErr
		}
		groups = append(groups, group)
	}

	return product.RestoreProduct(
		kernel.ID(dto.ID),
		publicID,
		kernel.ID(dto.CompanyID),
		dto.Name,
		price,
		servings,
		groups,
	)
}

func groupToDomain(dto ModifierGroupDTO) (product.ModifierGroup, error) {
	options := make([]product.ModifierOption, 0, len(dto.Options))
	for _, o := range dto.Options {
		change, err := kernel.NewAmount(o.PriceChange)
		if err != nil {
			return product.ModifierGroup{}, err
		}
		option, err := product.NewModifierOption(kernel.ID(o.ID), o.Name, change, o.IsDefault, o.DisplayOrder)
		if err != nil {
			return product.ModifierGroup{}, err
		}
		options = append(options, option)
	}

	return product.NewModifierGroup(
		kernel.ID(dto.ID),
		dto.Name,
		dto.MinSelection,
		dto.MaxSelection,
		dto.DisplayOrder,
		options,
	)
}
