package postgres

import (
	"context"
	"fmt"

	"restaurant/internal/adapters/out/postgres/cashrepo"
	"restaurant/internal/adapters/out/postgres/commandrepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/productrepo"
	"restaurant/internal/adapters/out/postgres/statusrepo"
	"restaurant/internal/adapters/out/postgres/tablerepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the repositories use and seeds the status catalog.
func Migrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&statusrepo.StatusDTO{},
		&tablerepo.TableDTO{},
		&productrepo.ProductDTO{},
		&productrepo.ModifierGroupDTO{},
		&productrepo.ModifierOptionDTO{},
		&commandrepo.CommandDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.SelectedOptionDTO{},
		&cashrepo.SessionDTO{},
		&cashrepo.ClosingDTO{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if err := statusrepo.Seed(ctx, db); err != nil {
		return fmt.Errorf("seed statuses: %w", err)
	}

	return nil
}
