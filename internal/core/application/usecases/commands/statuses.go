package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// currentStatus loads the catalog entry of a status read from storage. A stored key
// missing from the catalog means the catalog and the data disagree.
func currentStatus(ctx context.Context, repo ports.StatusRepository, kind catalog.Kind, key string) (catalog.Entry, error) {
	entry, err := repo.GetByKey(ctx, kind, key)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return catalog.Entry{}, errs.NewInconsistentCatalogError("%s '%s' is stored but missing from the catalog", kind, key)
	}
	return entry, err
}

// requestedStatus loads the catalog entry a caller asked for.
func requestedStatus(ctx context.Context, repo ports.StatusRepository, kind catalog.Kind, key string) (catalog.Entry, error) {
	entry, err := repo.GetByKey(ctx, kind, key)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return catalog.Entry{}, errs.NewValueIsInvalidErrorWithCause("status", err)
	}
	return entry, err
}
