package commands

import (
	"restaurant/internal/pkg/errs"
)

// retryOnConflict runs fn and, if it failed on an optimistic version check, runs it
// exactly once more. fn must open its own unit of work so the retry reloads state.
func retryOnConflict[T any](fn func() (T, error)) (T, error) {
	result, err := fn()
	if errs.IsRetryable(err) {
		return fn()
	}
	return result, err
}

func retryOnConflictErr(fn func() error) error {
	_, err := retryOnConflict(func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}
