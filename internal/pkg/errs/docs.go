// Package errs provides standardized error types for the restaurant application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found or is soft-deleted
//   - BusinessRuleViolationError: For when a lifecycle or validation rule rejects a request
//   - VersionConflictError: For when an optimistic version check fails on write
//   - InconsistentCatalogError: For when reference data contradicts the engine's enums
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// KindOf classifies any error (including joined and wrapped ones) into the small
// taxonomy callers branch on: validation, business rule, not found, conflict, fatal.
package errs
