// Package ports defines the persistence contracts of the restaurant core.
// Adapters implement them; use-case handlers depend on them through a unit of work.
//
// Repositories return errs.ObjectNotFoundError for missing or soft-deleted rows and
// errs.VersionConflictError when an optimistic update finds the row at another version.
package ports
