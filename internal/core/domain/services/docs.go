// Package services provides the lifecycle engines of the restaurant domain.
//
// The package includes:
//   - CommandLifecycle: command status transitions (with the close cascade), table
//     reassignment, cancellation, discounts and total recalculation
//   - OrderLifecycle: order creation against a command, order status transitions and
//     cancellation
//   - ModifierSelectionValidator: per-group cardinality checks and the price delta of
//     the selected modifier options
//   - ClosingReconciler: final balance and difference of a cash register closing
//
// The engines perform no I/O. Each call receives loaded entities plus the status
// catalog entries they are in, and returns new values or the first rule violated.
// Rule violations are errs.BusinessRuleViolationError values whose messages are stable;
// catalog mismatches are errs.InconsistentCatalogError values.
package services
