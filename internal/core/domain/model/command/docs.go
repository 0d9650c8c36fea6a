// Package command provides the Command aggregate: a restaurant tab opened against a
// table on behalf of a company.
//
// The package includes:
//   - Command: the aggregate root carrying the tab's people count, table, total,
//     discount, cancellation metadata and audit trail
//   - Status: the closed set of command statuses and the transition graph
//     open -> paying -> closed -> open, with cancel as a terminal side exit
//
// Commands are values. Every change returns a new Command with its audit touched, so the
// original stays untouched until the caller persists the result.
package command
