// Package catalog holds the status reference data shared by commands, orders, cash
// sessions and table reservations.
//
// An Entry is an immutable row of the status catalog: the kind it belongs to, the
// machine key the lifecycle engines compare, and the display name and description that
// are only data. Entries are loaded from storage and handed to the engines as-is; each
// aggregate package parses the key into its own closed Status enum.
package catalog
