// Package order provides the Order entity, a line item attached to a command.
//
// The package includes:
//   - Order: the product ordered, notes, priority and the prices frozen at order time
//   - Status: open -> in_preparation -> delivered, with cancel as an explicit operation
//
// Key business rules:
//   - basePriceAtOrder and totalModifiersPriceAtOrder never change after creation
//   - notes distinguish "no notes" (nil) from an empty note ("")
//   - base price plus modifier delta is never negative
package order
