// Package product provides the Product entity with its modifier groups and options.
//
// A ModifierGroup bounds how many of its options an order may select
// (0 <= minSelection <= maxSelection). A ModifierOption carries a signed price change
// that is added to the product price when it is selected.
package product
