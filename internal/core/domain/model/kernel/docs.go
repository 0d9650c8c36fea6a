// Package kernel provides the shared value objects of the restaurant domain model.
//
// The package includes:
//   - ID: persistence-assigned internal identity (zero until first save)
//   - UUID: public identifier wrapping github.com/google/uuid
//   - Money: non-negative decimal amount with at most two fractional digits
//   - Amount: signed decimal amount with at most two fractional digits (price deltas, differences)
//   - PeopleCount, Servings: bounded counts
//   - Audit: created/updated/deleted timestamps, actors and the optimistic-lock version
//   - Clock: time source injected into the lifecycle engines
//
// All value objects are immutable; operations return new values. Zero values fail
// Validate, so they must be built through their constructors.
package kernel
