// Package kernel provides core domain primitives for the fulfillment system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - OrderID: a lexicographically time-sortable unique identifier (ULID)
//   - Coordinates: a geographic point with great-circle distance math
//   - Address: a postal address value object with validated coordinates
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// safe for concurrent use.
package kernel
