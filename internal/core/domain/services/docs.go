// Package services provides domain services that orchestrate business
// operations across multiple domain objects in the fulfillment system.
//
// The package includes:
//   - DistributionCenterSelector: a domain service that ranks candidate
//     distribution centers by great-circle distance from a delivery address
//     and picks the nearest one
//
// Domain services implement business logic that doesn't naturally belong to a
// single aggregate root, following Domain-Driven Design principles.
package services
