// Package dc provides domain value objects describing distribution centers,
// the fulfillment facilities that order items are routed to.
//
// The package includes:
//   - DistributionCenter: an immutable facility identified by a unique code
//     with a physical address and coordinates
//   - NearbyDistributionCenter: a projection of a facility code together with
//     its computed distance from a delivery address, used for reporting ranked
//     candidate lists
package dc
