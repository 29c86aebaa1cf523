// Package order provides domain entities and business logic for marketplace
// order management in the fulfillment system. It implements the Order
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: the aggregate root managing identity, items, and lifecycle
//   - Item: an order line entity carrying its distribution center assignment
//   - Status: a state machine enforcing valid order status transitions
//
// Key business rules:
//   - Orders must have 1 to 100 items with unique item identifiers
//   - Order status follows a defined workflow:
//     RECEIVED -> PROCESSING -> PROCESSED or FAILED
//   - FAILED orders can be reset to RECEIVED for reprocessing
//   - Partially assigned orders stay in PROCESSING so a follow-up pass can
//     retry just the unassigned items
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package order
