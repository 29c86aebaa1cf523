// Package ports defines the contracts between the application core and
// infrastructure adapters. These interfaces establish dependency inversion:
// the core owns the contracts, adapters implement them.
package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their fulfillment status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its items and current status.
	// Returns errs.ObjectNotFoundError when no order with the id exists.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetStuckInProcessing retrieves orders that entered Processing status
	// before the cutoff and never reached a terminal status. These are
	// candidates for another processing pass.
	GetStuckInProcessing(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
