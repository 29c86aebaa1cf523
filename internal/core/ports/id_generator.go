package ports

import (
	"fulfillment/internal/core/domain/model/kernel"
)

// IDGenerator produces identifiers for new order aggregates.
// Abstracted so tests can pin deterministic ids.
type IDGenerator interface {
	NewOrderID() kernel.OrderID
}
