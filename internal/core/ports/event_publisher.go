package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// EventPublisher emits order lifecycle events to the message broker.
// A failed created publish propagates to the caller since the pipeline never
// starts without it; outcome events are best-effort because persisted state
// already records the result.
type EventPublisher interface {
	// PublishOrderCreated announces that a new order was accepted and is
	// awaiting processing.
	PublishOrderCreated(ctx context.Context, aggregate *order.Order) error

	// PublishOrderProcessed announces that processing finished with every
	// item assigned. The aggregate carries the per-item outcome counters.
	PublishOrderProcessed(ctx context.Context, aggregate *order.Order) error

	// PublishOrderFailed announces that processing ended without any item
	// assigned, carrying a human-readable reason.
	PublishOrderFailed(ctx context.Context, aggregate *order.Order, reason string) error
}
