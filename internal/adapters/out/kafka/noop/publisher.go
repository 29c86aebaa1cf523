// Package noop provides an event publisher that discards everything. It is
// used when no broker is configured, keeping the pipeline wiring uniform.
package noop

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// Publisher is a no-op ports.EventPublisher.
type Publisher struct{}

func (Publisher) PublishOrderCreated(_ context.Context, _ *order.Order) error { return nil }

func (Publisher) PublishOrderProcessed(_ context.Context, _ *order.Order) error { return nil }

func (Publisher) PublishOrderFailed(_ context.Context, _ *order.Order, _ string) error { return nil }
