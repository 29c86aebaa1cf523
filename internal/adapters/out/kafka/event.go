// Package kafka publishes order lifecycle events to a Kafka topic.
package kafka

import (
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// Event type constants for order lifecycle events.
const (
	EventOrderCreated   = "order.created"
	EventOrderProcessed = "order.processed"
	EventOrderFailed    = "order.failed"
)

// OrderEvent is the message envelope for order lifecycle events.
type OrderEvent struct {
	EventID        string    `json:"event_id"`
	EventType      string    `json:"event_type"`
	OrderID        string    `json:"order_id"`
	CustomerID     string    `json:"customer_id"`
	Status         string    `json:"status"`
	ItemsProcessed int       `json:"items_processed"`
	ItemsFailed    int       `json:"items_failed"`
	Reason         string    `json:"reason,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func newOrderEvent(eventID, eventType string, aggregate *order.Order, reason string) OrderEvent {
	return OrderEvent{
		EventID:        eventID,
		EventType:      eventType,
		OrderID:        aggregate.ID().String(),
		CustomerID:     aggregate.CustomerID(),
		Status:         aggregate.Status().String(),
		ItemsProcessed: aggregate.ItemsProcessed(),
		ItemsFailed:    aggregate.ItemsFailed(),
		Reason:         reason,
		OccurredAt:     time.Now().UTC(),
	}
}
