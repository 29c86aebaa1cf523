package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"fulfillment/internal/core/domain/model/order"
)

// Publisher implements ports.EventPublisher on top of a kafka-go writer.
// Messages are keyed by order id so events for one order stay ordered within
// a partition.
type Publisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewPublisher creates a publisher writing to topic on the given brokers.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
		logger: logger.With("component", "kafka_publisher"),
	}
}

// PublishOrderCreated emits an order.created event.
func (p *Publisher) PublishOrderCreated(ctx context.Context, aggregate *order.Order) error {
	return p.publish(ctx, newOrderEvent(uuid.NewString(), EventOrderCreated, aggregate, ""))
}

// PublishOrderProcessed emits an order.processed event.
func (p *Publisher) PublishOrderProcessed(ctx context.Context, aggregate *order.Order) error {
	return p.publish(ctx, newOrderEvent(uuid.NewString(), EventOrderProcessed, aggregate, ""))
}

// PublishOrderFailed emits an order.failed event carrying the failure reason.
func (p *Publisher) PublishOrderFailed(ctx context.Context, aggregate *order.Order, reason string) error {
	return p.publish(ctx, newOrderEvent(uuid.NewString(), EventOrderFailed, aggregate, reason))
}

func (p *Publisher) publish(ctx context.Context, event OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
	if err != nil {
		return err
	}

	p.logger.DebugContext(ctx, "event published",
		"event_type", event.EventType, "order_id", event.OrderID)

	return nil
}

// Close flushes pending messages and releases the writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
