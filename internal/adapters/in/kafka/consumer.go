// Package kafka consumes order.created events and drives the processing
// pipeline. A single consumer group keeps each order id on one consumer at a
// time, so two processors never race on the same order.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
)

type createdEvent struct {
	EventType string `json:"event_type"`
	OrderID   string `json:"order_id"`
}

// Consumer reads order.created events from a topic and runs the processing
// pipeline for each referenced order.
type Consumer struct {
	reader         *kafka.Reader
	processHandler commands.ProcessOrderCommandHandler
	logger         *slog.Logger
}

// NewConsumer creates a consumer joining groupID on the given topic.
func NewConsumer(
	brokers []string,
	topic, groupID string,
	processHandler commands.ProcessOrderCommandHandler,
	logger *slog.Logger,
) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			Topic:   topic,
			GroupID: groupID,
		}),
		processHandler: processHandler,
		logger:         logger.With("component", "kafka_consumer"),
	}
}

// Run consumes messages until ctx is cancelled or the reader is closed.
// Malformed messages and processing failures are logged and skipped; the
// offset is committed either way so a poison message cannot wedge the group.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		message, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		c.handleMessage(ctx, message)
	}
}

func (c *Consumer) handleMessage(ctx context.Context, message kafka.Message) {
	var event createdEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		c.logger.WarnContext(ctx, "skipping undecodable message",
			"offset", message.Offset, "error", err)
		return
	}

	if event.EventType != "order.created" {
		return
	}

	orderID, err := kernel.OrderIDFromString(event.OrderID)
	if err != nil {
		c.logger.WarnContext(ctx, "skipping message with invalid order id",
			"order_id", event.OrderID, "error", err)
		return
	}

	cmd, err := commands.NewProcessOrderCommand(orderID)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to build process command",
			"order_id", event.OrderID, "error", err)
		return
	}

	if _, err := c.processHandler.Handle(ctx, cmd); err != nil {
		c.logger.ErrorContext(ctx, "order processing failed",
			"order_id", event.OrderID, "error", err)
	}
}

// Close leaves the consumer group and releases the reader.
func (c *Consumer) Close() error {
	return c.reader.Close()
}
