package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order intake.
// Creates new orders in Received status and announces them on the broker so
// the processing pipeline picks them up asynchronously.
type CreateOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	idGenerator ports.IDGenerator
	publisher   ports.EventPublisher
	logger      *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order intake operations.
// Requires an OrderUoWFactory for transactional persistence, an IDGenerator
// for order identifiers, and an EventPublisher for the created announcement.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	idGenerator ports.IDGenerator,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		idGenerator: idGenerator,
		publisher:   publisher,
		logger:      logger.With("component", "create_order_handler"),
	}
}

// Handle processes the order intake command.
// Builds the order aggregate in Received status, persists it, and publishes
// the created event. A publish failure propagates to the caller; the order is
// already committed at that point and stays queryable in Received status.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		item, err := order.NewItem(input.ItemID, input.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		h.idGenerator.NewOrderID(),
		cmd.CustomerID(),
		items,
		cmd.DeliveryAddress(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.publisher.PublishOrderCreated(ctx, aggregate); err != nil {
		h.logger.ErrorContext(ctx, "Failed to publish order created event",
			"orderId", aggregate.ID().String(), "error", err)
		return nil, err
	}

	return aggregate, nil
}
