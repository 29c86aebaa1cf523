package commands

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"fulfillment/internal/core/domain/model/dc"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// maxSelectionConcurrency bounds the per-item fan-out so a large order does
// not spawn one goroutine per line.
const maxSelectionConcurrency = 8

// ProcessOrderCommandHandler runs the fulfillment pipeline for one order:
//
//  1. Load the order and reject terminal ones, then persist the Processing
//     status so concurrent observers see the order picked up.
//  2. Resolve the candidate distribution centers for the delivery region.
//     A failed lookup and an empty candidate set both park the order Failed
//     and surface a ProcessingError.
//  3. Fan out over the unassigned lines, ranking and assigning the nearest
//     candidate per line. A line that cannot be assigned stays unassigned;
//     it fails the line, not the pipeline.
//  4. Derive the final status from the per-line outcomes and persist it.
//     Full success publishes a processed event, total failure a failure
//     event; a partial outcome stays Processing and publishes nothing.
//
// Mid-pipeline failures first attempt to persist a Failed status and publish
// a failure event before returning a ProcessingError, keeping the order
// queryable in a terminal, explainable state.
type ProcessOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dcClient   ports.DistributionCenterClient
	publisher  ports.EventPublisher
	selector   services.DistributionCenterSelector
	logger     *slog.Logger
}

// NewProcessOrderCommandHandler creates a handler for the processing pipeline.
// The DistributionCenterClient is expected to be the cached variant so region
// lookups within the TTL share one upstream call.
func NewProcessOrderCommandHandler(
	uowFactory OrderUoWFactory,
	dcClient ports.DistributionCenterClient,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) ProcessOrderCommandHandler {
	return ProcessOrderCommandHandler{
		uowFactory: uowFactory,
		dcClient:   dcClient,
		publisher:  publisher,
		selector:   services.NewDistributionCenterSelector(),
		logger:     logger.With("component", "process_order_handler"),
	}
}

// Handle processes the order identified by the command and returns the
// updated aggregate. Callers receive an errs.ObjectNotFoundError for unknown
// orders, a ProcessingError for pipeline failures (including re-processing a
// terminal order), and validation errors for malformed commands.
func (h ProcessOrderCommandHandler) Handle(ctx context.Context, cmd ProcessOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.markProcessing(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	region := aggregate.DeliveryAddress().State()
	candidates, err := h.dcClient.GetByRegion(ctx, region)
	if err != nil {
		return nil, h.failOrder(ctx, aggregate, "distribution center lookup failed", err)
	}
	if len(candidates) == 0 {
		return nil, h.failOrder(ctx, aggregate,
			fmt.Sprintf("no distribution centers serve region %s", region), nil)
	}

	h.assignItems(ctx, aggregate, candidates)

	processed := 0
	for _, item := range aggregate.Items() {
		if item.IsAssigned() {
			processed++
		}
	}
	failed := len(aggregate.Items()) - processed

	status, err := aggregate.FinishProcessing(processed, failed)
	if err != nil {
		return nil, h.failOrder(ctx, aggregate, "could not finalize processing outcome", err)
	}

	if err = h.persist(ctx, aggregate); err != nil {
		return nil, NewProcessingError(aggregate.ID(), "failed to persist processing outcome", err)
	}

	h.publishOutcome(ctx, aggregate, status)
	return aggregate, nil
}

// markProcessing loads the order, rejects terminal ones, and persists the
// Processing status in its own transaction before any external call is made.
func (h ProcessOrderCommandHandler) markProcessing(
	ctx context.Context,
	orderID kernel.OrderID,
) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if aggregate.Status().IsTerminal() {
		return nil, NewProcessingError(aggregate.ID(),
			fmt.Sprintf("order is already in terminal status %s", aggregate.Status()), nil)
	}

	if err = aggregate.StartProcessing(); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// assignItems fans out over the lines still lacking an assignment, recording
// the ranked candidate list and assigning the nearest center per line. Lines
// whose selection fails are logged and left unassigned; partial outcomes are
// resolved by FinishProcessing.
func (h ProcessOrderCommandHandler) assignItems(
	ctx context.Context,
	aggregate *order.Order,
	candidates []dc.DistributionCenter,
) {
	unassigned := aggregate.UnassignedItems()
	if len(unassigned) == 0 {
		return
	}

	destination := aggregate.DeliveryAddress()

	var group errgroup.Group
	group.SetLimit(maxSelectionConcurrency)
	for _, item := range unassigned {
		group.Go(func() error {
			ranked, err := h.selector.Rank(candidates, destination)
			if err == nil {
				item.SetAvailableDistributionCenters(ranked)
			}

			selected, err := h.selector.Select(candidates, destination)
			if err != nil {
				h.logger.WarnContext(ctx, "Distribution center selection failed for item",
					"orderId", aggregate.ID().String(), "itemId", item.ItemID(), "error", err)
				return nil
			}

			if err = item.Assign(selected); err != nil {
				h.logger.WarnContext(ctx, "Distribution center assignment failed for item",
					"orderId", aggregate.ID().String(), "itemId", item.ItemID(), "error", err)
			}
			return nil
		})
	}
	_ = group.Wait()
}

// persist updates the aggregate in a fresh transaction.
func (h ProcessOrderCommandHandler) persist(ctx context.Context, aggregate *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// failOrder is the pipeline's failure path: best-effort persist of the Failed
// status and a failure event, then a ProcessingError for the caller.
func (h ProcessOrderCommandHandler) failOrder(
	ctx context.Context,
	aggregate *order.Order,
	message string,
	cause error,
) error {
	if err := aggregate.MarkFailed(); err != nil {
		h.logger.ErrorContext(ctx, "Could not mark order as failed",
			"orderId", aggregate.ID().String(), "error", err)
	} else {
		if err = h.persist(ctx, aggregate); err != nil {
			h.logger.ErrorContext(ctx, "Could not persist failed order",
				"orderId", aggregate.ID().String(), "error", err)
		}
		if err = h.publisher.PublishOrderFailed(ctx, aggregate, message); err != nil {
			h.logger.WarnContext(ctx, "Failed to publish order failed event",
				"orderId", aggregate.ID().String(), "error", err)
		}
	}

	return NewProcessingError(aggregate.ID(), message, cause)
}

// publishOutcome emits the lifecycle event matching the derived status.
// Only terminal outcomes produce an event: a partial outcome stays Processing
// and is announced by nothing beyond the persisted status change. Publishing
// is best-effort, the persisted state is already authoritative.
func (h ProcessOrderCommandHandler) publishOutcome(
	ctx context.Context,
	aggregate *order.Order,
	status order.Status,
) {
	switch status {
	case order.Failed:
		reason := "no items could be assigned a distribution center"
		if err := h.publisher.PublishOrderFailed(ctx, aggregate, reason); err != nil {
			h.logger.WarnContext(ctx, "Failed to publish order failed event",
				"orderId", aggregate.ID().String(), "error", err)
		}
	case order.Processed:
		if err := h.publisher.PublishOrderProcessed(ctx, aggregate); err != nil {
			h.logger.WarnContext(ctx, "Failed to publish order processed event",
				"orderId", aggregate.ID().String(), "error", err)
		}
	}
}
