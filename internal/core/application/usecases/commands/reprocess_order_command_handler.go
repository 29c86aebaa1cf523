package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// ReprocessOrderCommandHandler resets a failed order back to Received and
// runs the processing pipeline again. Reset clears all item assignments and
// outcome counters, so the new attempt starts from a clean slate.
type ReprocessOrderCommandHandler struct {
	uowFactory     OrderUoWFactory
	processHandler ProcessOrderCommandHandler
}

// NewReprocessOrderCommandHandler creates a handler for reprocessing failed
// orders. Delegates the actual pipeline run to ProcessOrderCommandHandler.
func NewReprocessOrderCommandHandler(
	uowFactory OrderUoWFactory,
	processHandler ProcessOrderCommandHandler,
) ReprocessOrderCommandHandler {
	return ReprocessOrderCommandHandler{
		uowFactory:     uowFactory,
		processHandler: processHandler,
	}
}

// Handle resets the order for reprocessing and runs the pipeline.
// Only orders in Failed status can be reset; any other status yields the
// domain's transition error without touching the order.
func (h ReprocessOrderCommandHandler) Handle(ctx context.Context, cmd ReprocessOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.reset(ctx, cmd.OrderID()); err != nil {
		return nil, err
	}

	processCmd, err := NewProcessOrderCommand(cmd.OrderID())
	if err != nil {
		return nil, err
	}

	return h.processHandler.Handle(ctx, processCmd)
}

func (h ReprocessOrderCommandHandler) reset(ctx context.Context, orderID kernel.OrderID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = aggregate.ResetForReprocessing(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
