package commands

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
)

// ProcessingError reports that the order processing pipeline could not bring
// an order to a successful outcome. By the time the caller sees it, the
// failure path has already attempted to persist a Failed status and publish a
// failure event, so the order remains queryable in an explainable state.
type ProcessingError struct {
	OrderID kernel.OrderID
	Message string
	Cause   error
}

// NewProcessingError creates a processing error for the order.
func NewProcessingError(orderID kernel.OrderID, message string, cause error) *ProcessingError {
	return &ProcessingError{
		OrderID: orderID,
		Message: message,
		Cause:   cause,
	}
}

func (e *ProcessingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("order processing failed: %s: %s (cause: %v)", e.OrderID, e.Message, e.Cause)
	}
	return fmt.Sprintf("order processing failed: %s: %s", e.OrderID, e.Message)
}

func (e *ProcessingError) Unwrap() error {
	return e.Cause
}
