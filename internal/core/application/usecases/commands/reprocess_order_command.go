package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrReprocessOrderCommandIsNotConstructed = errors.New(
	"ReprocessOrderCommand must be created via NewReprocessOrderCommand constructor",
)

// ReprocessOrderCommand represents a request to give a failed order another
// fulfillment attempt from a clean slate.
type ReprocessOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewReprocessOrderCommand creates a command to reprocess the identified order.
func NewReprocessOrderCommand(orderID kernel.OrderID) (ReprocessOrderCommand, error) {
	command := ReprocessOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return ReprocessOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReprocessOrderCommandIsNotConstructed if validation fails.
func (c ReprocessOrderCommand) Validate() error {
	return c.guard.Validate(ErrReprocessOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to reprocess.
func (c ReprocessOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c *ReprocessOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
