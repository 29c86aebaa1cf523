package commands

import (
	"errors"
	"slices"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerIDIsRequired = errors.New("customer id is required")
	ErrItemsAreRequired     = errors.New("at least one item is required")
	ErrItemIDIsRequired     = errors.New("item id is required")
	ErrQuantityIsInvalid    = errors.New("quantity must be greater than 0")
)

// ItemInput is a single requested order line.
type ItemInput struct {
	ItemID   string
	Quantity int
}

// CreateOrderCommand represents a request to accept a new marketplace order.
// Encapsulates the ordering customer, the requested lines, and the delivery
// destination.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("customer-42", items, address)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, idGen, publisher, logger)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s received and awaiting processing", created.ID())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      string
	items           []ItemInput
	deliveryAddress kernel.Address

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to accept a new order.
// Validates that the customer id is present, at least one well-formed line is
// requested, and the delivery address is properly constructed.
func NewCreateOrderCommand(
	customerID string,
	items []ItemInput,
	deliveryAddress kernel.Address,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerID(customerID),
		orderCommand.setItems(items),
		orderCommand.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []ItemInput {
	return slices.Clone(c.items)
}

// DeliveryAddress returns the delivery destination.
func (c CreateOrderCommand) DeliveryAddress() kernel.Address {
	return c.deliveryAddress
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDIsRequired
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemInput) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if item.ItemID == "" {
			return ErrItemIDIsRequired
		}
		if item.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}
	}

	c.items = slices.Clone(items)
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress kernel.Address) error {
	if err := deliveryAddress.Validate(); err != nil {
		return err
	}

	c.deliveryAddress = deliveryAddress
	return nil
}
