package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// MaxItems is the maximum number of lines an order may carry.
const MaxItems = 100

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNoItems is returned when constructing an order without items.
	ErrNoItems = errs.NewValueIsRequiredError("items")
)

// Order represents a marketplace order in the fulfillment system. It is the
// aggregate root that manages the order lifecycle from intake through routing
// to a terminal outcome.
//
// Order follows these invariants:
//   - Must have a valid identifier, customer, and delivery address
//   - Must carry 1 to MaxItems lines with unique item identifiers
//   - Status transitions follow the state machine defined on Status
//   - Can only be created through NewOrder or RestoreOrder
//
// The item list reference is fixed at construction (defensive copy); item
// contents mutate in place during processing.
type Order struct {
	id              kernel.OrderID
	customerID      string
	items           []*Item
	deliveryAddress kernel.Address
	status          Status
	itemsProcessed  int
	itemsFailed     int
	createdAt       time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Received status with validation. This is the
// only way (besides RestoreOrder) to create a valid Order, ensuring all
// business invariants hold.
func NewOrder(
	id kernel.OrderID,
	customerID string,
	items []*Item,
	deliveryAddress kernel.Address,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Received,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items),
		order.setDeliveryAddress(deliveryAddress),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence, including its status
// and per-item outcome counters. Data integrity is re-validated so corrupt
// rows cannot produce an invalid aggregate.
func RestoreOrder(
	id kernel.OrderID,
	customerID string,
	items []*Item,
	deliveryAddress kernel.Address,
	status Status,
	itemsProcessed int,
	itemsFailed int,
	createdAt time.Time,
) (*Order, error) {
	order, err := NewOrder(id, customerID, items, deliveryAddress, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	order.status = status
	order.itemsProcessed = itemsProcessed
	order.itemsFailed = itemsFailed
	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// CustomerID returns the identifier of the ordering customer.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Items returns the order lines. The returned slice is a copy of the list
// header; the Item entities themselves are shared so processing mutations are
// visible through the aggregate.
func (o *Order) Items() []*Item {
	return slices.Clone(o.items)
}

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() kernel.Address {
	return o.deliveryAddress
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// ItemsProcessed returns the number of lines assigned a distribution center
// in the most recent processing attempt.
func (o *Order) ItemsProcessed() int {
	return o.itemsProcessed
}

// ItemsFailed returns the number of lines that could not be assigned in the
// most recent processing attempt.
func (o *Order) ItemsFailed() int {
	return o.itemsFailed
}

// CreatedAt returns the intake timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UnassignedItems returns the lines still lacking a distribution center
// assignment. A follow-up processing pass retries only these.
func (o *Order) UnassignedItems() []*Item {
	unassigned := make([]*Item, 0, len(o.items))
	for _, item := range o.items {
		if !item.IsAssigned() {
			unassigned = append(unassigned, item)
		}
	}
	return unassigned
}

// StartProcessing transitions the order to Processing.
// Legal from Received (initial pickup) and from Processing (re-drive of a
// partially assigned order). Terminal orders are rejected.
func (o *Order) StartProcessing() error {
	newStatus, err := o.status.StartProcessing()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// FinishProcessing records the per-item outcome of a processing attempt and
// derives the resulting status:
//   - no line assigned: Failed
//   - some lines assigned, some not: stays Processing (partial success is a
//     first-class outcome awaiting a follow-up pass)
//   - every line assigned: Processed
//
// Only legal while the order is in Processing.
func (o *Order) FinishProcessing(processed, failed int) (Status, error) {
	if o.status != Processing {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to finish processing", o.status))
	}
	if processed < 0 || failed < 0 || processed+failed != len(o.items) {
		return 0, errs.NewValueIsInvalidErrorWithCause("item counts",
			fmt.Errorf("%d processed + %d failed does not cover %d items", processed, failed, len(o.items)))
	}

	o.itemsProcessed = processed
	o.itemsFailed = failed

	switch {
	case processed == 0:
		newStatus, err := o.status.Fail()
		if err != nil {
			return 0, err
		}
		o.status = newStatus
	case failed > 0:
		// Partial success: stay in Processing for the sweep to re-drive.
	default:
		newStatus, err := o.status.Complete()
		if err != nil {
			return 0, err
		}
		o.status = newStatus
	}

	return o.status, nil
}

// MarkFailed forces the order into the Failed terminal state. Used by the
// pipeline's failure path so the order stays queryable and explainable after
// an unrecoverable error.
func (o *Order) MarkFailed() error {
	newStatus, err := o.status.Fail()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ResetForReprocessing moves a Failed order back to Received, clears all item
// assignments, and zeroes the outcome counters so the next processing attempt
// starts from a clean slate.
func (o *Order) ResetForReprocessing() error {
	newStatus, err := o.status.Reset()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.itemsProcessed = 0
	o.itemsFailed = 0
	for _, item := range o.items {
		item.ClearAssignment()
		item.SetAvailableDistributionCenters(nil)
	}
	return nil
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	if len(items) > MaxItems {
		return errs.NewValueIsOutOfRangeError("items", len(items), 1, MaxItems)
	}

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item == nil {
			return errs.NewValueIsRequiredError("item")
		}
		if _, dup := seen[item.ItemID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("duplicate item ID %q", item.ItemID()))
		}
		seen[item.ItemID()] = struct{}{}
	}

	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress kernel.Address) error {
	if err := deliveryAddress.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
