package order

import (
	"fmt"
	"slices"

	"fulfillment/internal/core/domain/model/dc"
	"fulfillment/internal/pkg/errs"
)

// Item is an order line entity. Identity is defined by (itemID, quantity)
// only: the distribution center assignment is processing state, not identity,
// which keeps idempotent retries and test comparisons straightforward.
//
// Item contents mutate in place during processing (assignment and the ranked
// candidate audit list), while the order's item list itself never changes
// after construction.
type Item struct {
	itemID   string
	quantity int

	assigned  *dc.DistributionCenter
	available []dc.NearbyDistributionCenter
}

// NewItem creates an order line with validation.
// ItemID must be non-blank and quantity positive.
func NewItem(itemID string, quantity int) (*Item, error) {
	item := &Item{}

	if itemID == "" {
		return nil, errs.NewValueIsRequiredError("itemId")
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	item.itemID = itemID
	item.quantity = quantity
	return item, nil
}

// RestoreItem reconstructs an item from persistence, including any
// distribution center assignment and the ranked candidate audit list.
func RestoreItem(
	itemID string,
	quantity int,
	assigned *dc.DistributionCenter,
	available []dc.NearbyDistributionCenter,
) (*Item, error) {
	item, err := NewItem(itemID, quantity)
	if err != nil {
		return nil, err
	}

	if assigned != nil {
		if err = item.Assign(*assigned); err != nil {
			return nil, err
		}
	}
	item.SetAvailableDistributionCenters(available)
	return item, nil
}

// ItemID returns the product identifier of the line.
func (i *Item) ItemID() string {
	return i.itemID
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// Assign records the distribution center this line will be fulfilled from.
// Reassignment is allowed: a reprocessing attempt overwrites the previous
// assignment.
func (i *Item) Assign(center dc.DistributionCenter) error {
	if err := center.Validate(); err != nil {
		return err
	}

	i.assigned = &center
	return nil
}

// ClearAssignment removes the distribution center assignment, preparing the
// line for a fresh processing attempt.
func (i *Item) ClearAssignment() {
	i.assigned = nil
}

// IsAssigned reports whether the line has a distribution center assigned.
func (i *Item) IsAssigned() bool {
	return i.assigned != nil
}

// AssignedDistributionCenter returns the assigned facility, if any.
func (i *Item) AssignedDistributionCenter() (dc.DistributionCenter, bool) {
	if i.assigned == nil {
		return dc.DistributionCenter{}, false
	}
	return *i.assigned, true
}

// SetAvailableDistributionCenters stores the ranked candidate list computed
// during processing, nearest first. The list is an audit trail only; it is not
// authoritative for assignment.
func (i *Item) SetAvailableDistributionCenters(candidates []dc.NearbyDistributionCenter) {
	i.available = slices.Clone(candidates)
}

// AvailableDistributionCenters returns a copy of the ranked candidate list,
// nearest first.
func (i *Item) AvailableDistributionCenters() []dc.NearbyDistributionCenter {
	return slices.Clone(i.available)
}

// IsEqual compares two items by identity: (itemID, quantity).
// Assignment state is deliberately excluded.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.itemID == other.itemID && i.quantity == other.quantity
}
