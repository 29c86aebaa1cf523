package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"

	"github.com/oklog/ulid/v2"
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not properly
// initialized through one of the constructor functions. This error is returned
// when validating a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString")

// OrderID is a value object that represents a globally unique,
// lexicographically time-sortable order identifier. It wraps a ULID
// (26-character Crockford base32 string) so identifiers generated later always
// sort after identifiers generated earlier.
//
// The zero value of OrderID is invalid and must be constructed using NewOrderID
// or OrderIDFromString. OrderID is immutable and safe for concurrent use.
type OrderID struct {
	id            ulid.ULID
	isConstructed bool
}

// NewOrderID generates a new time-ordered identifier.
// This is the primary way to create identifiers for new orders.
func NewOrderID() OrderID {
	return OrderID{
		id:            ulid.Make(),
		isConstructed: true,
	}
}

// OrderIDFromString parses an OrderID from its canonical 26-character string
// representation. This is used when reconstructing orders from persistence or
// when parsing identifiers from external systems.
func OrderIDFromString(s string) (OrderID, error) {
	id, err := ulid.ParseStrict(s)
	if err != nil {
		return OrderID{}, fmt.Errorf("invalid order ID format: %w", err)
	}

	return OrderID{id: id, isConstructed: true}, nil
}

// Validate checks if the OrderID was properly constructed.
// The zero value fails this validation.
func (o OrderID) Validate() error {
	if !o.isConstructed {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}

// String returns the canonical 26-character representation.
// Implements the fmt.Stringer interface.
func (o OrderID) String() string {
	return o.id.String()
}

// IsEqual compares two order identifiers.
func (o OrderID) IsEqual(other OrderID) bool {
	return o.isConstructed == other.isConstructed && o.id == other.id
}

// Timestamp returns the millisecond Unix timestamp encoded in the identifier.
func (o OrderID) Timestamp() uint64 {
	return o.id.Time()
}
