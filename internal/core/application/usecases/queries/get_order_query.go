package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its lines and routing outcome.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("Order %s is %s\n", resp.ID, resp.Status)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the identified order.
func NewGetOrderQuery(orderID kernel.OrderID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	query.orderID = orderID

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// GetOrderQueryResponse is the read model for a single order.
type GetOrderQueryResponse struct {
	ID             kernel.OrderID
	CustomerID     string
	Status         order.Status
	ItemsProcessed int
	ItemsFailed    int
	CreatedAt      time.Time
	Items          []GetOrderItemResponse
}

// GetOrderItemResponse is the read model for one order line.
// AssignedCode is empty while the line has no distribution center assigned.
// Available lists the ranked candidates recorded during processing, nearest
// first.
type GetOrderItemResponse struct {
	ItemID       string
	Quantity     int
	AssignedCode string
	Available    []NearbyResponse
}

// NearbyResponse is one entry of the ranked candidate audit list.
type NearbyResponse struct {
	Code       string  `json:"code"`
	DistanceKm float64 `json:"distanceKm"`
}
