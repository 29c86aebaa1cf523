// Package queries contains read-only operations for the CQRS read side.
// Query handlers bypass the domain aggregates and read the database directly,
// returning lightweight response models.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrGetUnfinishedOrdersQueryIsNotConstructed = errors.New(
	"GetUnfinishedOrdersQuery must be created via NewGetUnfinishedOrdersQuery constructor",
)

// GetUnfinishedOrdersQuery retrieves all orders that have not reached a
// terminal status. Returns orders in Received or Processing status for
// monitoring and operational dashboards.
//
// Example:
//
//	query := NewGetUnfinishedOrdersQuery()
//	handler := NewGetUnfinishedOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get unfinished orders: %w", err)
//	}
//	fmt.Printf("Found %d orders still in flight\n", len(orders))
type GetUnfinishedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnfinishedOrdersQuery creates a query to retrieve in-flight orders.
// This is a parameterless query that fetches all non-terminal orders.
func NewGetUnfinishedOrdersQuery() GetUnfinishedOrdersQuery {
	return GetUnfinishedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnfinishedOrdersQueryIsNotConstructed if validation fails.
func (q GetUnfinishedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnfinishedOrdersQueryIsNotConstructed)
}

// GetUnfinishedOrdersQueryResponse is the read model for one in-flight order.
type GetUnfinishedOrdersQueryResponse struct {
	ID             kernel.OrderID
	CustomerID     string
	Status         order.Status
	ItemsProcessed int
	ItemsFailed    int
	CreatedAt      time.Time
}
