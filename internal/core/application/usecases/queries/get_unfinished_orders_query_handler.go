package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetUnfinishedOrdersQueryHandler retrieves in-flight orders from the database.
// Filters out orders in terminal status to provide active workload visibility.
type GetUnfinishedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnfinishedOrdersQueryHandler creates a handler for in-flight order queries.
// Requires a GORM database connection for query execution.
func NewGetUnfinishedOrdersQueryHandler(db *gorm.DB) GetUnfinishedOrdersQueryHandler {
	return GetUnfinishedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all unfinished orders.
// Returns orders in Received or Processing status. Results are sorted by
// order id, which for ULID identifiers is creation order.
func (h GetUnfinishedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnfinishedOrdersQuery,
) ([]GetUnfinishedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUnfinishedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			items_processed,
			items_failed,
			created_at
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY id
	`, order.Processed, order.Failed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUnfinishedOrdersQueryResponse
		var id string
		var status int

		err = rows.Scan(
			&id,
			&resp.CustomerID,
			&status,
			&resp.ItemsProcessed,
			&resp.ItemsFailed,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.OrderIDFromString(id)
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Status = order.Status(status)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
