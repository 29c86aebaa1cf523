// Package http exposes the order intake and read API over HTTP.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddressRequest carries the delivery address of a new order.
type AddressRequest struct {
	Street    string  `json:"street"`
	Number    string  `json:"number"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Country   string  `json:"country"`
	ZipCode   string  `json:"zipCode"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ItemRequest is one line of a new order.
type ItemRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID      string         `json:"customerId"`
	Items           []ItemRequest  `json:"items"`
	DeliveryAddress AddressRequest `json:"deliveryAddress"`
}

// CreateOrderResponse returns the id assigned to an accepted order.
type CreateOrderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// OrderSummary is one entry of the unfinished-orders listing.
type OrderSummary struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"customerId"`
	Status         string    `json:"status"`
	ItemsProcessed int       `json:"itemsProcessed"`
	ItemsFailed    int       `json:"itemsFailed"`
	CreatedAt      time.Time `json:"createdAt"`
}

// OrderItem is one line of a single-order response, including the routing
// outcome recorded during processing.
type OrderItem struct {
	ItemID       string                   `json:"itemId"`
	Quantity     int                      `json:"quantity"`
	AssignedCode string                   `json:"assignedCode,omitempty"`
	Available    []queries.NearbyResponse `json:"available,omitempty"`
}

// OrderResponse is the body of GET /api/v1/orders/:id.
type OrderResponse struct {
	ID             string      `json:"id"`
	CustomerID     string      `json:"customerId"`
	Status         string      `json:"status"`
	ItemsProcessed int         `json:"itemsProcessed"`
	ItemsFailed    int         `json:"itemsFailed"`
	CreatedAt      time.Time   `json:"createdAt"`
	Items          []OrderItem `json:"items"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	reprocessHandler   commands.ReprocessOrderCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	getUnfinishedOrdersHandler queries.GetUnfinishedOrdersQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	reprocessHandler commands.ReprocessOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getUnfinishedOrdersHandler queries.GetUnfinishedOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		reprocessHandler:           reprocessHandler,
		getOrderHandler:            getOrderHandler,
		getUnfinishedOrdersHandler: getUnfinishedOrdersHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
// The unfinished listing registers before the :id route so "unfinished" is
// never parsed as an order id.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/api/v1/orders", s.CreateOrder)
	e.GET("/api/v1/orders/unfinished", s.GetUnfinishedOrders)
	e.GET("/api/v1/orders/:id", s.GetOrder)
	e.POST("/api/v1/orders/:id/reprocess", s.ReprocessOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - accepts a new order for
// asynchronous processing.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	coordinates, err := kernel.NewCoordinates(req.DeliveryAddress.Latitude, req.DeliveryAddress.Longitude)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery coordinates: " + err.Error(),
		})
	}

	address, err := kernel.NewAddress(
		req.DeliveryAddress.Street,
		req.DeliveryAddress.Number,
		req.DeliveryAddress.City,
		req.DeliveryAddress.State,
		req.DeliveryAddress.Country,
		req.DeliveryAddress.ZipCode,
		coordinates,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery address: " + err.Error(),
		})
	}

	items := make([]commands.ItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = commands.ItemInput{ItemID: item.ItemID, Quantity: item.Quantity}
	}

	cmd, err := commands.NewCreateOrderCommand(req.CustomerID, items, address)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	aggregate, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		ID:     aggregate.ID().String(),
		Status: aggregate.Status().String(),
	})
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order with its
// lines and routing outcome.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	items := make([]OrderItem, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = OrderItem{
			ItemID:       item.ItemID,
			Quantity:     item.Quantity,
			AssignedCode: item.AssignedCode,
			Available:    item.Available,
		}
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		ID:             resp.ID.String(),
		CustomerID:     resp.CustomerID,
		Status:         resp.Status.String(),
		ItemsProcessed: resp.ItemsProcessed,
		ItemsFailed:    resp.ItemsFailed,
		CreatedAt:      resp.CreatedAt,
		Items:          items,
	})
}

// GetUnfinishedOrders handles GET /api/v1/orders/unfinished - lists every
// order that has not reached a terminal status.
func (s *Server) GetUnfinishedOrders(ctx echo.Context) error {
	query := queries.NewGetUnfinishedOrdersQuery()

	orders, err := s.getUnfinishedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = OrderSummary{
			ID:             o.ID.String(),
			CustomerID:     o.CustomerID,
			Status:         o.Status.String(),
			ItemsProcessed: o.ItemsProcessed,
			ItemsFailed:    o.ItemsFailed,
			CreatedAt:      o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ReprocessOrder handles POST /api/v1/orders/:id/reprocess - resets a failed
// order and runs the processing pipeline again.
func (s *Server) ReprocessOrder(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewReprocessOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	aggregate, err := s.reprocessHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		case errors.Is(err, errs.ErrValueIsInvalid):
			return ctx.JSON(http.StatusConflict, Error{
				Code:    http.StatusConflict,
				Message: "Order is not in a reprocessable status: " + err.Error(),
			})
		default:
			return ctx.JSON(http.StatusUnprocessableEntity, Error{
				Code:    http.StatusUnprocessableEntity,
				Message: "Reprocessing failed: " + err.Error(),
			})
		}
	}

	return ctx.JSON(http.StatusOK, CreateOrderResponse{
		ID:     aggregate.ID().String(),
		Status: aggregate.Status().String(),
	})
}
