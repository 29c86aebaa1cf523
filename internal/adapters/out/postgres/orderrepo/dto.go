// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/model/dc"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to the orders table with proper indexing for
// efficient querying by status.
type OrderDTO struct {
	ID             string     `gorm:"type:char(26);primaryKey"`
	CustomerID     string     `gorm:"index"`
	Address        AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	Status         int        `gorm:"index"`
	ItemsProcessed int
	ItemsFailed    int
	CreatedAt      time.Time
	UpdatedAt      time.Time `gorm:"index"`
	Items          []ItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded delivery address within the order table.
type AddressDTO struct {
	Street    string
	Number    string
	City      string
	State     string `gorm:"index"`
	Country   string
	ZipCode   string
	Latitude  float64
	Longitude float64
}

// ItemDTO represents one order line in the order_items table.
// The distribution center assignment and the ranked candidate audit list are
// stored as JSON documents since they are written and read as a whole.
type ItemDTO struct {
	OrderID   string `gorm:"type:char(26);primaryKey"`
	ItemID    string `gorm:"primaryKey"`
	Quantity  int
	Assigned  *string `gorm:"type:jsonb"`
	Available *string `gorm:"type:jsonb"`
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

type addressJSON struct {
	Street    string  `json:"street"`
	Number    string  `json:"number"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Country   string  `json:"country"`
	ZipCode   string  `json:"zipCode"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type assignedJSON struct {
	Code    string      `json:"code"`
	Name    string      `json:"name"`
	Address addressJSON `json:"address"`
}

type nearbyJSON struct {
	Code       string  `json:"code"`
	DistanceKm float64 `json:"distanceKm"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	address := aggregate.DeliveryAddress()

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		itemDTO, err := itemFromDomain(aggregate.ID(), item)
		if err != nil {
			return OrderDTO{}, err
		}
		items = append(items, itemDTO)
	}

	return OrderDTO{
		ID:         aggregate.ID().String(),
		CustomerID: aggregate.CustomerID(),
		Address: AddressDTO{
			Street:    address.Street(),
			Number:    address.Number(),
			City:      address.City(),
			State:     address.State(),
			Country:   address.Country(),
			ZipCode:   address.ZipCode(),
			Latitude:  address.Coordinates().Latitude(),
			Longitude: address.Coordinates().Longitude(),
		},
		Status:         int(aggregate.Status()),
		ItemsProcessed: aggregate.ItemsProcessed(),
		ItemsFailed:    aggregate.ItemsFailed(),
		CreatedAt:      aggregate.CreatedAt(),
		Items:          items,
	}, nil
}

func itemFromDomain(orderID kernel.OrderID, item *order.Item) (ItemDTO, error) {
	dto := ItemDTO{
		OrderID:  orderID.String(),
		ItemID:   item.ItemID(),
		Quantity: item.Quantity(),
	}

	if assigned, ok := item.AssignedDistributionCenter(); ok {
		address := assigned.Address()
		raw, err := json.Marshal(assignedJSON{
			Code: assigned.Code(),
			Name: assigned.Name(),
			Address: addressJSON{
				Street:    address.Street(),
				Number:    address.Number(),
				City:      address.City(),
				State:     address.State(),
				Country:   address.Country(),
				ZipCode:   address.ZipCode(),
				Latitude:  address.Coordinates().Latitude(),
				Longitude: address.Coordinates().Longitude(),
			},
		})
		if err != nil {
			return ItemDTO{}, err
		}
		encoded := string(raw)
		dto.Assigned = &encoded
	}

	if available := item.AvailableDistributionCenters(); len(available) > 0 {
		entries := make([]nearbyJSON, 0, len(available))
		for _, nearby := range available {
			entries = append(entries, nearbyJSON{
				Code:       nearby.Code(),
				DistanceKm: nearby.DistanceKm(),
			})
		}
		raw, err := json.Marshal(entries)
		if err != nil {
			return ItemDTO{}, err
		}
		encoded := string(raw)
		dto.Available = &encoded
	}

	return dto, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, counters, and per-line
// routing state using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	address, err := addressToDomain(addressJSON{
		Street:    dto.Address.Street,
		Number:    dto.Address.Number,
		City:      dto.Address.City,
		State:     dto.Address.State,
		Country:   dto.Address.Country,
		ZipCode:   dto.Address.ZipCode,
		Latitude:  dto.Address.Latitude,
		Longitude: dto.Address.Longitude,
	})
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.CustomerID,
		items,
		address,
		order.Status(dto.Status),
		dto.ItemsProcessed,
		dto.ItemsFailed,
		dto.CreatedAt,
	)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	var assigned *dc.DistributionCenter
	if dto.Assigned != nil && *dto.Assigned != "" {
		var raw assignedJSON
		if err := json.Unmarshal([]byte(*dto.Assigned), &raw); err != nil {
			return nil, err
		}

		address, err := addressToDomain(raw.Address)
		if err != nil {
			return nil, err
		}

		center, err := dc.NewDistributionCenter(raw.Code, raw.Name, address)
		if err != nil {
			return nil, err
		}
		assigned = &center
	}

	var available []dc.NearbyDistributionCenter
	if dto.Available != nil && *dto.Available != "" {
		var entries []nearbyJSON
		if err := json.Unmarshal([]byte(*dto.Available), &entries); err != nil {
			return nil, err
		}

		available = make([]dc.NearbyDistributionCenter, 0, len(entries))
		for _, entry := range entries {
			nearby, err := dc.NewNearbyDistributionCenter(entry.Code, entry.DistanceKm)
			if err != nil {
				return nil, err
			}
			available = append(available, nearby)
		}
	}

	return order.RestoreItem(dto.ItemID, dto.Quantity, assigned, available)
}

func addressToDomain(raw addressJSON) (kernel.Address, error) {
	coordinates, err := kernel.NewCoordinates(raw.Latitude, raw.Longitude)
	if err != nil {
		return kernel.Address{}, err
	}

	return kernel.NewAddress(
		raw.Street,
		raw.Number,
		raw.City,
		raw.State,
		raw.Country,
		raw.ZipCode,
		coordinates,
	)
}
