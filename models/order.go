package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

// OrderStatus represents a stage of the order fulfillment lifecycle
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusKitchenReady   OrderStatus = "kitchen_ready"
	StatusTableAssembled OrderStatus = "table_assembled"
	StatusEnRoute        OrderStatus = "en_route"
	StatusDelivered      OrderStatus = "delivered"
	StatusClosed         OrderStatus = "closed"
)

// ErrInvalidItems signals an order payload whose items are neither a
// structured list nor an encoded-string list.
var ErrInvalidItems = errors.New("invalid items")

type OrderItem struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// OrderItems is persisted as one serialized column on the order row.
type OrderItems []OrderItem

// UnmarshalJSON accepts the items either as a JSON array or as a JSON
// string containing an encoded array, which is how older front-ends
// submit them.
func (oi *OrderItems) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*oi = nil
		return nil
	}

	switch data[0] {
	case '[':
		var items []OrderItem
		if err := json.Unmarshal(data, &items); err != nil {
			return ErrInvalidItems
		}
		*oi = items
		return nil
	case '"':
		var encoded string
		if err := json.Unmarshal(data, &encoded); err != nil {
			return ErrInvalidItems
		}
		var items []OrderItem
		if err := json.Unmarshal([]byte(encoded), &items); err != nil {
			return ErrInvalidItems
		}
		*oi = items
		return nil
	}
	return ErrInvalidItems
}

type Order struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	Type          string      `json:"type"`
	TableNumber   *int        `json:"table_number"`
	Location      *string     `json:"location"`
	PartySize     *int        `json:"party_size"`
	Customer      *string     `json:"customer"`
	Phone         *string     `json:"phone"`
	Address       *string     `json:"address"`
	RequestedTime *string     `json:"requested_time"`
	OrderNumber   *string     `json:"order_number"`
	Note          *string     `json:"note"`
	Items         OrderItems  `json:"items" gorm:"serializer:json"`
	Status        OrderStatus `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt     time.Time   `json:"created_at"`
}

func (Order) TableName() string { return "orders" }
