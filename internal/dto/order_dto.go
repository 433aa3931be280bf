package dto

import (
	"time"

	"github.com/google/uuid"
)

type OrderLineDTO struct {
	ItemId    uuid.UUID `json:"item_id"`
	Name      string    `json:"name"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  int       `json:"quantity"`
}

type OrderDTO struct {
	Id           uuid.UUID      `json:"id"`
	BusinessId   uuid.UUID      `json:"business_id"`
	CustomerId   string         `json:"customer_id"`
	Lines        []OrderLineDTO `json:"lines"`
	Subtotal     float64        `json:"subtotal"`
	DeliveryFee  float64        `json:"delivery_fee"`
	Total        float64        `json:"total"`
	DeliveryType string         `json:"delivery_type"`
	Address      string         `json:"address,omitempty"`
	Geo          *GeoDTO        `json:"geo,omitempty"`
	ScheduledFor *time.Time     `json:"scheduled_for,omitempty"`
	Notes        string         `json:"notes,omitempty"`
	Status       string         `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
}

type OrderStatusHistoryDTO struct {
	Status    string    `json:"status"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}

// CancelOrderData reports which order was withdrawn.
type CancelOrderData struct {
	OrderId      uuid.UUID  `json:"order_id"`
	Status       string     `json:"status"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
}

// CancelableOrdersData lists candidates when no target order was supplied.
type CancelableOrdersData struct {
	Orders []OrderDTO `json:"orders"`
}
