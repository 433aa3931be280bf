package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderLine is a snapshotted draft line. Name and price are copied at
// confirmation time so later catalog edits do not rewrite history.
type OrderLine struct {
	ItemId    uuid.UUID `json:"item_id"`
	Name      string    `json:"name"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  int       `json:"quantity"`
}

// Order is a committed order, created exactly once per successful
// confirmation. After creation it changes only through status transitions.
type Order struct {
	Id           uuid.UUID
	BusinessId   uuid.UUID
	CustomerId   string
	SessionId    *uuid.UUID
	Lines        []OrderLine
	Subtotal     float64
	DeliveryFee  float64
	Total        float64
	DeliveryType string
	Address      string
	Geo          *GeoPoint
	ScheduledFor *time.Time
	Notes        string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// OrderStatusHistory is one row of the append-only status stream.
type OrderStatusHistory struct {
	Id        uuid.UUID
	OrderId   uuid.UUID
	Status    string
	ChangedBy string
	ChangedAt time.Time
}
