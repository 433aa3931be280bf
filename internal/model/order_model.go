package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Order struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BusinessId   uuid.UUID      `gorm:"type:uuid;not null;index:idx_orders_business_status,priority:1"`
	CustomerId   string         `gorm:"type:varchar(100);not null;index"`
	SessionId    *uuid.UUID     `gorm:"type:uuid"`
	Lines        datatypes.JSON `gorm:"type:jsonb;not null"` // snapshot of draft lines at confirmation
	Subtotal     float64        `gorm:"type:numeric(12,2);not null"`
	DeliveryFee  float64        `gorm:"type:numeric(12,2);not null;default:0"`
	Total        float64        `gorm:"type:numeric(12,2);not null"`
	DeliveryType string         `gorm:"type:varchar(20);not null"`
	Address      string         `gorm:"type:text"`
	GeoLatitude  *float64       `gorm:"type:numeric(9,6)"`
	GeoLongitude *float64       `gorm:"type:numeric(9,6)"`
	GeoLabel     string         `gorm:"type:varchar(200)"`
	ScheduledFor *time.Time     `gorm:"index"`
	Notes        string         `gorm:"type:text"`
	Status       string         `gorm:"type:varchar(20);not null;index:idx_orders_business_status,priority:2"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`

	StatusHistory []OrderStatusHistory `gorm:"foreignKey:OrderId"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderStatusHistory is append-only: rows are created on every transition
// and never updated.
type OrderStatusHistory struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderId   uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    string    `gorm:"type:varchar(20);not null"`
	ChangedBy string    `gorm:"type:varchar(30);not null"`
	ChangedAt time.Time `gorm:"not null"`
}

func (OrderStatusHistory) TableName() string {
	return "order_status_history"
}
